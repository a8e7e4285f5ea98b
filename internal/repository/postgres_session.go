package repository

import (
	"context"
	"errors"
	"time"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{
		db: db,
	}
}

// Create inserts the session and resolves its show and dome in the same
// statement, so the caller gets a complete summary without a read that could
// fail after the insert committed. A fresh session has no tickets, its
// availability is the dome's full capacity.
func (p *PostgresSessionRepository) Create(ctx context.Context, session *domain.ShowSession) (*domain.SessionSummary, error) {
	query := `
		WITH inserted AS (
			INSERT INTO show_sessions (show_id, dome_id, starts_at)
			VALUES ($1, $2, $3)
			RETURNING id, show_id, dome_id, starts_at
		)
		SELECT i.id, sh.title, d.name, d.rows * d.seats_in_row
		FROM inserted i
		JOIN astronomy_shows sh ON i.show_id = sh.id
		JOIN planetarium_domes d ON i.dome_id = d.id
	`

	summary := domain.SessionSummary{
		ShowID:   session.ShowID,
		StartsAt: session.StartsAt,
	}

	err := p.db.QueryRow(ctx, query, session.ShowID, session.DomeID, session.StartsAt).Scan(
		&summary.ID,
		&summary.ShowTitle,
		&summary.DomeName,
		&summary.AvailableSeats,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			switch pgErr.ConstraintName {
			case "show_sessions_show_id_fkey":
				return nil, domain.ErrUnknownShow
			case "show_sessions_dome_id_fkey":
				return nil, domain.ErrUnknownDome
			}
		}

		return nil, err
	}

	session.ID = summary.ID

	return &summary, nil
}

// GetAll lists sessions with their remaining capacity. The available seat
// count is an aggregate over the tickets table at query time.
func (p *PostgresSessionRepository) GetAll(ctx context.Context, filters domain.SessionFilters) ([]domain.SessionSummary, error) {
	query := `
		SELECT
			s.id,
			sh.id,
			sh.title,
			d.name,
			s.starts_at,
			d.rows * d.seats_in_row - COUNT(t.id) AS available_seats
		FROM show_sessions s
		JOIN astronomy_shows sh ON s.show_id = sh.id
		JOIN planetarium_domes d ON s.dome_id = d.id
		LEFT JOIN tickets t ON t.session_id = s.id
		WHERE ($1 = 0 OR s.show_id = $1)
			AND ($2::date IS NULL OR (s.starts_at AT TIME ZONE 'UTC')::date = $2)
		GROUP BY s.id, sh.id, sh.title, d.name, s.starts_at, d.rows, d.seats_in_row
		ORDER BY s.id
	`

	var date *time.Time
	if !filters.Date.IsZero() {
		date = &filters.Date
	}

	rows, err := p.db.Query(ctx, query, filters.ShowID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.SessionSummary, 0)

	for rows.Next() {
		var session domain.SessionSummary

		err = rows.Scan(
			&session.ID,
			&session.ShowID,
			&session.ShowTitle,
			&session.DomeName,
			&session.StartsAt,
			&session.AvailableSeats,
		)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (p *PostgresSessionRepository) GetById(ctx context.Context, id int) (*domain.SessionDetail, error) {
	query := `
		SELECT s.id, sh.title, d.id, d.name, d.rows, d.seats_in_row, s.starts_at
		FROM show_sessions s
		JOIN astronomy_shows sh ON s.show_id = sh.id
		JOIN planetarium_domes d ON s.dome_id = d.id
		WHERE s.id = $1
	`

	var detail domain.SessionDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTitle,
		&detail.Dome.ID,
		&detail.Dome.Name,
		&detail.Dome.Rows,
		&detail.Dome.SeatsInRow,
		&detail.StartsAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	query = `
		SELECT seat_row, seat_num
		FROM tickets
		WHERE session_id = $1
		ORDER BY seat_row, seat_num
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail.TakenSeats = make([]domain.SeatRef, 0)

	for rows.Next() {
		var seat domain.SeatRef

		err = rows.Scan(&seat.Row, &seat.Seat)
		if err != nil {
			return nil, err
		}

		detail.TakenSeats = append(detail.TakenSeats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &detail, nil
}
