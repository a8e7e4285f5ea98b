package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

type domeGrid struct {
	rows       int
	seatsInRow int
}

// Create reserves all requested seats atomically. Seat geometry is checked
// against each session's dome, duplicates inside the request are rejected
// up front, and the unique constraint on (session_id, seat_row, seat_num)
// settles any race with a concurrent reservation: the loser's insert fails
// with a unique violation, which surfaces as the same seat-taken error as
// the pre-check.
func (p *PostgresReservationRepository) Create(
	ctx context.Context,
	userID int,
	requests []domain.TicketRequest) (*domain.Reservation, error) {

	seen := make(map[domain.TicketRequest]bool, len(requests))
	for _, req := range requests {
		if seen[req] {
			return nil, fmt.Errorf("session %d, row %d, seat %d requested twice: %w",
				req.SessionID, req.Row, req.Seat, domain.ErrSeatAlreadyTaken)
		}
		seen[req] = true
	}

	var reservation domain.Reservation
	reservation.UserID = userID

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		grids := make(map[int]domeGrid)

		for _, req := range requests {
			grid, ok := grids[req.SessionID]
			if !ok {
				query := `
					SELECT d.rows, d.seats_in_row
					FROM show_sessions s
					JOIN planetarium_domes d ON s.dome_id = d.id
					WHERE s.id = $1
				`

				err := tx.QueryRow(ctx, query, req.SessionID).Scan(&grid.rows, &grid.seatsInRow)
				if err != nil {
					if errors.Is(err, pgx.ErrNoRows) {
						return fmt.Errorf("session %d: %w", req.SessionID, domain.ErrRecordNotFound)
					}

					return err
				}

				grids[req.SessionID] = grid
			}

			if req.Row < 1 || req.Row > grid.rows || req.Seat < 1 || req.Seat > grid.seatsInRow {
				return fmt.Errorf("session %d, row %d, seat %d: %w",
					req.SessionID, req.Row, req.Seat, domain.ErrInvalidSeat)
			}

			var taken bool
			query := `
				SELECT EXISTS (
					SELECT 1 FROM tickets
					WHERE session_id = $1 AND seat_row = $2 AND seat_num = $3
				)
			`

			err := tx.QueryRow(ctx, query, req.SessionID, req.Row, req.Seat).Scan(&taken)
			if err != nil {
				return err
			}

			if taken {
				return fmt.Errorf("session %d, row %d, seat %d: %w",
					req.SessionID, req.Row, req.Seat, domain.ErrSeatAlreadyTaken)
			}
		}

		query := `
			INSERT INTO reservations (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, userID).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		reservation.Tickets = make([]domain.Ticket, 0, len(requests))

		for _, req := range requests {
			ticket := domain.Ticket{
				SessionID:     req.SessionID,
				ReservationID: reservation.ID,
				Row:           req.Row,
				Seat:          req.Seat,
			}

			query = `
				INSERT INTO tickets (session_id, reservation_id, seat_row, seat_num)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`

			err = tx.QueryRow(ctx, query, req.SessionID, reservation.ID, req.Row, req.Seat).Scan(&ticket.ID)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
					return fmt.Errorf("session %d, row %d, seat %d: %w",
						req.SessionID, req.Row, req.Seat, domain.ErrSeatAlreadyTaken)
				}

				return err
			}

			reservation.Tickets = append(reservation.Tickets, ticket)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	reservationIdx := make(map[int]int)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.Reservation

		err = rows.Scan(&totalRecords, &reservation.ID, &reservation.UserID, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservation.Tickets = make([]domain.Ticket, 0)
		reservationIdx[reservation.ID] = len(reservations)
		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if len(reservations) > 0 {
		ids := make([]int, 0, len(reservations))
		for _, reservation := range reservations {
			ids = append(ids, reservation.ID)
		}

		err = p.attachTickets(ctx, reservations, reservationIdx, ids)
		if err != nil {
			return nil, nil, err
		}
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) attachTickets(
	ctx context.Context,
	reservations []domain.Reservation,
	reservationIdx map[int]int,
	ids []int) error {

	query := `
		SELECT t.id, t.session_id, t.reservation_id, t.seat_row, t.seat_num, sh.title, s.starts_at
		FROM tickets t
		JOIN show_sessions s ON t.session_id = s.id
		JOIN astronomy_shows sh ON s.show_id = sh.id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ticket domain.Ticket

		err = rows.Scan(
			&ticket.ID,
			&ticket.SessionID,
			&ticket.ReservationID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.ShowTitle,
			&ticket.StartsAt,
		)
		if err != nil {
			return err
		}

		idx := reservationIdx[ticket.ReservationID]
		reservations[idx].Tickets = append(reservations[idx].Tickets, ticket)
	}

	return rows.Err()
}
