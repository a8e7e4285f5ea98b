package repository

import (
	"context"
	"errors"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresThemeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresThemeRepository(db *pgxpool.Pool) *PostgresThemeRepository {
	return &PostgresThemeRepository{
		db: db,
	}
}

func (p *PostgresThemeRepository) Create(ctx context.Context, theme *domain.ShowTheme) error {
	query := `
		INSERT INTO show_themes (name)
		VALUES ($1)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, theme.Name).Scan(&theme.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrThemeAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresThemeRepository) GetAll(ctx context.Context) ([]domain.ShowTheme, error) {
	query := `
		SELECT id, name
		FROM show_themes
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	themes := make([]domain.ShowTheme, 0)

	for rows.Next() {
		var theme domain.ShowTheme

		err = rows.Scan(&theme.ID, &theme.Name)
		if err != nil {
			return nil, err
		}

		themes = append(themes, theme)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return themes, nil
}

func (p *PostgresThemeRepository) GetByIds(ctx context.Context, ids []int) ([]domain.ShowTheme, error) {
	query := `
		SELECT id, name
		FROM show_themes
		WHERE id = ANY($1)
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	themes := make([]domain.ShowTheme, 0, len(ids))

	for rows.Next() {
		var theme domain.ShowTheme

		err = rows.Scan(&theme.ID, &theme.Name)
		if err != nil {
			return nil, err
		}

		themes = append(themes, theme)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return themes, nil
}
