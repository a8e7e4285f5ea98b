package repository

import (
	"context"
	"errors"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDomeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDomeRepository(db *pgxpool.Pool) *PostgresDomeRepository {
	return &PostgresDomeRepository{
		db: db,
	}
}

func (p *PostgresDomeRepository) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	query := `
		INSERT INTO planetarium_domes (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, dome.Name, dome.Rows, dome.SeatsInRow).Scan(&dome.ID)
}

func (p *PostgresDomeRepository) GetAll(ctx context.Context) ([]domain.PlanetariumDome, error) {
	query := `
		SELECT id, name, rows, seats_in_row
		FROM planetarium_domes
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	domes := make([]domain.PlanetariumDome, 0)

	for rows.Next() {
		var dome domain.PlanetariumDome

		err = rows.Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsInRow)
		if err != nil {
			return nil, err
		}

		domes = append(domes, dome)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return domes, nil
}

func (p *PostgresDomeRepository) GetById(ctx context.Context, id int) (*domain.PlanetariumDome, error) {
	query := `
		SELECT id, name, rows, seats_in_row
		FROM planetarium_domes
		WHERE id = $1
	`

	var dome domain.PlanetariumDome

	err := p.db.QueryRow(ctx, query, id).Scan(&dome.ID, &dome.Name, &dome.Rows, &dome.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &dome, nil
}
