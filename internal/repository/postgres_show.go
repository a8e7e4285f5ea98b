package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

// Create inserts the show and its theme links in one transaction. A theme id
// that does not exist trips the join table's foreign key and is reported as
// ErrUnknownTheme.
func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.AstronomyShow) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO astronomy_shows (title, description)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, show.Title, show.Description).Scan(&show.ID)
		if err != nil {
			return err
		}

		for _, theme := range show.Themes {
			query = `
				INSERT INTO astronomy_show_themes (show_id, theme_id)
				VALUES ($1, $2)
			`

			_, err = tx.Exec(ctx, query, show.ID, theme.ID)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
					return domain.ErrUnknownTheme
				}

				return err
			}
		}

		return nil
	})
}

// likeEscaper neutralizes pattern metacharacters so a title filter always
// matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (p *PostgresShowRepository) GetAll(ctx context.Context, filters domain.ShowFilters) ([]domain.AstronomyShow, error) {
	query := `
		SELECT id, title, description, poster_url
		FROM astronomy_shows s
		WHERE (title ILIKE '%' || $1 || '%' OR $1 = '')
			AND (
				cardinality($2::bigint[]) = 0
				OR EXISTS (
					SELECT 1 FROM astronomy_show_themes st
					WHERE st.show_id = s.id AND st.theme_id = ANY($2)
				)
			)
		ORDER BY id
	`

	themeIDs := filters.ThemeIDs
	if themeIDs == nil {
		themeIDs = []int{}
	}

	rows, err := p.db.Query(ctx, query, likeEscaper.Replace(filters.Title), themeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.AstronomyShow, 0)
	showIdx := make(map[int]int)

	for rows.Next() {
		var show domain.AstronomyShow

		err = rows.Scan(&show.ID, &show.Title, &show.Description, &show.PosterUrl)
		if err != nil {
			return nil, err
		}

		show.Themes = make([]domain.ShowTheme, 0)
		showIdx[show.ID] = len(shows)
		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(shows) > 0 {
		err = p.attachThemes(ctx, shows, showIdx)
		if err != nil {
			return nil, err
		}
	}

	return shows, nil
}

func (p *PostgresShowRepository) attachThemes(
	ctx context.Context,
	shows []domain.AstronomyShow,
	showIdx map[int]int) error {

	ids := make([]int, 0, len(shows))
	for _, show := range shows {
		ids = append(ids, show.ID)
	}

	query := `
		SELECT st.show_id, t.id, t.name
		FROM astronomy_show_themes st
		JOIN show_themes t ON st.theme_id = t.id
		WHERE st.show_id = ANY($1)
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var showID int
		var theme domain.ShowTheme

		err = rows.Scan(&showID, &theme.ID, &theme.Name)
		if err != nil {
			return err
		}

		idx := showIdx[showID]
		shows[idx].Themes = append(shows[idx].Themes, theme)
	}

	return rows.Err()
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.AstronomyShow, error) {
	query := `
		SELECT id, title, description, poster_url
		FROM astronomy_shows
		WHERE id = $1
	`

	var show domain.AstronomyShow

	err := p.db.QueryRow(ctx, query, id).Scan(&show.ID, &show.Title, &show.Description, &show.PosterUrl)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	show.Themes = make([]domain.ShowTheme, 0)
	showIdx := map[int]int{show.ID: 0}
	shows := []domain.AstronomyShow{show}

	err = p.attachThemes(ctx, shows, showIdx)
	if err != nil {
		return nil, err
	}

	return &shows[0], nil
}

func (p *PostgresShowRepository) UpdatePosterUrl(ctx context.Context, id int, posterUrl string) error {
	query := `
		UPDATE astronomy_shows
		SET poster_url = $2
		WHERE id = $1
	`

	tag, err := p.db.Exec(ctx, query, id, posterUrl)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
