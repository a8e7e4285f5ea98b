package domain

import "context"

type ShowTheme struct {
	ID   int
	Name string
}

type AstronomyShow struct {
	ID          int
	Title       string
	Description string
	Themes      []ShowTheme
	PosterUrl   string
}

// ShowFilters narrows the show listing. Title is matched as a
// case-insensitive substring; ThemeIDs use OR semantics, a show matches
// when its theme set intersects the given set.
type ShowFilters struct {
	Title    string
	ThemeIDs []int
}

type ThemeRepository interface {
	Create(ctx context.Context, theme *ShowTheme) error
	GetAll(ctx context.Context) ([]ShowTheme, error)
	GetByIds(ctx context.Context, ids []int) ([]ShowTheme, error)
}

type ShowRepository interface {
	Create(ctx context.Context, show *AstronomyShow) error
	GetAll(ctx context.Context, filters ShowFilters) ([]AstronomyShow, error)
	GetById(ctx context.Context, id int) (*AstronomyShow, error)
	UpdatePosterUrl(ctx context.Context, id int, posterUrl string) error
}
