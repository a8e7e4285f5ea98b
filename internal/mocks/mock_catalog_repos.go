package mocks

import (
	"context"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
)

type MockThemeRepo struct {
	CreateFunc   func(ctx context.Context, theme *domain.ShowTheme) error
	GetAllFunc   func(ctx context.Context) ([]domain.ShowTheme, error)
	GetByIdsFunc func(ctx context.Context, ids []int) ([]domain.ShowTheme, error)
}

func (m *MockThemeRepo) Create(ctx context.Context, theme *domain.ShowTheme) error {
	return m.CreateFunc(ctx, theme)
}

func (m *MockThemeRepo) GetAll(ctx context.Context) ([]domain.ShowTheme, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockThemeRepo) GetByIds(ctx context.Context, ids []int) ([]domain.ShowTheme, error) {
	return m.GetByIdsFunc(ctx, ids)
}

type MockDomeRepo struct {
	CreateFunc  func(ctx context.Context, dome *domain.PlanetariumDome) error
	GetAllFunc  func(ctx context.Context) ([]domain.PlanetariumDome, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.PlanetariumDome, error)
}

func (m *MockDomeRepo) Create(ctx context.Context, dome *domain.PlanetariumDome) error {
	return m.CreateFunc(ctx, dome)
}

func (m *MockDomeRepo) GetAll(ctx context.Context) ([]domain.PlanetariumDome, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockDomeRepo) GetById(ctx context.Context, id int) (*domain.PlanetariumDome, error) {
	return m.GetByIdFunc(ctx, id)
}

type MockShowRepo struct {
	CreateFunc          func(ctx context.Context, show *domain.AstronomyShow) error
	GetAllFunc          func(ctx context.Context, filters domain.ShowFilters) ([]domain.AstronomyShow, error)
	GetByIdFunc         func(ctx context.Context, id int) (*domain.AstronomyShow, error)
	UpdatePosterUrlFunc func(ctx context.Context, id int, posterUrl string) error
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.AstronomyShow) error {
	return m.CreateFunc(ctx, show)
}

func (m *MockShowRepo) GetAll(ctx context.Context, filters domain.ShowFilters) ([]domain.AstronomyShow, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockShowRepo) GetById(ctx context.Context, id int) (*domain.AstronomyShow, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) UpdatePosterUrl(ctx context.Context, id int, posterUrl string) error {
	return m.UpdatePosterUrlFunc(ctx, id, posterUrl)
}

type MockSessionRepo struct {
	CreateFunc  func(ctx context.Context, session *domain.ShowSession) (*domain.SessionSummary, error)
	GetAllFunc  func(ctx context.Context, filters domain.SessionFilters) ([]domain.SessionSummary, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.SessionDetail, error)
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.ShowSession) (*domain.SessionSummary, error) {
	return m.CreateFunc(ctx, session)
}

func (m *MockSessionRepo) GetAll(ctx context.Context, filters domain.SessionFilters) ([]domain.SessionSummary, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockSessionRepo) GetById(ctx context.Context, id int) (*domain.SessionDetail, error) {
	return m.GetByIdFunc(ctx, id)
}
