package domain

import "context"

// PlanetariumDome is a physical theater room with a fixed seating grid.
// Geometry never changes once sessions reference the dome.
type PlanetariumDome struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (d PlanetariumDome) Capacity() int {
	return d.Rows * d.SeatsInRow
}

type DomeRepository interface {
	Create(ctx context.Context, dome *PlanetariumDome) error
	GetAll(ctx context.Context) ([]PlanetariumDome, error)
	GetById(ctx context.Context, id int) (*PlanetariumDome, error)
}
