package domain

import (
	"context"
	"time"
)

type ShowSession struct {
	ID       int
	ShowID   int
	DomeID   int
	StartsAt time.Time
}

// SessionSummary is a session annotated with its remaining capacity.
// AvailableSeats is recomputed from the ticket count on every read,
// it is never stored.
type SessionSummary struct {
	ID             int
	ShowID         int
	ShowTitle      string
	DomeName       string
	StartsAt       time.Time
	AvailableSeats int
}

type SessionDetail struct {
	ID         int
	ShowTitle  string
	Dome       PlanetariumDome
	StartsAt   time.Time
	TakenSeats []SeatRef
}

type SeatRef struct {
	Row  int
	Seat int
}

// SessionFilters narrows the session listing by show or calendar day.
type SessionFilters struct {
	ShowID int
	Date   time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, session *ShowSession) (*SessionSummary, error)
	GetAll(ctx context.Context, filters SessionFilters) ([]SessionSummary, error)
	GetById(ctx context.Context, id int) (*SessionDetail, error)
}
