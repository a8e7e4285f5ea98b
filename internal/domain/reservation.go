package domain

import (
	"context"
	"time"
)

// Reservation groups the tickets created by one booking request. It is
// immutable once created; there is no cancellation flow.
type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID            int
	SessionID     int
	ReservationID int
	Row           int
	Seat          int

	// Denormalized for reservation listings.
	ShowTitle string
	StartsAt  time.Time
}

// TicketRequest is one requested seat within a reservation.
type TicketRequest struct {
	SessionID int
	Row       int
	Seat      int
}

type ReservationRepository interface {
	// Create reserves every requested seat in a single transaction. It
	// returns ErrInvalidSeat when a seat falls outside the session dome's
	// grid, ErrSeatAlreadyTaken when a requested seat collides with an
	// existing ticket or with another seat in the same request, and
	// ErrRecordNotFound when a session does not exist. On any error no
	// tickets persist.
	Create(ctx context.Context, userID int, tickets []TicketRequest) (*Reservation, error)
	GetAllByUserId(ctx context.Context, userID int, pagination Pagination) ([]Reservation, *Metadata, error)
}
