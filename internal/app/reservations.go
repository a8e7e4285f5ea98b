package app

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chipapapo/planetarium-service-api/api"
	"github.com/chipapapo/planetarium-service-api/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CreateReservation books every requested seat or none of them. Conflicts
// detected by the pre-check and conflicts lost at commit time surface as the
// same seat-taken error.
func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	requests := make([]domain.TicketRequest, len(input.Tickets))
	for i, ticket := range input.Tickets {
		requests[i] = domain.TicketRequest{
			SessionID: ticket.SessionId,
			Row:       ticket.Row,
			Seat:      ticket.Seat,
		}
	}

	reservation, err := app.reservationRepo.Create(r.Context(), userId, requests)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyTaken),
			errors.Is(err, domain.ErrInvalidSeat),
			errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("reservation rejected", "reason", err.Error())
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toReservationResponse(*reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetUserReservations lists the requesting user's reservations only.
func (app *Application) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			app.badRequestResponse(w, r, errors.New("invalid page parameter"))
			return
		}
		pagination.Page = page
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 || pageSize > MaxPageSize {
			app.badRequestResponse(w, r, errors.New("invalid page_size parameter"))
			return
		}
		pagination.PageSize = pageSize
	}

	userId := app.contextGetUserId(r)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ReservationListResponse{
		Reservations: make([]api.ReservationResponse, len(reservations)),
		Metadata: api.Metadata{
			CurrentPage:  metadata.CurrentPage,
			FirstPage:    metadata.FirstPage,
			LastPage:     metadata.LastPage,
			PageSize:     metadata.PageSize,
			TotalRecords: metadata.TotalRecords,
		},
	}

	for i, reservation := range reservations {
		resp.Reservations[i] = toReservationResponse(reservation)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toReservationResponse(reservation domain.Reservation) api.ReservationResponse {
	resp := api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   make([]api.TicketResponse, len(reservation.Tickets)),
	}

	for i, ticket := range reservation.Tickets {
		resp.Tickets[i] = api.TicketResponse{
			Id:        ticket.ID,
			SessionId: ticket.SessionID,
			ShowTitle: ticket.ShowTitle,
			StartsAt:  ticket.StartsAt,
			Row:       ticket.Row,
			Seat:      ticket.Seat,
		}
	}

	return resp
}
