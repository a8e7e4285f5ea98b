package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chipapapo/planetarium-service-api/api"
	"github.com/chipapapo/planetarium-service-api/internal/domain"
)

func (app *Application) GetShowSessions(w http.ResponseWriter, r *http.Request) {
	var filters domain.SessionFilters

	if raw := r.URL.Query().Get("show"); raw != "" {
		showID, err := strconv.Atoi(raw)
		if err != nil || showID < 1 {
			app.badRequestResponse(w, r, fmt.Errorf("invalid show parameter"))
			return
		}
		filters.ShowID = showID
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("date must be in YYYY-MM-DD format"))
			return
		}
		filters.Date = date
	}

	sessions, err := app.sessionRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowSessionListResponse{
		Sessions: make([]api.ShowSessionSummary, len(sessions)),
	}

	for i, session := range sessions {
		resp.Sessions[i] = api.ShowSessionSummary{
			Id:             session.ID,
			ShowId:         session.ShowID,
			ShowTitle:      session.ShowTitle,
			DomeName:       session.DomeName,
			StartsAt:       session.StartsAt,
			AvailableSeats: session.AvailableSeats,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowSession(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "sessionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.sessionRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ShowSessionDetailResponse{
		Id:         detail.ID,
		ShowTitle:  detail.ShowTitle,
		Dome:       toDomeResponse(detail.Dome),
		StartsAt:   detail.StartsAt,
		TakenSeats: make([]api.TakenSeat, len(detail.TakenSeats)),
	}

	for i, seat := range detail.TakenSeats {
		resp.TakenSeats[i] = api.TakenSeat{
			Row:  seat.Row,
			Seat: seat.Seat,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowSession(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowSessionRequest

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

	session := domain.ShowSession{
		ShowID:   input.ShowId,
		DomeID:   input.DomeId,
		StartsAt: input.StartsAt,
	}

	summary, err := app.sessionRepo.Create(r.Context(), &session)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownShow), errors.Is(err, domain.ErrUnknownDome):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ShowSessionSummary{
		Id:             summary.ID,
		ShowId:         summary.ShowID,
		ShowTitle:      summary.ShowTitle,
		DomeName:       summary.DomeName,
		StartsAt:       summary.StartsAt,
		AvailableSeats: summary.AvailableSeats,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
