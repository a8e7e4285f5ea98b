package app

import (
	"errors"
	"net/http"

	"github.com/chipapapo/planetarium-service-api/api"
	"github.com/chipapapo/planetarium-service-api/internal/domain"
)

func (app *Application) GetDomes(w http.ResponseWriter, r *http.Request) {
	domes, err := app.domeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DomeListResponse{
		Domes: make([]api.DomeResponse, len(domes)),
	}

	for i, dome := range domes {
		resp.Domes[i] = toDomeResponse(dome)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetDome(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "domeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dome, err := app.domeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toDomeResponse(*dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateDome(w http.ResponseWriter, r *http.Request) {
	var input api.CreateDomeRequest

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

	dome := domain.PlanetariumDome{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.domeRepo.Create(r.Context(), &dome)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toDomeResponse(dome), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDomeResponse(dome domain.PlanetariumDome) api.DomeResponse {
	return api.DomeResponse{
		Id:         dome.ID,
		Name:       dome.Name,
		Rows:       dome.Rows,
		SeatsInRow: dome.SeatsInRow,
		Capacity:   dome.Capacity(),
	}
}
