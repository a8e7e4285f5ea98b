package app

import (
	"errors"
	"net/http"

	"github.com/chipapapo/planetarium-service-api/api"
	"github.com/chipapapo/planetarium-service-api/internal/domain"
)

func (app *Application) GetThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := app.themeRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ThemeListResponse{
		Themes: toThemeResponses(themes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheme(w http.ResponseWriter, r *http.Request) {
	var input api.CreateThemeRequest

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

	theme := domain.ShowTheme{Name: input.Name}

	err = app.themeRepo.Create(r.Context(), &theme)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrThemeAlreadyExists):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ThemeResponse{
		Id:   theme.ID,
		Name: theme.Name,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toThemeResponses(themes []domain.ShowTheme) []api.ThemeResponse {
	resp := make([]api.ThemeResponse, len(themes))

	for i, theme := range themes {
		resp[i] = api.ThemeResponse{
			Id:   theme.ID,
			Name: theme.Name,
		}
	}

	return resp
}
