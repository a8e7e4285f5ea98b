package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/chipapapo/planetarium-service-api/api"
	"github.com/chipapapo/planetarium-service-api/internal/domain"
)

const maxPosterSize = 5 << 20

func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	filters := domain.ShowFilters{
		Title: r.URL.Query().Get("title"),
	}

	themeIDs, err := parseIDList(r.URL.Query().Get("themes"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	filters.ThemeIDs = themeIDs

	shows, err := app.showRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		Shows: make([]api.ShowSummary, len(shows)),
	}

	for i, show := range shows {
		resp.Shows[i] = toShowSummary(show)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShow(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ShowDetailResponse{
		Id:          show.ID,
		Title:       show.Title,
		Description: show.Description,
		Themes:      toThemeResponses(show.Themes),
		PosterUrl:   show.PosterUrl,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowRequest

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

	show := domain.AstronomyShow{
		Title:       input.Title,
		Description: input.Description,
		Themes:      make([]domain.ShowTheme, 0, len(input.ThemeIds)),
	}

	if len(input.ThemeIds) > 0 {
		themes, err := app.themeRepo.GetByIds(r.Context(), input.ThemeIds)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		known := make(map[int]domain.ShowTheme, len(themes))
		for _, theme := range themes {
			known[theme.ID] = theme
		}

		for _, themeID := range input.ThemeIds {
			theme, ok := known[themeID]
			if !ok {
				app.unprocessableEntityResponse(w, r, fmt.Errorf("theme %d: %w", themeID, domain.ErrUnknownTheme))
				return
			}
			show.Themes = append(show.Themes, theme)
		}
	}

	err = app.showRepo.Create(r.Context(), &show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownTheme):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ShowDetailResponse{
		Id:          show.ID,
		Title:       show.Title,
		Description: show.Description,
		Themes:      toThemeResponses(show.Themes),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UploadShowImage attaches a poster to an existing show. Image content is
// only accepted through this action, never through the create endpoint.
func (app *Application) UploadShowImage(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	id, err := app.readIDParam(r, "showId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPosterSize)

	file, _, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("missing or invalid image field"))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	posterUrl, err := app.posterStore.Save(show.Title, payload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAnImage):
			logger.Warn("rejected non-image poster upload", "show_id", id)
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.showRepo.UpdatePosterUrl(r.Context(), id, posterUrl)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UploadShowImageResponse{
		Id:        id,
		PosterUrl: posterUrl,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowSummary(show domain.AstronomyShow) api.ShowSummary {
	themeNames := make([]string, len(show.Themes))
	for i, theme := range show.Themes {
		themeNames[i] = theme.Name
	}

	return api.ShowSummary{
		Id:         show.ID,
		Title:      show.Title,
		ThemeNames: themeNames,
		PosterUrl:  show.PosterUrl,
	}
}

func parseIDList(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid id in list: %q", part)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
