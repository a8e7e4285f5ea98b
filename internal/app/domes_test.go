package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/chipapapo/planetarium-service-api/api"
	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/chipapapo/planetarium-service-api/internal/mocks"
	"github.com/chipapapo/planetarium-service-api/internal/validator"
	"github.com/google/go-cmp/cmp"
)

func TestCreateDome(t *testing.T) {
	tests := []struct {
		name           string
		input          api.CreateDomeRequest
		createFunc     func(ctx context.Context, dome *domain.PlanetariumDome) error
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.DomeResponse
	}{
		{
			name:  "creates dome and reports capacity",
			input: api.CreateDomeRequest{Name: "Blue", Rows: 20, SeatsInRow: 20},
			createFunc: func(ctx context.Context, dome *domain.PlanetariumDome) error {
				dome.ID = 1
				return nil
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.DomeResponse{
				Id:         1,
				Name:       "Blue",
				Rows:       20,
				SeatsInRow: 20,
				Capacity:   400,
			},
		},
		{
			name:           "rejects zero rows",
			input:          api.CreateDomeRequest{Name: "Blue", Rows: 0, SeatsInRow: 20},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "rejects negative seats in row",
			input:          api.CreateDomeRequest{Name: "Blue", Rows: 20, SeatsInRow: -5},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinValue, "1"),
		},
		{
			name:           "rejects missing name",
			input:          api.CreateDomeRequest{Rows: 20, SeatsInRow: 20},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:  "database error",
			input: api.CreateDomeRequest{Name: "Blue", Rows: 20, SeatsInRow: 20},
			createFunc: func(ctx context.Context, dome *domain.PlanetariumDome) error {
				return fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.domeRepo = &mocks.MockDomeRepo{
					CreateFunc: tt.createFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/planetarium-domes", tt.input)

			app.CreateDome(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateDome() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.DomeResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("CreateDome() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetDomes(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.domeRepo = &mocks.MockDomeRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.PlanetariumDome, error) {
				return []domain.PlanetariumDome{
					{ID: 1, Name: "Blue", Rows: 20, SeatsInRow: 20},
					{ID: 2, Name: "Red", Rows: 10, SeatsInRow: 15},
				}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/planetarium-domes", nil)

	app.GetDomes(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("GetDomes() status = %v, want %v", w.Code, http.StatusOK)
	}

	var response api.DomeListResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := api.DomeListResponse{
		Domes: []api.DomeResponse{
			{Id: 1, Name: "Blue", Rows: 20, SeatsInRow: 20, Capacity: 400},
			{Id: 2, Name: "Red", Rows: 10, SeatsInRow: 15, Capacity: 150},
		},
	}

	if diff := cmp.Diff(want, response); diff != "" {
		t.Errorf("GetDomes() response mismatch (-want +got):\n%s", diff)
	}
}
