package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/chipapapo/planetarium-service-api/api"
)

func TestGetHealth(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.config.Env = "test"
	})

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)

	app.GetHealth(w, r)

	if got := w.Code; got != http.StatusOK {
		t.Errorf("GetHealth() status = %v, want %v", got, http.StatusOK)
	}

	var response api.HealthcheckResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Status != "UP" {
		t.Errorf("GetHealth() status = %q, want %q", response.Status, "UP")
	}

	if response.SystemInfo.Environment != "test" {
		t.Errorf("GetHealth() environment = %q, want %q", response.SystemInfo.Environment, "test")
	}
}
