package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chipapapo/planetarium-service-api/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"request_id": {},
	"created_at": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		switch nested := m[k].(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if nestedMap, ok := item.(map[string]any); ok {
					cleanMap(nestedMap)
				}
			}
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE tickets, reservations, show_sessions, astronomy_show_themes,
			astronomy_shows, show_themes, planetarium_domes, users
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func createUser(t testing.TB, db *pgxpool.Pool, email, plaintext string, isStaff bool) int {
	var user domain.User
	require.NoError(t, user.Password.Set(plaintext))

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (name, email, password_hash, is_staff)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "Test User", email, user.Password.Hash, isStaff).Scan(&id)
	require.NoError(t, err)

	return id
}

// loginAs authenticates through the real login endpoint and returns the
// session cookies for subsequent requests.
func loginAs(t testing.TB, app *TestApp, email, plaintext string) []*http.Cookie {
	body := strings.NewReader(fmt.Sprintf(`{"email": %q, "password": %q}`, email, plaintext))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusNoContent, res.StatusCode, "login failed for %s", email)

	cookies := res.Cookies()
	require.NotEmpty(t, cookies, "login returned no session cookie")

	return cookies
}

func createTheme(t testing.TB, db *pgxpool.Pool, name string) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO show_themes (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func createDome(t testing.TB, db *pgxpool.Pool, name string, rows, seatsInRow int) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO planetarium_domes (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, rows, seatsInRow).Scan(&id)
	require.NoError(t, err)

	return id
}

func createShow(t testing.TB, db *pgxpool.Pool, title, description string, themeIds ...int) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO astronomy_shows (title, description)
		VALUES ($1, $2)
		RETURNING id
	`, title, description).Scan(&id)
	require.NoError(t, err)

	for _, themeId := range themeIds {
		_, err := db.Exec(context.Background(), `
			INSERT INTO astronomy_show_themes (show_id, theme_id) VALUES ($1, $2)
		`, id, themeId)
		require.NoError(t, err)
	}

	return id
}

func createSession(t testing.TB, db *pgxpool.Pool, showId, domeId int, startsAt time.Time) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO show_sessions (show_id, dome_id, starts_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, showId, domeId, startsAt).Scan(&id)
	require.NoError(t, err)

	return id
}
