package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("planetarium-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Post("/auth/register", app.RegisterUser)
	r.Post("/auth/login", app.Login)
	r.Post("/auth/logout", app.Logout)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Route("/themes", func(r chi.Router) {
			r.Get("/", app.GetThemes)
			r.With(app.requireStaff).Post("/", app.CreateTheme)
		})

		r.Route("/planetarium-domes", func(r chi.Router) {
			r.Get("/", app.GetDomes)
			r.Get("/{domeId}", app.GetDome)
			r.With(app.requireStaff).Post("/", app.CreateDome)
		})

		r.Route("/shows", func(r chi.Router) {
			r.Get("/", app.GetShows)
			r.With(app.requireStaff).Post("/", app.CreateShow)

			// Shows are read-only after creation: only GET on the detail
			// route and the dedicated image action are routed, everything
			// else falls through to 405.
			r.Route("/{showId}", func(r chi.Router) {
				r.Get("/", app.GetShow)
				r.With(app.requireStaff).Post("/image", app.UploadShowImage)
			})
		})

		r.Route("/show-sessions", func(r chi.Router) {
			r.Get("/", app.GetShowSessions)
			r.Get("/{sessionId}", app.GetShowSession)
			r.With(app.requireStaff).Post("/", app.CreateShowSession)
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", app.GetUserReservations)
			r.Post("/", app.CreateReservation)
		})
	})

	return r
}
