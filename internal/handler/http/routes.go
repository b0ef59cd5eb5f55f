package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitRoutes builds the chi router with the full middleware chain and both
// route groups: the public account endpoints and the token-protected ledger
// endpoints.
func (h *Handler) InitRoutes() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.Version)

		r.Route("/user", func(r chi.Router) {
			r.Post("/create-account", h.CreateAccount)
			r.Post("/sign-in", h.SignIn)

			r.Group(func(protected chi.Router) {
				protected.Use(h.auth)
				protected.Post("/add-spending", h.AddSpending)
				protected.Post("/delete-spending", h.DeleteSpending)
				protected.Post("/add-budget", h.AddBudget)
			})
		})
	})

	return router
}
