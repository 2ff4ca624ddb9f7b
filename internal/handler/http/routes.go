package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/users", h.register)
		r.Post("/sessions", h.login)
		r.Post("/reset_password", h.resetRequest)
		r.Put("/reset_password", h.resetConfirm)
	})

	// routes that require a valid session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Delete("/sessions", h.logout)
		r.Get("/profile", h.profile)
	})

	return router
}
