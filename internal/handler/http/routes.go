package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// must be set before the sub-routers are mounted so they inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Get("/security-question", h.securityQuestion)
			r.Post("/forgot-password", h.forgotPassword)

			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listJobs)
			r.Post("/", h.createJob)
			r.Get("/analytics", h.getAnalytics)
			r.Get("/{id}", h.getJob)
			r.Patch("/{id}", h.updateJob)
			r.Delete("/{id}", h.deleteJob)
		})
	})

	return router
}
