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
	router.Get("/api/version", h.getServerVersion)

	// every metadata route is scoped to one wallet; the auth middleware
	// checks that the token subject matches the wallet in the path
	router.Route("/api/metadata/{ethPublic}", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.getMetadata)
		r.Put("/", h.saveMetadata)
		r.Post("/lock", h.acquireLock)
		r.Delete("/lock", h.releaseLock)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
