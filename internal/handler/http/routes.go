package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getVersion)

	router.Group(func(r chi.Router) {
		if h.cfg.TokenSignKey != "" {
			r.Use(h.auth)
		}
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		r.Post("/api/signature-requests", h.createSignatureRequest)
		r.Post("/api/executions", h.execute)

		r.Get("/api/executions/orphans", h.getOrphanedDocuments)
		r.Get("/api/executions/{runID}", h.getExecution)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
