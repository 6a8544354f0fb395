package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if runID := lw.Header().Get(runIDHeader); runID != "" {
			event = event.Str("run_id", runID)
		}
		if subject, ok := utils.GetSubjectFromContext(r.Context()); ok {
			event = event.Str("subject", subject)
		}
		event.Send()
	})
}
