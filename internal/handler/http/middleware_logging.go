package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/siterelay/internal/logger"
)

// withLogging emits one access-log line per request with the mirrored
// status and body size, so relayed upstream failures show up in the log
// with the status the caller actually received.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		method, uri := r.Method, r.RequestURI
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", method).
			Str("uri", uri).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
