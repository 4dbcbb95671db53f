package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/clumio-bot/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Client errors are
// logged at warn and server errors at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()
		uri, method := r.RequestURI, r.Method

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.statusCode()
		accessLogEvent(log, status).
			Str("uri", uri).
			Str("route", routePattern(r)).
			Str("method", method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Bool("slack", r.Header.Get(slackSignatureHeader) != "").
			Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
