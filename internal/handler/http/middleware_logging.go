package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/mssola/user_agent"
	"github.com/rs/zerolog"
)

// withLogging writes one access-log line per request. Server errors are
// logged at error level and client errors at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		log := logger.FromRequest(r)
		var event *zerolog.Event
		switch {
		case rec.status >= http.StatusInternalServerError:
			event = log.Error()
		case rec.status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		agent := user_agent.New(r.UserAgent())
		browser, browserVersion := agent.Browser()

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rec.status).
			Int("size", rec.size).
			Dur("duration", time.Since(started)).
			Str("ua_browser", browser).
			Str("ua_browser_version", browserVersion).
			Str("ua_os", agent.OS()).
			Bool("ua_bot", agent.Bot()).
			Msg("request served")
	})
}
