package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every served request once the handler is done with it.
// 5xx responses are logged as warnings, the rest at debug level.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"status": resp.statusCode,
				"took":   time.Since(begin).String(),
				"origin": r.Header.Get("Origin"),
			})
			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return
			}
			entry.Debug("request served")
		})
	}
}
