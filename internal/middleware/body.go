package middleware

import (
	"io"
	"net/http"
)

// LimitBody caps the request body at maxBytes. Whatever the handler leaves
// unread is drained before the body is closed, so the connection can be reused.
func LimitBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			r.Body = http.MaxBytesReader(w, body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBytes))
			_ = body.Close()
		})
	}
}
