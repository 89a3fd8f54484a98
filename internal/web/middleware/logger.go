package middleware

import (
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

// WithLogger puts the logger into the request context and traces each
// request with its duration and status.
func WithLogger(log logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r.WithContext(logr.NewContext(r.Context(), log)))

			log.V(1).Info("request",
				"method", r.Method,
				"host", r.Host,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start).String())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
