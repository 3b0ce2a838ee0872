package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"

	ports "circle-backend/internal/domain/ports/output"
)

// Metrics records request counts and latencies labeled by the chi route
// pattern, not the raw path, to keep label cardinality bounded.
func Metrics(metrics ports.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = r.URL.Path
			}
			metrics.IncrementHTTPRequests(r.Method, pattern, strconv.Itoa(ww.Status()))
			metrics.RecordHTTPRequestDuration(r.Method, pattern, time.Since(start))
		})
	}
}
