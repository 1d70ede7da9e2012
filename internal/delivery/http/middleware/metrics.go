package middleware

import (
	"net/http"
	"time"

	"weddinginvites/internal/metrics"
)

// Metrics records request count and latency per matched route. The route is
// read after the mux has served the request, so it must wrap the mux itself.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrapWriter(w)
		next.ServeHTTP(wrapped, r)
		metrics.ObserveHTTPRequest(r.Method, r.Pattern, wrapped.status, time.Since(start))
	})
}
