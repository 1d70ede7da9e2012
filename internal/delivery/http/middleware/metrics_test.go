package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsMatchedRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/dispatch/jobs/{jobID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := Metrics(mux)

	for range 2 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/dispatch/jobs/some-id", nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	expected := `
# HELP weddinginvites_http_requests_total Total number of HTTP requests processed.
# TYPE weddinginvites_http_requests_total counter
weddinginvites_http_requests_total{method="DELETE",route="DELETE /api/dispatch/jobs/{jobID}",status="404"} 2
`
	err := testutil.GatherAndCompare(prometheus.DefaultGatherer, strings.NewReader(expected), "weddinginvites_http_requests_total")
	require.NoError(t, err)
}
