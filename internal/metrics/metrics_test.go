package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestIncDispatchJob(t *testing.T) {
	before := testutil.ToFloat64(dispatchJobsTotal.WithLabelValues("delivered"))
	IncDispatchJob("delivered")
	IncDispatchJob("delivered")
	require.Equal(t, before+2, testutil.ToFloat64(dispatchJobsTotal.WithLabelValues("delivered")))
}

func TestIncGeneration_DefaultsLabels(t *testing.T) {
	before := testutil.ToFloat64(generationTotal.WithLabelValues("unknown", "unknown"))
	IncGeneration("", "")
	require.Equal(t, before+1, testutil.ToFloat64(generationTotal.WithLabelValues("unknown", "unknown")))
}

func TestSetDispatchPending(t *testing.T) {
	SetDispatchPending(7)
	require.Equal(t, float64(7), testutil.ToFloat64(dispatchPending))
	SetDispatchPending(0)
	require.Equal(t, float64(0), testutil.ToFloat64(dispatchPending))
}

func TestAddGuestsImported_IgnoresNonPositive(t *testing.T) {
	before := testutil.ToFloat64(guestsImportedTotal)
	AddGuestsImported(0)
	AddGuestsImported(-3)
	AddGuestsImported(4)
	require.Equal(t, before+4, testutil.ToFloat64(guestsImportedTotal))
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound, 5*time.Millisecond)
	require.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
