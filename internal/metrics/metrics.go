package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// generationTotal counts generative-text calls.
	// Labels:
	// - kind:    "invitation", "invitation_batch", "programme"
	// - outcome: "success" or a failure reason ("transport", "status", "malformed", "empty")
	generationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weddinginvites",
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Number of generative-text requests by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	// generationDurationSeconds observes the latency of generative-text calls.
	generationDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "weddinginvites",
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Duration of generative-text requests.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		},
		[]string{"outcome"},
	)

	// dispatchJobsTotal counts dispatch job transitions.
	// Labels:
	// - state: "scheduled", "delivered", "failed", "cancelled"
	dispatchJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weddinginvites",
			Subsystem: "dispatch",
			Name:      "jobs_total",
			Help:      "Number of dispatch jobs by state transition.",
		},
		[]string{"state"},
	)

	// dispatchPending tracks jobs waiting for their fire time.
	dispatchPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "weddinginvites",
			Subsystem: "dispatch",
			Name:      "pending_jobs",
			Help:      "Number of dispatch jobs waiting for their fire time.",
		},
	)

	// guestsImportedTotal counts guests written by CSV imports.
	guestsImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "weddinginvites",
			Subsystem: "guests",
			Name:      "imported_total",
			Help:      "Number of guests inserted by CSV imports.",
		},
	)
)

// IncGeneration increments the generation counter for the given kind and outcome.
func IncGeneration(kind, outcome string) {
	if kind == "" {
		kind = "unknown"
	}
	if outcome == "" {
		outcome = "unknown"
	}
	generationTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveGenerationDuration records the latency of one generative-text call.
func ObserveGenerationDuration(outcome string, seconds float64) {
	if outcome == "" {
		outcome = "unknown"
	}
	generationDurationSeconds.WithLabelValues(outcome).Observe(seconds)
}

// IncDispatchJob increments the dispatch counter for the given state.
func IncDispatchJob(state string) {
	if state == "" {
		state = "unknown"
	}
	dispatchJobsTotal.WithLabelValues(state).Inc()
}

// SetDispatchPending sets the number of pending dispatch jobs.
func SetDispatchPending(n int) {
	dispatchPending.Set(float64(n))
}

// AddGuestsImported adds n to the imported guests counter.
func AddGuestsImported(n int) {
	if n > 0 {
		guestsImportedTotal.Add(float64(n))
	}
}
