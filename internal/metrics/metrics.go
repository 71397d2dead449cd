package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts completed scenario runs by outcome.
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "momentum",
		Name:      "simulations_total",
		Help:      "Completed Monte Carlo scenario runs.",
	}, []string{"status"})

	// SimulationIterations observes the iteration count per run.
	SimulationIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "momentum",
		Name:      "simulation_iterations",
		Help:      "Iterations executed per scenario run.",
		Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000, 2000},
	})

	// SimulationDuration observes wall time per run in seconds.
	SimulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "momentum",
		Name:      "simulation_duration_seconds",
		Help:      "Wall time per scenario run.",
		Buckets:   prometheus.DefBuckets,
	})

	// SweepsTotal counts completed counterfactual sweeps.
	SweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "momentum",
		Name:      "sweeps_total",
		Help:      "Completed formation/tactic sweeps.",
	}, []string{"status"})

	// CacheHits counts report cache hits and misses.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "momentum",
		Name:      "report_cache_requests_total",
		Help:      "Report cache lookups by result.",
	}, []string{"result"})
)
