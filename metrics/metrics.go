// Package metrics exposes solver counters on a dedicated Prometheus registry
// and writes them to a node_exporter textfile after a run.
package metrics

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/cvrp/cover"
)

var (
	// Registry is the dedicated Prometheus registry for the solver.
	Registry = prometheus.NewRegistry()

	// CandidateRoutes is the size of the last generated candidate set.
	CandidateRoutes = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "cvrp_candidate_routes", Help: "Candidate routes kept by the last generation."},
	)
	// SearchNodes counts visited search states by strategy.
	SearchNodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cvrp_search_nodes_total", Help: "Search states visited."},
		[]string{"strategy"},
	)
	// SearchLeaves counts evaluated covering combinations by strategy.
	SearchLeaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cvrp_search_leaves_total", Help: "Covering combinations evaluated."},
		[]string{"strategy"},
	)
	// SearchImprovements counts incumbent replacements by strategy.
	SearchImprovements = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cvrp_search_improvements_total", Help: "Incumbent replacements."},
		[]string{"strategy"},
	)
	// SearchDuration records search wall-clock time in seconds.
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "cvrp_search_duration_seconds", Help: "Search duration in seconds.", Buckets: prometheus.ExponentialBuckets(0.001, 4, 10)},
		[]string{"strategy"},
	)
	// WorkerResults counts collected distributed results by transport and status.
	WorkerResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cvrp_worker_results_total", Help: "Distributed worker results by transport and status."},
		[]string{"transport", "status"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the solver collectors plus the Go and process
// collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(CandidateRoutes)
		Registry.MustRegister(SearchNodes)
		Registry.MustRegister(SearchLeaves)
		Registry.MustRegister(SearchImprovements)
		Registry.MustRegister(SearchDuration)
		Registry.MustRegister(WorkerResults)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveSearch records one finished search.
func ObserveSearch(strategy string, candidates int, st cover.Stats, elapsed time.Duration) {
	CandidateRoutes.Set(float64(candidates))
	SearchNodes.WithLabelValues(strategy).Add(float64(st.Nodes))
	SearchLeaves.WithLabelValues(strategy).Add(float64(st.Leaves))
	SearchImprovements.WithLabelValues(strategy).Add(float64(st.Improvements))
	SearchDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// ObserveWorkerResult counts one collected worker result.
func ObserveWorkerResult(transport, status string) {
	WorkerResults.WithLabelValues(transport, status).Inc()
}

// WriteTextfile writes every metric of Registry to path in the text
// exposition format.
func WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, Registry), "write metrics %s", path)
}
