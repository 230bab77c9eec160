package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
	EntriesListed     prometheus.Counter
	SearchMatches     prometheus.Counter

	// Snapshot for the shell's stats command
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current metric values for display
type Snapshot struct {
	Operations    int64   `json:"operations" yaml:"operations" toml:"operations"`
	Failures      int64   `json:"failures" yaml:"failures" toml:"failures"`
	EntriesListed int64   `json:"entries_listed" yaml:"entries_listed" toml:"entries_listed"`
	SearchMatches int64   `json:"search_matches" yaml:"search_matches" toml:"search_matches"`
	TotalSeconds  float64 `json:"total_seconds" yaml:"total_seconds" toml:"total_seconds"`
}

// NewMetrics creates a metrics collector registered on reg. Passing a fresh
// prometheus.NewRegistry keeps independent explorers from colliding.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of explorer operations",
			},
			[]string{"tool", "status"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Explorer operation duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"tool"},
		),
		OperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_errors_total",
				Help:      "Total number of failed explorer operations by error kind",
			},
			[]string{"tool", "code"},
		),
		EntriesListed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entries_listed_total",
				Help:      "Total number of directory entries returned by listings",
			},
		),
		SearchMatches: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_matches_total",
				Help:      "Total number of paths returned by searches",
			},
		),
	}
}

// NewNopMetrics returns metrics registered on a throwaway registry.
func NewNopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry(), "explorer")
}

// RecordOperation records a completed operation. code is empty on success.
func (m *Metrics) RecordOperation(tool, code string, duration time.Duration) {
	status := "success"
	if code != "" {
		status = "failure"
		m.OperationErrors.WithLabelValues(tool, code).Inc()
	}
	m.OperationsTotal.WithLabelValues(tool, status).Inc()
	m.OperationDuration.WithLabelValues(tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.Operations++
	m.snapshot.TotalSeconds += duration.Seconds()
	if code != "" {
		m.snapshot.Failures++
	}
	m.mu.Unlock()
}

// AddEntriesListed counts entries returned by a listing
func (m *Metrics) AddEntriesListed(n int) {
	m.EntriesListed.Add(float64(n))
	m.mu.Lock()
	m.snapshot.EntriesListed += int64(n)
	m.mu.Unlock()
}

// AddSearchMatches counts paths returned by a search
func (m *Metrics) AddSearchMatches(n int) {
	m.SearchMatches.Add(float64(n))
	m.mu.Lock()
	m.snapshot.SearchMatches += int64(n)
	m.mu.Unlock()
}

// Snapshot returns a copy of the current values
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
