// SPDX-License-Identifier: MIT

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the scheduler and the topology search.
type Registry struct {
	// Solver Metrics
	LPSolvesTotal      *prometheus.CounterVec
	LPSolveDuration    prometheus.Histogram
	ScheduleTasksTotal prometheus.Counter

	// Search Metrics
	SearchCandidatesTotal *prometheus.CounterVec
	CatalogueEntries      prometheus.Gauge
	SearchPassDuration    *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry, created on first use.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initSolverMetrics()
	r.initSearchMetrics()

	return r
}

// Gatherer exposes the underlying registry for scraping or inspection.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
