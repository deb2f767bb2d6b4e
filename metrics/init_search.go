// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSearchMetrics() {
	r.SearchCandidatesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topocast_search_candidates_total",
			Help: "Candidate topologies offered to the table by operator and outcome",
		},
		[]string{"operator", "outcome"},
	)

	r.CatalogueEntries = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topocast_catalogue_entries",
			Help: "Entries currently held in the topology table",
		},
	)

	r.SearchPassDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "topocast_search_pass_duration_seconds",
			Help:    "Duration of a topology search pass in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1.0, 10.0, 60.0},
		},
		[]string{"pass"},
	)
}
