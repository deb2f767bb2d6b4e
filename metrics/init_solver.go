// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolverMetrics() {
	r.LPSolvesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topocast_lp_solves_total",
			Help: "Total number of LP solves by outcome status",
		},
		[]string{"status"},
	)

	r.LPSolveDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topocast_lp_solve_duration_seconds",
			Help:    "LP solve duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
	)

	r.ScheduleTasksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topocast_schedule_tasks_total",
			Help: "Total number of (step, destination) LP tasks built",
		},
	)
}
