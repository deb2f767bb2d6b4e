// SPDX-License-Identifier: MIT

// Package metrics exposes prometheus instrumentation for the BFB scheduler
// and the topology search. A nil *Registry is valid and records nothing.
package metrics

import (
	"time"
)

// RecordLPSolve records one LP solve with its outcome status.
func (r *Registry) RecordLPSolve(status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.LPSolvesTotal.WithLabelValues(status).Inc()
	r.LPSolveDuration.Observe(duration.Seconds())
}

// RecordTasks adds n built LP tasks.
func (r *Registry) RecordTasks(n int) {
	if r == nil {
		return
	}
	r.ScheduleTasksTotal.Add(float64(n))
}

// RecordCandidate records a candidate offered by operator; accepted tells
// whether the table kept it.
func (r *Registry) RecordCandidate(operator string, accepted bool) {
	if r == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	r.SearchCandidatesTotal.WithLabelValues(operator, outcome).Inc()
}

// SetCatalogueEntries sets the current table size.
func (r *Registry) SetCatalogueEntries(n int) {
	if r == nil {
		return
	}
	r.CatalogueEntries.Set(float64(n))
}

// RecordPass records the duration of a search pass ("1" or "2").
func (r *Registry) RecordPass(pass string, duration time.Duration) {
	if r == nil {
		return
	}
	r.SearchPassDuration.WithLabelValues(pass).Observe(duration.Seconds())
}
