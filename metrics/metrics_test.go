package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.LPSolvesTotal == nil || r.LPSolveDuration == nil || r.ScheduleTasksTotal == nil {
		t.Error("solver metrics not initialized")
	}
	if r.SearchCandidatesTotal == nil || r.CatalogueEntries == nil || r.SearchPassDuration == nil {
		t.Error("search metrics not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordLPSolve(t *testing.T) {
	r := NewRegistry()
	r.RecordLPSolve("optimal", 2*time.Millisecond)
	r.RecordLPSolve("optimal", 3*time.Millisecond)
	r.RecordLPSolve("infeasible", time.Millisecond)

	counter, err := r.LPSolvesTotal.GetMetricWithLabelValues("optimal")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := metric.Counter.GetValue(); got != 2 {
		t.Errorf("optimal solves = %v; want 2", got)
	}

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "topocast_lp_solve_duration_seconds" {
			found = true
			if n := mf.GetMetric()[0].GetHistogram().GetSampleCount(); n != 3 {
				t.Errorf("histogram samples = %d; want 3", n)
			}
		}
	}
	if !found {
		t.Error("duration histogram not gathered")
	}
}

func TestRecordCandidate(t *testing.T) {
	r := NewRegistry()
	r.RecordCandidate("line", true)
	r.RecordCandidate("line", false)
	r.RecordCandidate("line", false)
	r.SetCatalogueEntries(7)
	r.RecordTasks(4)

	var metric dto.Metric
	c, _ := r.SearchCandidatesTotal.GetMetricWithLabelValues("line", "rejected")
	_ = c.Write(&metric)
	if got := metric.Counter.GetValue(); got != 2 {
		t.Errorf("rejected = %v; want 2", got)
	}

	metric.Reset()
	_ = r.CatalogueEntries.Write(&metric)
	if got := metric.Gauge.GetValue(); got != 7 {
		t.Errorf("entries = %v; want 7", got)
	}

	metric.Reset()
	_ = r.ScheduleTasksTotal.Write(&metric)
	if got := metric.Counter.GetValue(); got != 4 {
		t.Errorf("tasks = %v; want 4", got)
	}
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	r.RecordLPSolve("optimal", time.Second)
	r.RecordCandidate("deg", true)
	r.SetCatalogueEntries(1)
	r.RecordTasks(1)
	r.RecordPass("1", time.Second)
}
