package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorRecordMatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewWithRegisterer(reg)

	c.RecordMatch("find_attachment", "matched")
	c.RecordMatch("find_attachment", "matched")
	c.RecordMatch("find_transaction", "no_match")

	got := testutil.ToFloat64(c.matchesTotal.WithLabelValues("find_attachment", "matched"))
	if got != 2 {
		t.Errorf("matched counter = %v, want 2", got)
	}

	got = testutil.ToFloat64(c.matchesTotal.WithLabelValues("find_transaction", "no_match"))
	if got != 1 {
		t.Errorf("no_match counter = %v, want 1", got)
	}
}

func TestCollectorRecordReconcileRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewWithRegisterer(reg)

	c.RecordReconcileRun(0.25)
	c.RecordReconcileRun(1.5)

	if got := testutil.ToFloat64(c.reconcileRuns); got != 2 {
		t.Errorf("run counter = %v, want 2", got)
	}
}
