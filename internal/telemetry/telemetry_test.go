package telemetry

import (
	"testing"
	"time"
)

func TestMark_RecordsEntry(t *testing.T) {
	SnapshotAndReset()
	start := time.Now()
	Mark(start, "unit-test")
	entries := SnapshotAndReset()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Label != "unit-test" {
		t.Fatalf("label = %q, want unit-test", entries[0].Label)
	}
	if len(SnapshotAndReset()) != 0 {
		t.Fatalf("expected accumulator to be cleared after snapshot")
	}
}

func TestCount_Accumulates(t *testing.T) {
	SnapshotCounts()
	Count("foo")
	Count("foo")
	Count("bar")
	counts := SnapshotCounts()
	if counts["foo"] != 2 {
		t.Fatalf("foo = %d, want 2", counts["foo"])
	}
	if counts["bar"] != 1 {
		t.Fatalf("bar = %d, want 1", counts["bar"])
	}
	if len(SnapshotCounts()) != 0 {
		t.Fatalf("expected counters to be cleared after snapshot")
	}
}
