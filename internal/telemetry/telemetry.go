// Package telemetry records call-site timings and counters for the DP
// core's hot paths (odometer queries, sampler draws): a package-level
// mutex-guarded accumulator, drained on read.
package telemetry

import (
	"sync"
	"time"
)

// Entry is one recorded span.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
	counts map[string]uint64
)

// Mark appends a timing entry for the span started at start. Call as
// defer telemetry.Mark(time.Now(), "odometer.invoke") at the top of a
// function.
func Mark(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	defer mu.Unlock()
	record = append(record, Entry{Label: label, Dur: elapsed})
}

// Count increments a named counter, for call sites where only a tally
// is wanted (e.g. sampler draws per distribution).
func Count(label string) {
	mu.Lock()
	defer mu.Unlock()
	if counts == nil {
		counts = make(map[string]uint64)
	}
	counts[label]++
}

// SnapshotAndReset returns a copy of the recorded timing entries and
// clears the accumulator.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// SnapshotCounts returns a copy of the recorded counters and clears
// them.
func SnapshotCounts() map[string]uint64 {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]uint64, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	counts = nil
	return out
}
