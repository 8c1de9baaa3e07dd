package measurements

import (
	"testing"

	"vsis-dpcore/arith"
	"vsis-dpcore/samplers"
)

func TestReportNoisyTopK_ScaleZeroDeterministic(t *testing.T) {
	m, err := ReportNoisyTopK(samplers.OS, 2, arith.IntRat(0), Max, GumbelVariant, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x := []float64{0.5, 0.2, 0.9, 0.1, 0.7}
	got, err := m.Invoke(x)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("got %v, want [2 4]", got)
	}
}

func TestReportNoisyTopK_RejectsNaN(t *testing.T) {
	m, err := ReportNoisyTopK(samplers.OS, 1, arith.IntRat(0), Max, GumbelVariant, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nan := 0.0
	nan = nan / nan
	if _, err := m.Invoke([]float64{1, nan}); err == nil {
		t.Fatalf("expected error for NaN input")
	}
}

func TestReportNoisyTopK_KExceedsN(t *testing.T) {
	m, err := ReportNoisyTopK(samplers.OS, 5, arith.IntRat(0), Max, GumbelVariant, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Invoke([]float64{1, 2}); err == nil {
		t.Fatalf("expected error for k > n")
	}
}

func TestReportNoisyTopK_ExponentialMonotonicity(t *testing.T) {
	m, err := ReportNoisyTopK(samplers.NewRNG(42), 1, arith.IntRat(1), Max, ExponentialVariant, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	const trials = 2000
	var count0, count9 int
	for i := 0; i < trials; i++ {
		got, err := m.Invoke(u)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		switch got[0] {
		case 0:
			count0++
		case 9:
			count9++
		}
	}
	if count9 <= count0 {
		t.Fatalf("expected index 9 to be selected more often than index 0: count9=%d count0=%d", count9, count0)
	}
}
