package transforms

import (
	"testing"

	"vsis-dpcore/arith"
)

func TestNewClamp_ClampsRange(t *testing.T) {
	tr, err := NewClamp(0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.Invoke([]int64{-3, 5, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{0, 5, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNewBoundedSum_MapMatchesBound(t *testing.T) {
	tr, err := NewBoundedSum(0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.Invoke([]int64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
	d, err := tr.Map(arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cmp(arith.IntRat(10)) != 0 {
		t.Fatalf("map(1) = %s, want 10", d.String())
	}
}
