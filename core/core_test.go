package core

import (
	"math/big"
	"testing"

	"vsis-dpcore/arith"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
)

func TestNewFromConstant(t *testing.T) {
	sigma := NewFromConstant(arith.FiniteRat(big.NewRat(3, 1)))
	got, err := sigma(arith.FiniteRat(big.NewRat(2, 1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(arith.IntRat(6)) != 0 {
		t.Fatalf("got %s, want 6", got.String())
	}
}

func TestChain(t *testing.T) {
	sigma0 := NewFromConstant(arith.IntRat(2))
	sigma1 := NewFromConstant(arith.IntRat(5))
	chained := Chain(sigma1, sigma0)
	got, err := chained(arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(arith.IntRat(10)) != 0 {
		t.Fatalf("got %s, want 10", got.String())
	}
}

func TestTransformation_ClampThenIdentity(t *testing.T) {
	in := domain.NewVectorDomain(domain.NewAtomDomain[int64]())
	out := domain.NewVectorDomain(domain.NewAtomDomain[int64]().WithBounds(0, 10))
	fn := NewFunction(func(xs []int64) ([]int64, error) {
		clamped := make([]int64, len(xs))
		for i, x := range xs {
			switch {
			case x < 0:
				clamped[i] = 0
			case x > 10:
				clamped[i] = 10
			default:
				clamped[i] = x
			}
		}
		return clamped, nil
	})
	tr, err := NewTransformation[[]int64, []int64](
		in, metric.SymmetricDistance{}, out, metric.SymmetricDistance{},
		fn, NewFromConstant(arith.IntRat(1)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.Invoke([]int64{-5, 3, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{0, 3, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	dOut, err := tr.Map(arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dOut.Cmp(arith.IntRat(1)) != 0 {
		t.Fatalf("dOut = %s, want 1", dOut.String())
	}
}

func TestTransformation_NegativeDistanceRejected(t *testing.T) {
	in := domain.NewVectorDomain(domain.NewAtomDomain[int64]())
	tr, err := NewTransformation[[]int64, []int64](
		in, metric.SymmetricDistance{}, in, metric.SymmetricDistance{},
		NewFunction(func(xs []int64) ([]int64, error) { return xs, nil }),
		NewFromConstant(arith.IntRat(1)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.Map(arith.IntRat(-1)); !errs.Is(err, errs.InvalidDistance) {
		t.Fatalf("expected InvalidDistance, got %v", err)
	}
}

func TestMeasurement_Check(t *testing.T) {
	in := domain.NewAtomDomain[int64]()
	privacy := NewFromConstant(arith.FiniteRat(big.NewRat(1, 10)))
	m, err := NewMeasurement[int64, int64](
		in, metric.AbsoluteDistance[int64]{}, measure.MaxDivergence{},
		NewFunction(func(x int64) (int64, error) { return x, nil }),
		PrivacyMap(privacy),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := m.Check(arith.IntRat(10), arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected check to pass: pi(10) == 1 <= dOut == 1")
	}
	ok, err = m.Check(arith.IntRat(10), arith.FiniteRat(big.NewRat(1, 2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected check to fail: pi(10) == 1 > dOut == 1/2")
	}
}
