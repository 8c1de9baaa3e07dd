package combinators

import (
	"math/big"
	"testing"

	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
)

func clampTransform(t *testing.T) *core.Transformation[[]int64, []int64] {
	t.Helper()
	in := domain.NewVectorDomain(domain.NewAtomDomain[int64]())
	out := domain.NewVectorDomain(domain.NewAtomDomain[int64]().WithBounds(0, 10))
	fn := core.NewFunction(func(xs []int64) ([]int64, error) {
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
	tr, err := core.NewTransformation[[]int64, []int64](
		in, metric.SymmetricDistance{}, out, metric.SymmetricDistance{},
		fn, core.NewFromConstant(arith.IntRat(1)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tr
}

func sumTransform(t *testing.T) *core.Transformation[[]int64, int64] {
	t.Helper()
	in := domain.NewVectorDomain(domain.NewAtomDomain[int64]().WithBounds(0, 10))
	out := domain.NewAtomDomain[int64]()
	fn := core.NewFunction(func(xs []int64) (int64, error) {
		var s int64
		for _, x := range xs {
			s += x
		}
		return s, nil
	})
	tr, err := core.NewTransformation[[]int64, int64](
		in, metric.SymmetricDistance{}, out, metric.AbsoluteDistance[int64]{},
		fn, core.NewFromConstant(arith.IntRat(10)),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tr
}

func TestChainTT(t *testing.T) {
	clamp := clampTransform(t)
	clamp.OutputDomain = domain.NewVectorDomain(domain.NewAtomDomain[int64]().WithBounds(0, 10))
	sum := sumTransform(t)
	chained, err := ChainTT[[]int64, []int64, int64](sum, clamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := chained.Invoke([]int64{-5, 3, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 13 {
		t.Fatalf("got %d, want 13", got)
	}
	d, err := chained.Map(arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cmp(arith.IntRat(10)) != 0 {
		t.Fatalf("d = %s, want 10", d.String())
	}
}

func TestBasicComposition(t *testing.T) {
	in := domain.NewAtomDomain[int64]()
	mkM := func(eps int64) *core.Measurement[int64, int64] {
		m, err := core.NewMeasurement[int64, int64](
			in, metric.AbsoluteDistance[int64]{}, measure.MaxDivergence{},
			core.NewFunction(func(x int64) (int64, error) { return x, nil }),
			core.PrivacyMap(core.NewFromConstant(arith.FiniteRat(big.NewRat(eps, 1)))),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return m
	}
	composed, err := BasicComposition([]*core.Measurement[int64, int64]{mkM(1), mkM(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, err := composed.Map(arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cmp(arith.IntRat(3)) != 0 {
		t.Fatalf("d = %s, want 3", d.String())
	}
}

func TestChainPM(t *testing.T) {
	in := domain.NewAtomDomain[int64]()
	m0, err := core.NewMeasurement[int64, int64](
		in, metric.AbsoluteDistance[int64]{}, measure.MaxDivergence{},
		core.NewFunction(func(x int64) (int64, error) { return x + 1, nil }),
		core.PrivacyMap(core.NewFromConstant(arith.IntRat(1))),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	post := ChainPM[int64, int64, string](func(x int64) (string, error) {
		return "ok", nil
	}, m0)
	out, err := post.Invoke(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok" {
		t.Fatalf("got %q, want ok", out)
	}
	d, err := post.Map(arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cmp(arith.IntRat(1)) != 0 {
		t.Fatalf("d = %s, want 1 (postprocessing leaves privacy map unchanged)", d.String())
	}
}
