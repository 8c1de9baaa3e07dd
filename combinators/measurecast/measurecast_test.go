package measurecast

import (
	"testing"

	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
)

func TestPureToZCDP(t *testing.T) {
	in := domain.NewAtomDomain[int64]()
	m, err := core.NewMeasurement[int64, int64](
		in, metric.AbsoluteDistance[int64]{}, measure.MaxDivergence{},
		core.NewFunction(func(x int64) (int64, error) { return x, nil }),
		core.PrivacyMap(core.NewFromConstant(arith.IntRat(2))),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zcdp := PureToZCDP(m)
	if zcdp.OutputMeasure.Name() != "ZCDP" {
		t.Fatalf("output measure = %s, want ZCDP", zcdp.OutputMeasure.Name())
	}
	d, err := zcdp.Map(arith.IntRat(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cmp(arith.IntRat(2)) != 0 {
		t.Fatalf("rho = %s, want 2 (eps=2 -> eps^2/2 = 2)", d.String())
	}
}
