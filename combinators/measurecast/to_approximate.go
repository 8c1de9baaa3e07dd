package measurecast

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/measure"
)

// ToApproximate lifts a measurement's bare privacy map into an
// Approximate curve with a zero delta component - the trivial
// "mu -> (mu, 0)" cast every measure supports. The delta component is a
// real, constant-zero DeltaMap on the returned Measurement (not tracked
// out of band), so MapApproximate and any ApproximateComposer-aware
// composition see the full (epsilon, 0) pair.
func ToApproximate[DI, TO any](m *core.Measurement[DI, TO]) *core.Measurement[DI, TO] {
	pi := m.Privacy
	return &core.Measurement[DI, TO]{
		InputDomain:   m.InputDomain,
		InputMetric:   m.InputMetric,
		OutputMeasure: measure.Approximate[measure.MaxDivergence]{Inner: measure.MaxDivergence{}},
		Function:      m.Function,
		Privacy: func(dIn arith.Rat) (arith.Rat, error) {
			return pi(dIn)
		},
		DeltaMap: func(arith.Rat) (arith.Rat, error) {
			return arith.IntRat(0), nil
		},
	}
}
