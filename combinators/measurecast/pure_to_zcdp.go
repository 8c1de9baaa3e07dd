// Package measurecast holds one file per lossless measure conversion,
// one focused numeric primitive per file.
package measurecast

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/measure"
)

// PureToZCDP rewraps a pure-epsilon measurement's privacy map as a zCDP
// privacy map via the standard rho = eps^2/2 bound, a lossless measure
// cast that never requires re-running the measurement's function.
func PureToZCDP[DI, TO any](m *core.Measurement[DI, TO]) *core.Measurement[DI, TO] {
	pi := m.Privacy
	return &core.Measurement[DI, TO]{
		InputDomain:   m.InputDomain,
		InputMetric:   m.InputMetric,
		OutputMeasure: measure.ZCDP{},
		Function:      m.Function,
		Privacy: func(dIn arith.Rat) (arith.Rat, error) {
			eps, err := pi(dIn)
			if err != nil {
				return arith.Rat{}, err
			}
			return measure.PureToZCDP(eps)
		},
	}
}
