package measurecast

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/measure"
)

// ZCDPToRenyi rewraps a zCDP measurement's privacy map at a fixed Renyi
// order alpha via the standard rho-zCDP bound D_alpha <= rho * alpha.
func ZCDPToRenyi[DI, TO any](m *core.Measurement[DI, TO], alpha arith.Rat) *core.Measurement[DI, TO] {
	pi := m.Privacy
	return &core.Measurement[DI, TO]{
		InputDomain:   m.InputDomain,
		InputMetric:   m.InputMetric,
		OutputMeasure: measure.RenyiDivergence{Alpha: alpha},
		Function:      m.Function,
		Privacy: func(dIn arith.Rat) (arith.Rat, error) {
			rho, err := pi(dIn)
			if err != nil {
				return arith.Rat{}, err
			}
			return measure.ZCDPToRenyi(rho, alpha)
		},
	}
}
