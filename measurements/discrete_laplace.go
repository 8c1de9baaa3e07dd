// Package measurements implements the noise/selection mechanisms:
// discrete Laplace/Gaussian, the continuous Gaussian wrapper, and
// report-noisy-top-k in its Gumbel/Exponential/Permute-and-Flip
// variants.
package measurements

import (
	"math/big"

	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
	"vsis-dpcore/samplers"
)

// DiscreteLaplaceMechanism samples discrete_laplace(scale) and adds it
// to an integer input; its privacy map under max-divergence is
// d -> d/scale. scale == 0 is a no-op whose output
// distance is infinite except when d_in == 0.
func DiscreteLaplaceMechanism(src samplers.Source, scale arith.Rat) (*core.Measurement[int64, int64], error) {
	if scale.Sign() < 0 {
		return nil, errs.NewMakeMeasurement("discrete_laplace_mechanism: scale must be non-negative")
	}
	in := domain.NewAtomDomain[int64]()
	scaleRat := scale.Val
	fn := core.NewFunction(func(x int64) (int64, error) {
		if scaleRat == nil || scaleRat.Sign() == 0 {
			return x, nil
		}
		noise, err := samplers.DiscreteLaplace(src, scaleRat)
		if err != nil {
			return 0, errs.WrapFailedFunction(err, "discrete_laplace_mechanism: sampling failed")
		}
		sum := new(big.Int).Add(big.NewInt(x), noise)
		if !sum.IsInt64() {
			return 0, errs.NewFailedFunction("discrete_laplace_mechanism: noised release overflows int64")
		}
		return sum.Int64(), nil
	})
	privacy := core.PrivacyMap(func(dIn arith.Rat) (arith.Rat, error) {
		if scaleRat == nil || scaleRat.Sign() == 0 {
			if dIn.Sign() == 0 {
				return arith.IntRat(0), nil
			}
			return arith.PosInf(), nil
		}
		return arith.InfDiv(dIn, scale), nil
	})
	return core.NewMeasurement[int64, int64](in, metric.AbsoluteDistance[int64]{}, measure.MaxDivergence{}, fn, privacy)
}
