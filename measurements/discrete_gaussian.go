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

// DiscreteGaussianMechanism samples discrete_gaussian(scale^2) and adds
// it to an integer input; its privacy map under rho-zCDP is
// d -> d^2 / (2*scale^2).
func DiscreteGaussianMechanism(src samplers.Source, scale arith.Rat) (*core.Measurement[int64, int64], error) {
	if scale.Sign() < 0 {
		return nil, errs.NewMakeMeasurement("discrete_gaussian_mechanism: scale must be non-negative")
	}
	in := domain.NewAtomDomain[int64]()
	scaleRat := scale.Val
	var variance *big.Rat
	if scaleRat != nil {
		variance = new(big.Rat).Mul(scaleRat, scaleRat)
	}
	fn := core.NewFunction(func(x int64) (int64, error) {
		if variance == nil || variance.Sign() == 0 {
			return x, nil
		}
		noise, err := samplers.DiscreteGaussian(src, variance)
		if err != nil {
			return 0, errs.WrapFailedFunction(err, "discrete_gaussian_mechanism: sampling failed")
		}
		sum := new(big.Int).Add(big.NewInt(x), noise)
		if !sum.IsInt64() {
			return 0, errs.NewFailedFunction("discrete_gaussian_mechanism: noised release overflows int64")
		}
		return sum.Int64(), nil
	})
	privacy := core.PrivacyMap(func(dIn arith.Rat) (arith.Rat, error) {
		if variance == nil || variance.Sign() == 0 {
			if dIn.Sign() == 0 {
				return arith.IntRat(0), nil
			}
			return arith.PosInf(), nil
		}
		sq := arith.InfMul(dIn, dIn)
		denom := arith.InfMul(arith.IntRat(2), arith.FiniteRat(variance))
		return arith.InfDiv(sq, denom), nil
	})
	return core.NewMeasurement[int64, int64](in, metric.AbsoluteDistance[int64]{}, measure.ZCDP{}, fn, privacy)
}
