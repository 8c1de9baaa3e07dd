package measurements

import (
	"math"
	"math/big"

	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/metric"
	"vsis-dpcore/samplers"
)

// GaussianMechanism adapts DiscreteGaussianMechanism to continuous
// (float64) inputs by rounding to a Z*2^k granularity before dispatching
// to the discrete variant, then scaling the integer release back down
//. k is the granularity parameter: larger k means finer
// rounding (smaller gaps between representable outputs) at the cost of
// a larger sensitivity in integer units (d_in*2^k plus one unit for the
// rounding), against which scale is applied.
func GaussianMechanism(src samplers.Source, scale arith.Rat, k int) (*core.Measurement[float64, float64], error) {
	if k < 0 {
		return nil, errs.NewMakeMeasurement("gaussian_mechanism: granularity k must be non-negative")
	}
	inner, err := DiscreteGaussianMechanism(src, scale)
	if err != nil {
		return nil, err
	}
	granularity := math.Ldexp(1, -k) // 2^-k

	in := domain.NewAtomDomain[float64]()
	fn := core.NewFunction(func(x float64) (float64, error) {
		if math.IsNaN(x) {
			return 0, errs.NewMakeMeasurement("gaussian_mechanism: input is NaN")
		}
		rounded := int64(math.Round(x / granularity))
		out, err := inner.Invoke(rounded)
		if err != nil {
			return 0, err
		}
		return float64(out) * granularity, nil
	})
	privacy := core.PrivacyMap(func(dIn arith.Rat) (arith.Rat, error) {
		// dIn is a float64 distance; in integer units of 2^-k it is
		// dIn*2^k, and rounding to granularity 2^-k can inflate that
		// integer-domain sensitivity by at most one unit; account for it
		// outward.
		unitsPerOne := arith.FiniteRat(new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(k))))
		dRounded := arith.InfAdd(arith.InfMul(dIn, unitsPerOne), arith.IntRat(1))
		return inner.Map(dRounded)
	})
	return core.NewMeasurement[float64, float64](in, metric.AbsoluteDistance[float64]{}, inner.OutputMeasure, fn, privacy)
}
