package samplers

import (
	"math"
	"math/big"

	"vsis-dpcore/errs"
	"vsis-dpcore/internal/telemetry"
)

// DiscreteGaussian draws an exact integer sample from the discrete
// Gaussian distribution with the given rational variance sigma2>0, via
// the CKS'20 rejection scheme: propose from a discrete Laplace with
// integer scale t and accept with probability exp(-(|y|-sigma2/t)^2 /
// (2*sigma2)), an expression built purely from rational arithmetic on the
// integer proposal y, so the accept/reject draw through BernoulliExp is
// exact. t need only be a positive integer for correctness (any choice
// yields the right marginal on acceptance); t = floor(sqrt(sigma2))+1
// keeps the expected number of proposals bounded, matching the
// reference construction.
func DiscreteGaussian(src Source, sigma2 *big.Rat) (*big.Int, error) {
	telemetry.Count("sampler.discrete_gaussian")
	if sigma2.Sign() <= 0 {
		return nil, errs.NewInvalidDistance("discrete_gaussian: variance must be positive")
	}
	t := proposalScale(sigma2)
	tRat := new(big.Rat).SetInt64(t)
	two := big.NewRat(2, 1)
	for {
		y, err := DiscreteLaplace(src, tRat)
		if err != nil {
			return nil, err
		}
		absY := new(big.Rat).SetInt(new(big.Int).Abs(y))
		center := new(big.Rat).Quo(sigma2, tRat)
		diff := new(big.Rat).Sub(absY, center)
		numerator := new(big.Rat).Mul(diff, diff)
		denominator := new(big.Rat).Mul(sigma2, two)
		exponent := new(big.Rat).Quo(numerator, denominator)
		accept, err := BernoulliExp(src, exponent)
		if err != nil {
			return nil, err
		}
		if accept {
			return y, nil
		}
	}
}

// proposalScale picks a positive integer t close to sqrt(sigma2); the
// approximation only affects rejection efficiency, never correctness.
func proposalScale(sigma2 *big.Rat) int64 {
	f, _ := sigma2.Float64()
	t := int64(math.Sqrt(f)) + 1
	if t < 1 {
		t = 1
	}
	return t
}
