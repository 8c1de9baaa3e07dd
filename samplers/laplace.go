package samplers

import (
	"math/big"

	"vsis-dpcore/errs"
	"vsis-dpcore/internal/telemetry"
)

// DiscreteLaplace draws an exact integer sample from the discrete Laplace
// distribution with the given rational scale t>0: P(Y=y) proportional to
// exp(-|y|/t). Built entirely from geometricViaBernoulliExp and a sign
// bit, rejecting the one double-counted outcome (negative zero) the way
// the CKS'20 construction requires - no floating point intermediate ever
// appears.
func DiscreteLaplace(src Source, t *big.Rat) (*big.Int, error) {
	telemetry.Count("sampler.discrete_laplace")
	if t.Sign() <= 0 {
		return nil, errs.NewInvalidDistance("discrete_laplace: scale must be positive")
	}
	for {
		d, err := geometricViaBernoulliExp(src, t)
		if err != nil {
			return nil, err
		}
		sign, err := BernoulliP(src, half)
		if err != nil {
			return nil, err
		}
		if sign && d.Sign() == 0 {
			continue // avoid double-counting y=0 under both signs
		}
		if sign {
			return new(big.Int).Neg(d), nil
		}
		return d, nil
	}
}
