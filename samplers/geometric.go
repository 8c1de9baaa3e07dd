package samplers

import (
	"math/big"

	"vsis-dpcore/errs"
)

// Geometric draws an exact sample from the geometric distribution on
// {0,1,2,...} with success probability p in (0,1]: the count of
// Bernoulli(1-p) failures before the first success. When censor is
// non-nil, the draw stops (returning *censor) once that many failures
// have accumulated without a success, bounding the worst-case number of
// entropy draws.
func Geometric(src Source, p *big.Rat, censor *int64) (int64, error) {
	if p.Sign() <= 0 || p.Cmp(big.NewRat(1, 1)) > 0 {
		return 0, errs.NewInvalidDistance("geometric: p must lie in (0,1]")
	}
	var k int64
	for {
		ok, err := BernoulliP(src, p)
		if err != nil {
			return 0, err
		}
		if ok {
			return k, nil
		}
		k++
		if censor != nil && k >= *censor {
			return *censor, nil
		}
	}
}

// geometricViaBernoulliExp draws the number of consecutive True outcomes
// of BernoulliExp(1/t) before the first False. Its pmf is exactly
// P(K=k) = exp(-k/t)*(1-exp(-1/t)), i.e. Geometric(1-exp(-1/t)) - without
// ever computing exp(-1/t) as a value, only as a sequence of exact
// Bernoulli_exp draws. This is the building block discrete_laplace uses.
func geometricViaBernoulliExp(src Source, t *big.Rat) (*big.Int, error) {
	inv := new(big.Rat).Inv(t)
	k := big.NewInt(0)
	for {
		ok, err := BernoulliExp(src, inv)
		if err != nil {
			return nil, err
		}
		if !ok {
			return k, nil
		}
		k.Add(k, big.NewInt(1))
	}
}
