package samplers

import (
	"math/big"

	"vsis-dpcore/errs"
)

// BernoulliP draws an exact Bernoulli(p) sample for rational p in [0,1]
// by comparing a uniform draw below p's denominator against its
// numerator - no floating point enters the comparison.
func BernoulliP(src Source, p *big.Rat) (bool, error) {
	if p.Sign() < 0 {
		return false, errs.NewInvalidDistance("bernoulli: probability must be non-negative")
	}
	if p.Cmp(big.NewRat(1, 1)) >= 0 {
		return true, nil
	}
	if p.Sign() == 0 {
		return false, nil
	}
	den := p.Denom()
	num := p.Num()
	u, err := uniformBigIntBelow(src, den)
	if err != nil {
		return false, err
	}
	return u.Cmp(num) < 0, nil
}

var half = big.NewRat(1, 2)

// BernoulliExp1 samples Bernoulli(exp(-gamma)) for gamma in [0,1] via the
// von Neumann cascade: draw Bernoulli(gamma/K) for K=1,2,... until the
// first failure, and accept iff the stopping K was odd. This is exact -
// every probability compared is a rational, never a float approximation
// of exp(-gamma).
func BernoulliExp1(src Source, gamma *big.Rat) (bool, error) {
	if gamma.Sign() < 0 || gamma.Cmp(big.NewRat(1, 1)) > 0 {
		return false, errs.NewInvalidDistance("bernoulli_exp1: gamma must lie in [0,1]")
	}
	k := big.NewInt(1)
	for {
		p := new(big.Rat).Quo(gamma, new(big.Rat).SetInt(k))
		a, err := BernoulliP(src, p)
		if err != nil {
			return false, err
		}
		if !a {
			break
		}
		k.Add(k, big.NewInt(1))
	}
	return k.Bit(0) == 1, nil
}

// BernoulliExp samples Bernoulli(exp(-x)) for any non-negative rational x.
// For x<=1 it runs the cascade directly; otherwise it factors x = k + r
// with integer k and remainder r in [0,1), chaining k independent
// Bernoulli(exp(-1)) draws with one Bernoulli(exp(-r)).
func BernoulliExp(src Source, x *big.Rat) (bool, error) {
	if x.Sign() < 0 {
		return false, errs.NewInvalidDistance("bernoulli_exp: x must be non-negative")
	}
	one := big.NewRat(1, 1)
	if x.Cmp(one) <= 0 {
		return BernoulliExp1(src, x)
	}
	k := new(big.Int).Quo(x.Num(), x.Denom())
	r := new(big.Rat).Sub(x, new(big.Rat).SetInt(k))
	for i := new(big.Int); i.Cmp(k) < 0; i.Add(i, big.NewInt(1)) {
		ok, err := BernoulliExp1(src, one)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return BernoulliExp1(src, r)
}
