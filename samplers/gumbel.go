package samplers

import (
	"math/big"

	"vsis-dpcore/arith"
	"vsis-dpcore/errs"
)

// GumbelRV is a lazily-refined partial sample from Gumbel(shift, scale).
// It never collapses to a float64: instead it tracks a shrinking rational
// interval [Lo, Hi] known to contain the exact value, refining on demand
// by drawing one more random bit of the underlying uniform variate and
// tightening the interval through the (monotone) inverse-CDF
// shift - scale*ln(-ln(U)), applied with outward rounding to each
// endpoint via the arith package. Two GumbelRVs can be compared with
// GreaterThan by refining both until their intervals stop overlapping -
// the report-noisy-top-k Gumbel mechanism uses exactly this to rank
// candidates without ever materialising a fixed-precision float that
// could silently tip a close comparison: precision is only refined as
// far as a comparison actually needs, never committed to up front.
type GumbelRV struct {
	src   Source
	shift arith.Rat
	scale arith.Rat

	uLo, uHi *big.Rat // shrinking enclosure of the underlying Uniform(0,1)
}

// NewGumbelRV starts a new lazy Gumbel(shift,scale) sample; scale must be
// positive.
func NewGumbelRV(src Source, shift, scale arith.Rat) (*GumbelRV, error) {
	if scale.Sign() <= 0 {
		return nil, errs.NewInvalidDistance("gumbel_rv: scale must be positive")
	}
	return &GumbelRV{
		src:   src,
		shift: shift,
		scale: scale,
		uLo:   big.NewRat(0, 1),
		uHi:   big.NewRat(1, 1),
	}, nil
}

// Refine draws one more bit of precision, halving the uniform enclosure.
func (g *GumbelRV) Refine() error {
	var bit uint64
	err := withEntropyGuard(func() { bit = g.src.Uint64() & 1 })
	if err != nil {
		return err
	}
	mid := new(big.Rat).Add(g.uLo, g.uHi)
	mid.Quo(mid, big.NewRat(2, 1))
	if bit == 1 {
		g.uLo = mid
	} else {
		g.uHi = mid
	}
	return nil
}

// Bounds returns a sound enclosure [lo,hi] of the exact Gumbel value
// given the current refinement of U. The inverse-CDF
// v(u) = shift - scale*ln(-ln(u)) is strictly increasing in u on (0,1)
// (v -> -Inf as u -> 0+, v -> +Inf as u -> 1-), so lo is derived from the
// lower edge uLo and hi from the upper edge uHi, each log evaluated with
// the rounding direction that can only ever widen, never shrink, the
// true enclosure.
func (g *GumbelRV) Bounds() (lo, hi arith.Rat, err error) {
	if g.uLo.Sign() <= 0 {
		lo = arith.NegInf()
	} else {
		a := arith.FiniteRat(g.uLo)
		negLnA, e := arith.NegInfLog(a) // lower bound of ln(a) (a<1 so ln(a)<0)
		if e != nil {
			return arith.Rat{}, arith.Rat{}, e
		}
		negLnAUpper := arith.InfSub(arith.IntRat(0), negLnA) // upper bound of -ln(a)
		innerUpper, e := arith.InfLog(negLnAUpper)           // upper bound of ln(-ln(a))
		if e != nil {
			return arith.Rat{}, arith.Rat{}, e
		}
		scaledUpper := arith.InfMul(g.scale, innerUpper)
		lo = arith.InfSub(g.shift, scaledUpper)
	}
	if g.uHi.Cmp(big.NewRat(1, 1)) >= 0 {
		hi = arith.PosInf()
	} else {
		b := arith.FiniteRat(g.uHi)
		lnBUpper, e := arith.InfLog(b) // upper bound of ln(b)
		if e != nil {
			return arith.Rat{}, arith.Rat{}, e
		}
		negLnBLower := arith.InfSub(arith.IntRat(0), lnBUpper) // lower bound of -ln(b)
		innerLower, e := arith.NegInfLog(negLnBLower)          // lower bound of ln(-ln(b))
		if e != nil {
			return arith.Rat{}, arith.Rat{}, e
		}
		scaledLower := arith.InfMul(g.scale, innerLower)
		hi = arith.InfSub(g.shift, scaledLower)
	}
	return lo, hi, nil
}

// maxGumbelRefinements bounds the number of bisections GreaterThan will
// perform before giving up - ties have probability zero over the
// continuous uniform variate, so in practice this never triggers; it
// exists only to keep a literal tie (e.g. two identical deterministic
// test sources) from looping forever.
const maxGumbelRefinements = 4096

// GreaterThan refines both receivers until their value enclosures no
// longer overlap, then reports whether g > other.
func (g *GumbelRV) GreaterThan(other *GumbelRV) (bool, error) {
	for i := 0; i < maxGumbelRefinements; i++ {
		gLo, gHi, err := g.Bounds()
		if err != nil {
			return false, err
		}
		oLo, oHi, err := other.Bounds()
		if err != nil {
			return false, err
		}
		if gLo.Cmp(oHi) > 0 {
			return true, nil
		}
		if oLo.Cmp(gHi) > 0 {
			return false, nil
		}
		if err := g.Refine(); err != nil {
			return false, err
		}
		if err := other.Refine(); err != nil {
			return false, err
		}
	}
	return false, errs.NewFailedFunction("gumbel_rv: comparison did not resolve within refinement budget")
}
