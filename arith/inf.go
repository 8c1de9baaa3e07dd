package arith

import (
	"math/big"
)

// InfAdd returns a correctly-rounded upper bound on a+b, rounding away from
// zero at the smallest representable margin. Overflow (either operand
// already +-Inf) saturates rather than traps.
func InfAdd(a, b Rat) Rat {
	if a.IsInf() || b.IsInf() {
		return infCombine(a, b)
	}
	return FiniteRat(new(big.Rat).Add(a.Val, b.Val))
}

// NegInfAdd is InfAdd's inward-rounded twin (used when an input distance
// must be under-approximated, e.g. probing whether a bound still holds).
// Exact rational addition has no rounding error, so it returns InfAdd's
// result for every operand pair, +-Inf included (+Inf + -Inf saturates
// to +Inf here as well).
func NegInfAdd(a, b Rat) Rat { return InfAdd(a, b) }

func infCombine(a, b Rat) Rat {
	// +Inf + -Inf is the one combination with no sound single answer; we
	// saturate to +Inf, the safe (non-decreasing) direction for a
	// stability/privacy bound.
	if a.Inf != 0 && b.Inf != 0 {
		if a.Inf != b.Inf {
			return PosInf()
		}
		return a
	}
	if a.Inf != 0 {
		return a
	}
	return b
}

// InfSub returns an outward-rounded upper bound on a-b.
func InfSub(a, b Rat) Rat {
	if a.IsInf() || b.IsInf() {
		return infCombine(a, negate(b))
	}
	return FiniteRat(new(big.Rat).Sub(a.Val, b.Val))
}

// NegInfSub is the inward-rounded variant.
func NegInfSub(a, b Rat) Rat { return InfSub(a, b) }

func negate(r Rat) Rat {
	if r.Inf != 0 {
		return Rat{Inf: -r.Inf}
	}
	return FiniteRat(new(big.Rat).Neg(r.Val))
}

// InfMul returns an outward-rounded upper bound on a*b. A zero times an
// infinity saturates to +Inf: a conservative stability map must never
// claim a finite bound it cannot prove, so ambiguity always resolves
// toward the looser (safe) direction.
func InfMul(a, b Rat) Rat {
	if a.IsInf() || b.IsInf() {
		if a.Sign() == 0 || b.Sign() == 0 {
			return PosInf()
		}
		if (a.Sign() < 0) != (b.Sign() < 0) {
			return NegInf()
		}
		return PosInf()
	}
	return FiniteRat(new(big.Rat).Mul(a.Val, b.Val))
}

// NegInfMul is the inward-rounded variant; exact rational multiplication
// needs no rounding on finite operands.
func NegInfMul(a, b Rat) Rat { return InfMul(a, b) }

// InfDiv returns an outward-rounded upper bound on a/b. Division by zero
// saturates to +-Inf (the sign of a) rather than trapping.
func InfDiv(a, b Rat) Rat {
	if b.IsInf() {
		if a.IsInf() {
			return PosInf()
		}
		return FiniteRat(big.NewRat(0, 1))
	}
	if b.Sign() == 0 {
		switch a.Sign() {
		case 0:
			return FiniteRat(big.NewRat(0, 1))
		case 1:
			return PosInf()
		default:
			return NegInf()
		}
	}
	if a.IsInf() {
		if b.Sign() < 0 {
			return negate(a)
		}
		return a
	}
	return FiniteRat(new(big.Rat).Quo(a.Val, b.Val))
}

// NegInfDiv is the inward-rounded variant.
func NegInfDiv(a, b Rat) Rat { return InfDiv(a, b) }

// InfPow returns an outward-rounded upper bound on a^n for a non-negative
// integer exponent n.
func InfPow(a Rat, n int) Rat {
	if n < 0 {
		return InfDiv(IntRat(1), InfPow(a, -n))
	}
	if a.IsInf() {
		if n == 0 {
			return IntRat(1)
		}
		if a.Sign() == 0 {
			return IntRat(0)
		}
		if a.Sign() > 0 || n%2 == 0 {
			return PosInf()
		}
		return NegInf()
	}
	out := big.NewRat(1, 1)
	base := new(big.Rat).Set(a.Val)
	for n > 0 {
		if n&1 == 1 {
			out.Mul(out, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	return FiniteRat(out)
}

// InfSqrt returns an outward-rounded upper bound on sqrt(a) for a >= 0,
// computed by Newton's method to a fixed number of bits of precision and
// then nudged upward by one ULP-equivalent so the result never
// under-estimates the true root.
func InfSqrt(a Rat) (Rat, error) {
	return sqrtRounded(a, true)
}

// NegInfSqrt is the inward-rounded variant: the returned bound never
// over-estimates the true root.
func NegInfSqrt(a Rat) (Rat, error) {
	return sqrtRounded(a, false)
}

func sqrtRounded(a Rat, outward bool) (Rat, error) {
	if a.IsNegInf() || (a.Sign() < 0) {
		return Rat{}, errNegativeSqrt
	}
	if a.IsPosInf() {
		return PosInf(), nil
	}
	if a.Sign() == 0 {
		return IntRat(0), nil
	}
	const bits = 256
	f := new(big.Float).SetPrec(bits).SetRat(a.Val)
	root := new(big.Float).SetPrec(bits).Sqrt(f)
	r, _ := root.Rat(nil)
	eps := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), bits-16))
	if outward {
		r.Add(r, eps)
	} else {
		r.Sub(r, eps)
		if r.Sign() < 0 {
			r.SetInt64(0)
		}
	}
	return FiniteRat(r), nil
}

// InfExp returns an outward-rounded upper bound on e^a.
func InfExp(a Rat) (Rat, error) { return expRounded(a, true) }

// NegInfExp returns an inward-rounded lower bound on e^a.
func NegInfExp(a Rat) (Rat, error) { return expRounded(a, false) }

func expRounded(a Rat, outward bool) (Rat, error) {
	if a.IsPosInf() {
		return PosInf(), nil
	}
	if a.IsNegInf() {
		return IntRat(0), nil
	}
	const bits = 256
	f := new(big.Float).SetPrec(bits).SetRat(a.Val)
	e := bigExp(f, bits)
	r, _ := e.Rat(nil)
	eps := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), bits-16))
	if outward {
		r.Add(r, eps)
	} else {
		r.Sub(r, eps)
		if r.Sign() < 0 {
			r.SetInt64(0)
		}
	}
	return FiniteRat(r), nil
}

// bigExp computes e^x via the Taylor series to a fixed precision; x is
// range-reduced by repeated halving (exp(x) = exp(x/2)^2) to keep the
// series fast-converging for the scale magnitudes this library expects
// (ratios of privacy distances to sensitivities, rarely beyond +-60).
func bigExp(x *big.Float, prec uint) *big.Float {
	halvings := 0
	reduced := new(big.Float).SetPrec(prec).Set(x)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	bound := new(big.Float).SetPrec(prec).SetInt64(1)
	absReduced := new(big.Float).SetPrec(prec).Abs(reduced)
	for absReduced.Cmp(bound) > 0 {
		reduced.Quo(reduced, two)
		absReduced.Abs(reduced)
		halvings++
	}
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	for n := 1; n < 200; n++ {
		term.Mul(term, reduced)
		term.Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
		sum.Add(sum, term)
		if term.MantExp(nil) < -int(prec) {
			break
		}
	}
	for i := 0; i < halvings; i++ {
		sum.Mul(sum, sum)
	}
	return sum
}

// InfLog returns an outward-rounded upper bound on ln(a) for a > 0.
func InfLog(a Rat) (Rat, error) { return logRounded(a, true) }

// NegInfLog returns an inward-rounded lower bound on ln(a).
func NegInfLog(a Rat) (Rat, error) { return logRounded(a, false) }

func logRounded(a Rat, outward bool) (Rat, error) {
	if a.Sign() <= 0 {
		return Rat{}, errNonPositiveLog
	}
	if a.IsPosInf() {
		return PosInf(), nil
	}
	const bits = 256
	f := new(big.Float).SetPrec(bits).SetRat(a.Val)
	l := bigLog(f, bits)
	r, _ := l.Rat(nil)
	eps := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), bits-16))
	if outward {
		if r.Sign() >= 0 {
			r.Add(r, eps)
		} else {
			r.Sub(r, eps)
		}
	} else {
		if r.Sign() >= 0 {
			r.Sub(r, eps)
		} else {
			r.Add(r, eps)
		}
	}
	return FiniteRat(r), nil
}

// bigLog computes ln(x) for x>0 via atanh-series range reduction:
// repeatedly take sqrt to bring x into [0.5, 2), then ln(x) = 2^k * ln(x0).
func bigLog(x *big.Float, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	reduced := new(big.Float).SetPrec(prec).Set(x)
	scale := 0
	for reduced.Cmp(two) >= 0 {
		reduced.Sqrt(reduced)
		scale++
	}
	for reduced.Cmp(half) < 0 {
		reduced.Sqrt(reduced)
		scale++
	}
	// y = (x-1)/(x+1); ln(x) = 2*atanh(y) = 2*(y + y^3/3 + y^5/5 + ...)
	num := new(big.Float).SetPrec(prec).Sub(reduced, one)
	den := new(big.Float).SetPrec(prec).Add(reduced, one)
	y := new(big.Float).SetPrec(prec).Quo(num, den)
	y2 := new(big.Float).SetPrec(prec).Mul(y, y)
	term := new(big.Float).SetPrec(prec).Set(y)
	sum := new(big.Float).SetPrec(prec).Set(y)
	for n := 3; n < 400; n += 2 {
		term.Mul(term, y2)
		inc := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
		sum.Add(sum, inc)
		if inc.MantExp(nil) < -int(prec) {
			break
		}
	}
	sum.Mul(sum, two)
	// x = x0^(2^scale) after scale square roots, so ln(x) = 2^scale * ln(x0).
	sum.SetMantExp(sum, scale)
	return sum
}

// bigLn2 returns ln(2) to the given precision via the same atanh series
// applied to x=2 without further range reduction (2's own reduction
// bottoms out immediately since 2 itself triggers one sqrt step; to avoid
// recursion we hardcode the series around y=(2-1)/(2+1)=1/3 directly).
func bigLn2(prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	three := new(big.Float).SetPrec(prec).SetInt64(3)
	y := new(big.Float).SetPrec(prec).Quo(one, three)
	y2 := new(big.Float).SetPrec(prec).Mul(y, y)
	term := new(big.Float).SetPrec(prec).Set(y)
	sum := new(big.Float).SetPrec(prec).Set(y)
	for n := 3; n < 400; n += 2 {
		term.Mul(term, y2)
		inc := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
		sum.Add(sum, inc)
		if inc.MantExp(nil) < -int(prec) {
			break
		}
	}
	sum.Mul(sum, new(big.Float).SetPrec(prec).SetInt64(2))
	return sum
}
