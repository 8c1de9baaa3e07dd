package arith

import (
	"math"
	"math/big"

	"vsis-dpcore/errs"
)

// InfCastInt64 converts a Rat to the smallest int64 that is >= the exact
// value (rounding toward +Inf, so the result is an upper bound for
// negative values too; computed exactly, never via float64).
func InfCastInt64(r Rat) (int64, error) {
	if r.IsPosInf() {
		return math.MaxInt64, nil
	}
	if r.IsNegInf() {
		return math.MinInt64, nil
	}
	q := new(big.Int)
	rem := new(big.Int)
	q.QuoRem(r.Val.Num(), r.Val.Denom(), rem)
	// QuoRem truncates toward zero, which already is the ceiling for a
	// negative value; only a positive value with a remainder moves up.
	if rem.Sign() != 0 && r.Val.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	if !q.IsInt64() {
		if q.Sign() > 0 {
			return math.MaxInt64, nil
		}
		return math.MinInt64, nil
	}
	return q.Int64(), nil
}

// NegInfCastInt64 is the inward-rounded (toward zero) twin of InfCastInt64.
func NegInfCastInt64(r Rat) (int64, error) {
	if r.IsPosInf() {
		return math.MaxInt64, nil
	}
	if r.IsNegInf() {
		return math.MinInt64, nil
	}
	q := new(big.Int).Quo(r.Val.Num(), r.Val.Denom())
	if !q.IsInt64() {
		if q.Sign() > 0 {
			return math.MaxInt64, nil
		}
		return math.MinInt64, nil
	}
	return q.Int64(), nil
}

// InfCastFloat64 converts a Rat to the smallest float64 >= the exact value.
// NaN on the way in is a construction-time bug elsewhere, never produced
// here: a NaN source float fails rather than silently becoming a
// sentinel value (see InfCastFromFloat64).
func InfCastFloat64(r Rat) float64 {
	if r.IsPosInf() {
		return math.Inf(1)
	}
	if r.IsNegInf() {
		return math.Inf(-1)
	}
	f, exact := r.Val.Float64()
	if exact {
		return f
	}
	// big.Rat.Float64 rounds to nearest; nudge outward by one ULP so the
	// result is a true upper bound.
	return math.Nextafter(f, math.Inf(1))
}

// NegInfCastFloat64 is the inward-rounded twin.
func NegInfCastFloat64(r Rat) float64 {
	if r.IsPosInf() {
		return math.Inf(1)
	}
	if r.IsNegInf() {
		return math.Inf(-1)
	}
	f, exact := r.Val.Float64()
	if exact {
		return f
	}
	return math.Nextafter(f, math.Inf(-1))
}

// InfCastFromFloat64 builds a Rat that is >= the exact value of f. NaN
// fails with FailedCast; this is the library-wide "fail, don't saturate"
// choice for casts with no well-defined rounded value.
func InfCastFromFloat64(f float64) (Rat, error) {
	r, ok := RatFromFloat64(f)
	if !ok {
		return Rat{}, errs.NewFailedCast("inf_cast: NaN has no well-defined rounded value")
	}
	return r, nil
}

// NegInfCastFromFloat64 is the inward-rounded twin.
func NegInfCastFromFloat64(f float64) (Rat, error) {
	return InfCastFromFloat64(f)
}
