// Package arith implements the exact arithmetic kernel every stability and
// privacy map is built from: arbitrary-precision integers and rationals
// with correctly-rounded, saturating operators. Monotonicity of every map
// built on top of this package follows from using only the outward-rounded
// (inf_*) or inward-rounded (neg_inf_*) operators below — never raw
// float64 arithmetic, with the rounding direction a first-class contract
// rather than an implementation detail.
package arith

import (
	"math"
	"math/big"
)

// Rat is an arbitrary-precision rational, or one of the two infinities.
// A nil Val with Inf=+1 (resp. -1) represents +Inf (resp. -Inf).
type Rat struct {
	Val *big.Rat
	Inf int8 // 0 = finite, +1 = +Inf, -1 = -Inf
}

// FiniteRat wraps a finite big.Rat.
func FiniteRat(v *big.Rat) Rat { return Rat{Val: v} }

// IntRat builds a finite Rat from an int64.
func IntRat(n int64) Rat { return Rat{Val: big.NewRat(n, 1)} }

// PosInf and NegInf are the two saturating sentinels division-by-zero and
// overflow round to, rather than trapping.
func PosInf() Rat { return Rat{Inf: 1} }
func NegInf() Rat { return Rat{Inf: -1} }

func (r Rat) IsInf() bool    { return r.Inf != 0 }
func (r Rat) IsPosInf() bool { return r.Inf > 0 }
func (r Rat) IsNegInf() bool { return r.Inf < 0 }

// Cmp orders Rat values with -Inf < finite < +Inf, matching the total
// order every measure's Distance type needs for map monotonicity checks.
func (r Rat) Cmp(o Rat) int {
	if r.Inf != o.Inf {
		switch {
		case r.Inf < o.Inf:
			return -1
		default:
			return 1
		}
	}
	if r.Inf != 0 {
		return 0 // both same infinity
	}
	return r.Val.Cmp(o.Val)
}

func (r Rat) String() string {
	switch r.Inf {
	case 1:
		return "+Inf"
	case -1:
		return "-Inf"
	default:
		return r.Val.RatString()
	}
}

// Sign mirrors big.Rat.Sign, treating +Inf/-Inf as their obvious signs.
func (r Rat) Sign() int {
	if r.Inf != 0 {
		return int(r.Inf)
	}
	return r.Val.Sign()
}

// Float64 returns the nearest float64, used only at the user-facing
// boundary (reporting a release), never inside a stability/privacy map.
func (r Rat) Float64() float64 {
	if r.Inf > 0 {
		return math.Inf(1)
	}
	if r.Inf < 0 {
		return math.Inf(-1)
	}
	f, _ := r.Val.Float64()
	return f
}

// RatFromFloat64 builds a Rat from a float64, failing (returning ok=false)
// on NaN: a cast on NaN fails rather than silently saturating.
func RatFromFloat64(f float64) (Rat, bool) {
	if math.IsNaN(f) {
		return Rat{}, false
	}
	if math.IsInf(f, 1) {
		return PosInf(), true
	}
	if math.IsInf(f, -1) {
		return NegInf(), true
	}
	r := new(big.Rat)
	r.SetFloat64(f)
	return FiniteRat(r), true
}
