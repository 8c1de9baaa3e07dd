// Package core implements the Function/StabilityMap/PrivacyMap closure
// shapes and the Transformation/Measurement immutable
// records built from them.
package core

import "vsis-dpcore/arith"

// Function is the pure-or-fallible closure every Transformation and
// Measurement carries: DI.Carrier -> Fallible<DO.Carrier>. DI and DO are
// the carrier Go types (e.g. []int64, int64), not the Domain values
// themselves.
type Function[DI, DO any] struct {
	Eval func(DI) (DO, error)
}

// NewFunction wraps a plain fallible closure.
func NewFunction[DI, DO any](f func(DI) (DO, error)) Function[DI, DO] {
	return Function[DI, DO]{Eval: f}
}

// Invoke runs the function.
func (f Function[DI, DO]) Invoke(arg DI) (DO, error) {
	return f.Eval(arg)
}

// StabilityMap and PrivacyMap both propagate a metric distance forward:
// MI.Distance -> Fallible<MO.Distance> (or mu.Distance for a privacy
// map). Every distance in this library is carried as an arith.Rat so
// that monotonicity follows from C1's outward-rounded arithmetic alone;
// see DESIGN.md for why this is a deliberate simplification of a
// fully-generic MI/MO distance axis.
type StabilityMap func(dIn arith.Rat) (arith.Rat, error)

// PrivacyMap is the same closure shape, landing in a measure's distance
// currency rather than a metric's.
type PrivacyMap func(dIn arith.Rat) (arith.Rat, error)

// NewFromConstant returns the stability/privacy map lambda d. inf_cast(d)
// (x) c using the outward-rounded multiplication from C1.
func NewFromConstant(c arith.Rat) StabilityMap {
	return func(dIn arith.Rat) (arith.Rat, error) {
		return arith.InfMul(dIn, c), nil
	}
}

// Chain composes two maps left-to-right: Chain(sigma1, sigma0)(d) =
// sigma1(sigma0(d)), the pi1 . sigma0 / sigma1 . sigma0 shape
// chain_mt/chain_tt compose their stability and privacy maps with.
func Chain(outer, inner StabilityMap) StabilityMap {
	return func(dIn arith.Rat) (arith.Rat, error) {
		mid, err := inner(dIn)
		if err != nil {
			return arith.Rat{}, err
		}
		return outer(mid)
	}
}
