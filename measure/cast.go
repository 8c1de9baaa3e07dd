package measure

import (
	"math/big"

	"vsis-dpcore/arith"
	"vsis-dpcore/errs"
)

// PureToZCDP casts a pure-epsilon distance to its zCDP equivalent via the
// standard rho = eps^2 / 2 bound, a lossless measure cast.
func PureToZCDP(eps arith.Rat) (arith.Rat, error) {
	if eps.Sign() < 0 {
		return arith.Rat{}, errs.NewFailedMap("PureToZCDP: epsilon must be non-negative")
	}
	sq := arith.InfMul(eps, eps)
	return arith.InfDiv(sq, arith.IntRat(2)), nil
}

// ZCDPToRenyi casts a zCDP distance rho to the Renyi-DP distance at a
// chosen order alpha via the standard rho-zCDP bound: D_alpha <= rho *
// alpha.
func ZCDPToRenyi(rho arith.Rat, alpha arith.Rat) (arith.Rat, error) {
	if alpha.Val == nil || alpha.Val.Cmp(big.NewRat(1, 1)) <= 0 {
		return arith.Rat{}, errs.NewFailedMap("ZCDPToRenyi: alpha must be > 1")
	}
	return arith.InfMul(rho, alpha), nil
}

// ToApproximate lifts any bare distance into an Approximate curve with a
// zero delta component - the trivial lossless cast every measure
// supports so odometers can uniformly track curves.
func ToApproximate(eps arith.Rat) ApproximateDistance {
	return ApproximateDistance{Eps: eps, Delta: arith.IntRat(0)}
}
