package samplers

import (
	"math/big"

	"vsis-dpcore/arith"
)

// ReduceToRing projects a raw exact sample (as returned by
// DiscreteLaplace/DiscreteGaussian) into the representative range of an
// NTT-friendly ring modulus q, via arith.RingReduce. Use this when a
// downstream consumer of a noised release only speaks a fixed ring
// (e.g. an SMPC share), never inside a privacy map: the reduction
// itself carries no sensitivity bound and must stay outside the
// accounted chain.
func ReduceToRing(x *big.Int, q uint64) (uint64, error) {
	return arith.RingReduce(x, q)
}
