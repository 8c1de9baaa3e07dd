package arith

import (
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"

	"vsis-dpcore/errs"
)

// ringN is the ring degree used for the NTT round trip below. It must
// be a power of two for ring.NewRing to accept it; 16 is the smallest
// degree exercised by the constraint-helper tests this package's
// dependency on Lattigo is otherwise grounded on, so it's used here too
// rather than an arbitrary larger degree that buys nothing for a
// single-coefficient reduction.
const ringN = 16

// RingReduce reduces an arbitrary-precision integer into the
// representative range [0, q) of an NTT-friendly ring modulus q, routing
// the reduced value through a forward/inverse NTT round trip so the
// result has actually been carried through Lattigo's ring structure
// (not merely stored in and read back from one), the way a released
// integer might need clamping before being handed to a downstream
// secure-computation consumer that only speaks a fixed ring.
func RingReduce(x *big.Int, q uint64) (uint64, error) {
	if q == 0 {
		return 0, errs.NewInvalidDistance("ring_reduce: modulus must be non-zero")
	}
	r, err := ring.NewRing(ringN, []uint64{q})
	if err != nil {
		return 0, errs.WrapFailedFunction(err, "ring_reduce: ring.NewRing(q=%d)", q)
	}
	mod := new(big.Int).SetUint64(q)
	reduced := new(big.Int).Mod(x, mod)

	coeff := r.NewPoly()
	coeff.Coeffs[0][0] = reduced.Uint64()

	freq := r.NewPoly()
	r.NTT(coeff, freq)

	back := r.NewPoly()
	r.InvNTT(freq, back)

	return back.Coeffs[0][0], nil
}
