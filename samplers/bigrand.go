package samplers

import "math/big"

// uniformBigIntBelow draws an unbiased sample from {0, ..., n-1} for
// arbitrary-precision n, by rejection over a bit-extended draw the same
// way UniformUintBelow does for uint64 bounds - generalized because
// rational denominators accumulated across a Bernoulli_exp cascade
// outgrow uint64 quickly (see BernoulliExp1's K-scaled denominators).
func uniformBigIntBelow(src Source, n *big.Int) (*big.Int, error) {
	width := n.BitLen()
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	var result *big.Int
	err := withEntropyGuard(func() {
		buf := make([]byte, (width+7)/8)
		for {
			for i := range buf {
				buf[i] = 0
			}
			needed := width
			off := 0
			for needed > 0 {
				word := src.Uint64()
				take := needed
				if take > 64 {
					take = 64
				}
				for b := 0; b < take; b += 8 {
					if off < len(buf) {
						buf[off] = byte(word >> uint(b))
						off++
					}
				}
				needed -= take
			}
			cand := new(big.Int).SetBytes(reverseBytes(buf))
			cand.And(cand, mask)
			if cand.Cmp(n) < 0 {
				result = cand
				return
			}
		}
	})
	return result, err
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
