package samplers

import (
	"math/bits"

	"vsis-dpcore/errs"
)

// UniformUintBelow draws an unbiased sample from {0, ..., n-1} using a
// bit-extended draw with rejection, so every outcome is exactly equally
// likely regardless of whether n is a power of two.
func UniformUintBelow(src Source, n uint64) (val uint64, err error) {
	if n == 0 {
		return 0, errs.NewFailedFunction("uniform_uint_below: n must be positive")
	}
	if n == 1 {
		return 0, nil
	}
	width := bits.Len64(n - 1) // number of bits needed to cover [0,n)
	mask := uint64(1)<<uint(width) - 1
	err = withEntropyGuard(func() {
		for {
			candidate := drawBits(src, width) & mask
			if candidate < n {
				val = candidate
				return
			}
		}
	})
	return val, err
}

// drawBits returns width (<=64) uniformly random low-order bits, composing
// 64-bit draws from src as needed.
func drawBits(src Source, width int) uint64 {
	if width <= 64 {
		return src.Uint64() & (1<<uint(width) - 1)
	}
	return src.Uint64()
}
