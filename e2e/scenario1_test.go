// Package e2e runs the library's full public chain end to end, from a
// package outside the code under test rather than via internal
// whitebox tests.
package e2e

import (
	"math"
	"math/big"
	"testing"

	"vsis-dpcore/arith"
	"vsis-dpcore/combinators"
	"vsis-dpcore/measurements"
	"vsis-dpcore/samplers"
	"vsis-dpcore/transforms"
)

// TestBoundedSumChain_PureDP exercises clamp -> sum -> discrete_laplace
// on data = [1,2,3,4,5], bounds = (0,10), scale = 10. The chain's
// privacy map at d_in=1 must equal 1.0 exactly,
// and the noised release must fall within the standard discrete-Laplace
// tail bound with probability >= 1-delta.
func TestBoundedSumChain_PureDP(t *testing.T) {
	clamp, err := transforms.NewClamp(0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum, err := transforms.NewBoundedSum(0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clampThenSum, err := combinators.ChainTT(sum, clamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scale := arith.FiniteRat(big.NewRat(10, 1))
	data := []int64{1, 2, 3, 4, 5}
	const trueSum = 15
	const delta = 1e-3
	const trials = 10000

	var outOfBounds int
	for seed := int64(0); seed < trials; seed++ {
		noise, err := measurements.DiscreteLaplaceMechanism(samplers.NewRNG(seed), scale)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		chain, err := combinators.ChainMT(noise, clampThenSum)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seed == 0 {
			d, err := chain.Map(arith.IntRat(1))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Cmp(arith.IntRat(1)) != 0 {
				t.Fatalf("map(1) = %s, want 1.0 exactly", d.String())
			}
		}
		release, err := chain.Invoke(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		radius := 10.0 * math.Log(1/delta)
		if float64(release) < trueSum-radius || float64(release) > trueSum+radius {
			outOfBounds++
		}
	}
	if failRate := float64(outOfBounds) / trials; failRate > delta {
		t.Fatalf("observed tail failure rate %f exceeds delta %f over %d trials", failRate, delta, trials)
	}
}
