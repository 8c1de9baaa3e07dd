// Package transforms collects a handful of stock stable Transformations
// (clamp, bounded sum) built directly on core.NewTransformation, the
// chain cmd/dpdemo and the end-to-end tests drive to exercise
// make_chain_tt and the noise mechanisms against a real dataset metric.
package transforms

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/metric"
)

// NewClamp returns a 1-stable Transformation clamping every record of a
// vector<int64> dataset into [lower, upper] under symmetric distance.
func NewClamp(lower, upper int64) (*core.Transformation[[]int64, []int64], error) {
	in := domain.NewVectorDomain(domain.NewAtomDomain[int64]())
	out := domain.NewVectorDomain(domain.NewAtomDomain[int64]().WithBounds(lower, upper))
	fn := core.NewFunction(func(xs []int64) ([]int64, error) {
		clamped := make([]int64, len(xs))
		for i, x := range xs {
			switch {
			case x < lower:
				clamped[i] = lower
			case x > upper:
				clamped[i] = upper
			default:
				clamped[i] = x
			}
		}
		return clamped, nil
	})
	return core.NewTransformation[[]int64, []int64](
		in, metric.SymmetricDistance{}, out, metric.SymmetricDistance{},
		fn, core.NewFromConstant(arith.IntRat(1)),
	)
}

// NewBoundedSum returns a Transformation summing a vector<int64> dataset
// already clamped to [lower, upper], with stability constant
// max(|lower|, |upper|): adding or removing one record moves the sum by
// at most that much.
func NewBoundedSum(lower, upper int64) (*core.Transformation[[]int64, int64], error) {
	in := domain.NewVectorDomain(domain.NewAtomDomain[int64]().WithBounds(lower, upper))
	out := domain.NewAtomDomain[int64]()
	fn := core.NewFunction(func(xs []int64) (int64, error) {
		var s int64
		for _, x := range xs {
			s += x
		}
		return s, nil
	})
	bound := upper
	if lower < 0 && -lower > bound {
		bound = -lower
	}
	if bound < 0 {
		bound = -bound
	}
	return core.NewTransformation[[]int64, int64](
		in, metric.SymmetricDistance{}, out, metric.AbsoluteDistance[int64]{},
		fn, core.NewFromConstant(arith.IntRat(bound)),
	)
}
