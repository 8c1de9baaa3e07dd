package measurements

import (
	"math"
	"sort"

	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
	"vsis-dpcore/samplers"
)

// Optimize selects whether report_noisy_top_k favours the largest or
// smallest scores.
type Optimize int

const (
	Max Optimize = iota
	Min
)

// TopKVariant selects which noise-addition/selection scheme backs
// report_noisy_top_k.
type TopKVariant int

const (
	GumbelVariant TopKVariant = iota
	ExponentialVariant
	PermuteAndFlipVariant
)

// ReportNoisyTopK returns the top-k indices of a noised score vector
// under the requested variant. The input domain bans NaN by using a
// non-nullable atom element domain; if the vector domain declares a
// fixed size n, k <= n is enforced at invoke time.
func ReportNoisyTopK(
	src samplers.Source, k int, scale arith.Rat, optimize Optimize, variant TopKVariant, withReplacement bool,
) (*core.Measurement[[]float64, []int], error) {
	if k <= 0 {
		return nil, errs.NewMakeMeasurement("report_noisy_top_k: k must be positive")
	}
	if scale.Sign() < 0 {
		return nil, errs.NewMakeMeasurement("report_noisy_top_k: scale must be non-negative")
	}
	in := domain.NewVectorDomain(domain.NewAtomDomain[float64]())
	maximize := optimize == Max

	var outputMeasure measure.Measure = measure.RangeDivergence{}
	if variant != GumbelVariant {
		outputMeasure = measure.MaxDivergence{}
	}

	fn := core.NewFunction(func(xs []float64) ([]int, error) {
		if k > len(xs) {
			return nil, errs.NewMakeMeasurement("report_noisy_top_k: k=%d exceeds input size %d", k, len(xs))
		}
		for _, x := range xs {
			if math.IsNaN(x) {
				return nil, errs.NewMakeMeasurement("report_noisy_top_k: input contains NaN")
			}
		}
		scores := orientedScores(xs, maximize)
		if scale.Sign() == 0 {
			return exactTopK(src, scores, k)
		}
		switch variant {
		case GumbelVariant:
			return gumbelTopK(src, scores, k, scale)
		case ExponentialVariant:
			return peelAndFlipTopK(src, scores, k, scale, withReplacement)
		case PermuteAndFlipVariant:
			return permuteAndFlipTopK(src, scores, k, scale)
		default:
			return nil, errs.NewMakeMeasurement("report_noisy_top_k: unrecognized variant")
		}
	})

	privacy := core.PrivacyMap(func(dIn arith.Rat) (arith.Rat, error) {
		if scale.Sign() == 0 {
			if dIn.Sign() == 0 {
				return arith.IntRat(0), nil
			}
			return arith.PosInf(), nil
		}
		num := arith.InfMul(dIn, arith.IntRat(int64(k)))
		return arith.InfDiv(num, scale), nil
	})

	return core.NewMeasurement[[]float64, []int](in, metric.LInfDistance[float64]{}, outputMeasure, fn, privacy)
}

// orientedScores flips sign when minimizing so every selection routine
// below can always select for "largest first".
func orientedScores(xs []float64, maximize bool) []float64 {
	if maximize {
		return xs
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = -x
	}
	return out
}

func exactTopK(src samplers.Source, scores []float64, k int) ([]int, error) {
	n := len(scores)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if err := samplers.Shuffle(src, order); err != nil {
		return nil, err
	}
	rank := make([]int, n)
	for pos, idx := range order {
		rank[idx] = pos
	}
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	sort.Slice(idxs, func(a, b int) bool {
		sa, sb := scores[idxs[a]], scores[idxs[b]]
		if sa != sb {
			return sa > sb
		}
		return rank[idxs[a]] < rank[idxs[b]]
	})
	return append([]int(nil), idxs[:k]...), nil
}

func gumbelTopK(src samplers.Source, scores []float64, k int, scale arith.Rat) ([]int, error) {
	n := len(scores)
	grvs := make([]*samplers.GumbelRV, n)
	for i, s := range scores {
		shift, ok := arith.RatFromFloat64(s)
		if !ok {
			return nil, errs.NewMakeMeasurement("report_noisy_top_k: score %d is not representable", i)
		}
		g, err := samplers.NewGumbelRV(src, shift, scale)
		if err != nil {
			return nil, err
		}
		grvs[i] = g
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	selected := make([]int, 0, k)
	for len(selected) < k {
		best := 0
		for j := 1; j < len(remaining); j++ {
			gt, err := grvs[remaining[j]].GreaterThan(grvs[remaining[best]])
			if err != nil {
				return nil, err
			}
			if gt {
				best = j
			}
		}
		selected = append(selected, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return selected, nil
}

// peelAndFlipTopK draws k indices via the peel-and-flip
// exponential-mechanism selection, independently over all indices when
// withReplacement is true and otherwise excluding the indices already
// selected. Each draw sorts descending,
// then flip bernoulli_exp on the score gap to the running maximum until
// one accepts.
func peelAndFlipTopK(src samplers.Source, scores []float64, k int, scale arith.Rat, withReplacement bool) ([]int, error) {
	if withReplacement {
		out := make([]int, k)
		for i := 0; i < k; i++ {
			idx, err := peelAndFlipOnce(src, scores, scale, nil)
			if err != nil {
				return nil, err
			}
			out[i] = idx
		}
		return out, nil
	}
	excluded := map[int]bool{}
	out := make([]int, 0, k)
	for len(out) < k {
		idx, err := peelAndFlipOnce(src, scores, scale, excluded)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
		excluded[idx] = true
	}
	return out, nil
}

func peelAndFlipOnce(src samplers.Source, scores []float64, scale arith.Rat, excluded map[int]bool) (int, error) {
	n := len(scores)
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if excluded == nil || !excluded[i] {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
	top := scores[order[0]]
	for _, idx := range order {
		gap := top - scores[idx]
		if gap < 0 {
			gap = 0
		}
		gapRat, ok := arith.RatFromFloat64(gap)
		if !ok {
			return 0, errs.NewMakeMeasurement("report_noisy_top_k: score gap is not representable")
		}
		x := arith.InfDiv(gapRat, scale)
		accept, err := samplers.BernoulliExp(src, x.Val)
		if err != nil {
			return 0, err
		}
		if accept {
			return idx, nil
		}
	}
	return order[len(order)-1], nil
}

// permuteAndFlipTopK selects k distinct indices by repeatedly shuffling
// the remaining candidates and flipping bernoulli_exp against the global
// maximum, accepting on the first success per pass (Fisher-Yates with
// early-accept).
func permuteAndFlipTopK(src samplers.Source, scores []float64, k int, scale arith.Rat) ([]int, error) {
	n := len(scores)
	maxScore := scores[0]
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	selected := make([]int, 0, k)
	for len(selected) < k && len(remaining) > 0 {
		if err := samplers.Shuffle(src, remaining); err != nil {
			return nil, err
		}
		next := remaining[:0]
		for _, idx := range remaining {
			if len(selected) >= k {
				next = append(next, idx)
				continue
			}
			gap := maxScore - scores[idx]
			gapRat, ok := arith.RatFromFloat64(gap)
			if !ok {
				return nil, errs.NewMakeMeasurement("report_noisy_top_k: score gap is not representable")
			}
			x := arith.InfDiv(gapRat, scale)
			accept, err := samplers.BernoulliExp(src, x.Val)
			if err != nil {
				return nil, err
			}
			if accept {
				selected = append(selected, idx)
			} else {
				next = append(next, idx)
			}
		}
		remaining = next
	}
	return selected, nil
}
