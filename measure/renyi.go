package measure

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/errs"
)

// RenyiDivergence is parametric Renyi-DP at order Alpha. Composition sums
// at a fixed order; mixing orders across a composition is a
// MeasureMismatch the caller must resolve by casting first.
type RenyiDivergence struct {
	Alpha arith.Rat
}

func (RenyiDivergence) Name() string { return "RenyiDivergence" }

func (r RenyiDivergence) Equal(o Measure) bool {
	other, ok := o.(RenyiDivergence)
	return ok && other.Alpha.Cmp(r.Alpha) == 0
}

func (r RenyiDivergence) Compose(ds []arith.Rat) (arith.Rat, error) {
	return sum(ds), nil
}

// SmoothedMaxDivergence names the (epsilon, delta)-curve measure. Its
// distances are carried as bare arith.Rat scalars and Compose sums them;
// it does not implement ApproximateComposer, so MakeOdometer and
// BasicComposition compose it like any other scalar measure, and no
// curve is composed pointwise.
type SmoothedMaxDivergence struct{}

func (SmoothedMaxDivergence) Name() string         { return "SmoothedMaxDivergence" }
func (SmoothedMaxDivergence) Equal(o Measure) bool { _, ok := o.(SmoothedMaxDivergence); return ok }

func (SmoothedMaxDivergence) Compose(ds []arith.Rat) (arith.Rat, error) {
	return sum(ds), nil
}

// Approximate wraps an inner measure M with an additive delta budget: its
// distance is a (d, delta) pair and composition sums both components
// independently.
type Approximate[M Measure] struct {
	Inner M
}

func (a Approximate[M]) Name() string { return "Approximate<" + a.Inner.Name() + ">" }

func (a Approximate[M]) Equal(o Measure) bool {
	other, ok := o.(Approximate[M])
	return ok && a.Inner.Equal(other.Inner)
}

// Compose always fails: Approximate's composed distance is an (epsilon,
// delta) pair, which cannot be represented as the single arith.Rat this
// method's signature returns. Composing bare epsilons here and silently
// dropping delta would understate the true privacy cost, so this method
// refuses outright rather than doing that; composition callers must type
// -assert ApproximateComposer and call ComposeApproximateDistances, as
// BasicComposition and MakeOdometer do. MakeAdaptiveComposition calls
// Compose directly, so its privacy map fails for an Approximate measure.
func (a Approximate[M]) Compose(ds []arith.Rat) (arith.Rat, error) {
	return arith.Rat{}, errs.NewFailedMap(
		"Approximate.Compose: delta would be silently dropped; use ComposeApproximateDistances via ApproximateComposer")
}

// ApproximateComposer is implemented by measures whose per-query output
// distance is an (epsilon, delta) pair rather than a bare scalar.
// Composition call sites check for this interface before falling back
// to the plain Measure.Compose path.
type ApproximateComposer interface {
	Measure
	ComposeApproximateDistances(ds []ApproximateDistance) (ApproximateDistance, error)
}

// ComposeApproximateDistances sums both components of ds under basic
// composition, the real composition rule for Approximate as opposed to
// the bare-scalar Compose above.
func (a Approximate[M]) ComposeApproximateDistances(ds []ApproximateDistance) (ApproximateDistance, error) {
	return ComposeApproximate(ds), nil
}

// ApproximateDistance is the concrete (epsilon, delta) pair an
// Approximate[M] measurement's PrivacyMap produces.
type ApproximateDistance struct {
	Eps   arith.Rat
	Delta arith.Rat
}

// ComposeApproximate sums both components of a sequence of (eps, delta)
// distances under basic composition.
func ComposeApproximate(ds []ApproximateDistance) ApproximateDistance {
	eps := arith.IntRat(0)
	delta := arith.IntRat(0)
	for _, d := range ds {
		eps = arith.InfAdd(eps, d.Eps)
		delta = arith.InfAdd(delta, d.Delta)
	}
	return ApproximateDistance{Eps: eps, Delta: delta}
}
