// Package metric implements the Metric side of the core data model: a
// zero-sized tag carrying a Distance type and a set of flags describing
// how the metric treats order, cardinality, and "change one" adjacency.
package metric

import "vsis-dpcore/arith"

// Metric is the tag every dataset/numeric distance notion implements.
// Distance values always come from the arith package so they compose
// through InfAdd/InfMul with the same saturating, outward-rounded
// semantics the rest of the library relies on for monotonicity.
type Metric interface {
	// Name identifies the metric for combinator compatibility checks.
	Name() string
	// Ordered reports whether the metric is sensitive to row order.
	Ordered() bool
	// Sized reports whether the metric requires bounded cardinality.
	Sized() bool
	// Bounded reports whether the metric is a "change-one" style metric
	// (paired with an unbounded sibling).
	Bounded() bool
	// Equal reports whether o is the same metric (including any type
	// parameters, e.g. AbsoluteDistance[float64] != AbsoluteDistance[int64]).
	Equal(o Metric) bool
}

// DistanceOf extracts the arith.Rat distance carried in an untyped
// interface{}. StabilityMap/PrivacyMap closures themselves take and
// return arith.Rat directly (see core.StabilityMap).
func DistanceOf(v interface{}) (arith.Rat, bool) {
	r, ok := v.(arith.Rat)
	return r, ok
}
