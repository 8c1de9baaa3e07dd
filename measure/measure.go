// Package measure implements the Measure side of the core data model: a
// zero-sized tag carrying a Distance type, the privacy-loss currency
// every Measurement's PrivacyMap outputs into.
package measure

import "vsis-dpcore/arith"

// Measure is the tag every privacy-loss notion (max-divergence, zCDP,
// Renyi, ...) implements.
type Measure interface {
	Name() string
	Equal(o Measure) bool
	// Compose combines the per-query output distances of a basic (or
	// adaptive) composition into the composed measure's own distance.
	Compose(ds []arith.Rat) (arith.Rat, error)
}

// MaxDivergence is pure epsilon-DP: composition sums.
type MaxDivergence struct{}

func (MaxDivergence) Name() string      { return "MaxDivergence" }
func (MaxDivergence) Equal(o Measure) bool { _, ok := o.(MaxDivergence); return ok }

func (MaxDivergence) Compose(ds []arith.Rat) (arith.Rat, error) {
	return sum(ds), nil
}

// ZCDP is rho-zero-concentrated differential privacy: composition sums.
type ZCDP struct{}

func (ZCDP) Name() string      { return "ZCDP" }
func (ZCDP) Equal(o Measure) bool { _, ok := o.(ZCDP); return ok }

func (ZCDP) Compose(ds []arith.Rat) (arith.Rat, error) { return sum(ds), nil }

// RangeDivergence backs the Gumbel-noise top-k variant: composition sums,
// the same as MaxDivergence, but it is a distinct measure because its
// distance is not directly comparable to an epsilon.
type RangeDivergence struct{}

func (RangeDivergence) Name() string      { return "RangeDivergence" }
func (RangeDivergence) Equal(o Measure) bool { _, ok := o.(RangeDivergence); return ok }

func (RangeDivergence) Compose(ds []arith.Rat) (arith.Rat, error) { return sum(ds), nil }

func sum(ds []arith.Rat) arith.Rat {
	total := arith.IntRat(0)
	for _, d := range ds {
		total = arith.InfAdd(total, d)
	}
	return total
}

