package odometer

import (
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
)

// ConcurrentMeasure marks a Measure as safe for an odometer's concurrent
// variant: measures whose composition rule is associative and
// commutative regardless of query interleaving order. Concurrency
// support is opt-in and implementation-defined per measure; it must
// never be enabled for a measure whose composition depends on
// interleaving order.
type ConcurrentMeasure interface {
	measure.Measure
	SupportsConcurrency() bool
}

// ConcurrentZCDP is ZCDP tagged as concurrency-safe: its compose rule
// (plain summation) does not depend on the order queries arrive in.
type ConcurrentZCDP struct{ measure.ZCDP }

func (ConcurrentZCDP) SupportsConcurrency() bool { return true }

func (c ConcurrentZCDP) Equal(o measure.Measure) bool {
	_, ok := o.(ConcurrentZCDP)
	return ok
}

// RequireConcurrencySupport returns a MakeMeasurement error unless mu
// implements ConcurrentMeasure and reports SupportsConcurrency() == true.
func RequireConcurrencySupport(mu measure.Measure) error {
	cm, ok := mu.(ConcurrentMeasure)
	if !ok || !cm.SupportsConcurrency() {
		return errs.NewMakeMeasurement(
			"odometer: measure %s does not declare concurrency support, refusing concurrent=true", mu.Name())
	}
	return nil
}
