// Package adaptive implements make_adaptive_composition:
// a Measurement whose function returns a Queryable accepting further
// Measurements as external queries, consuming a fixed stack of d_mid
// privacy budget slots and enforcing sequentiality on any child
// Queryable it hands back.
package adaptive

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
)

// AnyMeasurement erases a core.Measurement[DI, TO]'s release type TO so
// an adaptive composition's Queryable can accept measurements of
// differing release type as external queries - a "PolyQueryable"-style
// erasure confined to this adapter.
type AnyMeasurement[DI any] interface {
	Domain() domain.Domain
	Metric() metric.Metric
	Measure() measure.Measure
	InvokeAny(arg DI) (interface{}, error)
	MapAny(dIn arith.Rat) (arith.Rat, error)
	// MapApproximateAny runs the wrapped measurement's MapApproximate,
	// failing if it was never given a delta component. Composition call
	// sites over an Approximate-measured child use this instead of
	// MapAny so delta is threaded through rather than discarded.
	MapApproximateAny(dIn arith.Rat) (measure.ApproximateDistance, error)
}

type measurementAdapter[DI, TO any] struct {
	m *core.Measurement[DI, TO]
}

func (a measurementAdapter[DI, TO]) Domain() domain.Domain    { return a.m.InputDomain }
func (a measurementAdapter[DI, TO]) Metric() metric.Metric    { return a.m.InputMetric }
func (a measurementAdapter[DI, TO]) Measure() measure.Measure { return a.m.OutputMeasure }

func (a measurementAdapter[DI, TO]) InvokeAny(arg DI) (interface{}, error) {
	return a.m.Invoke(arg)
}

func (a measurementAdapter[DI, TO]) MapAny(dIn arith.Rat) (arith.Rat, error) {
	return a.m.Map(dIn)
}

func (a measurementAdapter[DI, TO]) MapApproximateAny(dIn arith.Rat) (measure.ApproximateDistance, error) {
	return a.m.MapApproximate(dIn)
}

// Wrap adapts a concrete Measurement into the AnyMeasurement[DI]
// interface an adaptive composition's Queryable expects as its external
// query payload.
func Wrap[DI, TO any](m *core.Measurement[DI, TO]) AnyMeasurement[DI] {
	return measurementAdapter[DI, TO]{m: m}
}
