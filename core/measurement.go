package core

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
	"vsis-dpcore/space"
)

// Measurement is the immutable (DI, MI, mu, f, pi) record: a
// domain-respecting function from carrier type DI to release type TO,
// paired with a privacy map bounding the output measure distance as a
// function of input metric distance.
type Measurement[DI, TO any] struct {
	InputDomain  domain.Domain
	InputMetric  metric.Metric
	OutputMeasure measure.Measure
	Function     Function[DI, TO]
	Privacy      PrivacyMap
	// DeltaMap is the delta component of the privacy map, set only when
	// OutputMeasure is a measure.Approximate; nil for every other
	// measure. Privacy alone always still reports the epsilon component,
	// so existing bare-epsilon consumers are unaffected.
	DeltaMap PrivacyMap
}

// NewMeasurement validates check_space on the input (domain, metric)
// pair; a Measurement's output side is a Measure, not a
// Domain/Metric pair, so only the input space is checked here.
func NewMeasurement[DI, TO any](
	inputDomain domain.Domain, inputMetric metric.Metric, outputMeasure measure.Measure,
	function Function[DI, TO], privacy PrivacyMap,
) (*Measurement[DI, TO], error) {
	if _, err := space.NewMetricSpace(inputDomain, inputMetric); err != nil {
		return nil, errs.NewMakeMeasurement("invalid input space: %v", err)
	}
	return &Measurement[DI, TO]{
		InputDomain:   inputDomain,
		InputMetric:   inputMetric,
		OutputMeasure: outputMeasure,
		Function:      function,
		Privacy:       privacy,
	}, nil
}

// Invoke runs the measurement's function, typically drawing randomness.
func (m *Measurement[DI, TO]) Invoke(arg DI) (TO, error) {
	out, err := m.Function.Invoke(arg)
	if err != nil {
		var zero TO
		return zero, errs.WrapFailedFunction(err, "measurement function failed")
	}
	return out, nil
}

// Map runs the privacy map, rejecting negative input distances.
func (m *Measurement[DI, TO]) Map(dIn arith.Rat) (arith.Rat, error) {
	if dIn.Sign() < 0 {
		return arith.Rat{}, errs.NewInvalidDistance("input distance %s is negative", dIn.String())
	}
	dOut, err := m.Privacy(dIn)
	if err != nil {
		return arith.Rat{}, errs.WrapFailedFunction(err, "privacy map failed")
	}
	return dOut, nil
}

// MapApproximate runs both the epsilon component (Privacy) and the
// delta component (DeltaMap) and packages the result as a
// measure.ApproximateDistance. Fails if this measurement has no
// recorded delta component: a measurement that never set DeltaMap is
// not a valid child of an Approximate-measured composition.
func (m *Measurement[DI, TO]) MapApproximate(dIn arith.Rat) (measure.ApproximateDistance, error) {
	if m.DeltaMap == nil {
		return measure.ApproximateDistance{}, errs.NewFailedMap(
			"MapApproximate: measurement has no delta component")
	}
	eps, err := m.Map(dIn)
	if err != nil {
		return measure.ApproximateDistance{}, err
	}
	delta, err := m.DeltaMap(dIn)
	if err != nil {
		return measure.ApproximateDistance{}, errs.WrapFailedFunction(err, "delta map failed")
	}
	return measure.ApproximateDistance{Eps: eps, Delta: delta}, nil
}

// Check implements the check-contract for measurements: m.check(dIn,
// dOut) iff dOut >= pi(dIn).
func (m *Measurement[DI, TO]) Check(dIn, dOut arith.Rat) (bool, error) {
	bound, err := m.Map(dIn)
	if err != nil {
		return false, err
	}
	return dOut.Cmp(bound) >= 0, nil
}
