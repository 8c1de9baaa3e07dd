package core

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/metric"
	"vsis-dpcore/space"
)

// Transformation is the immutable (DI, MI, DO, MO, f, sigma) record: a
// domain-respecting function between carrier types DI and DO, paired
// with a stability map bounding how output distance grows as a function
// of input distance.
type Transformation[DI, DO any] struct {
	InputDomain  domain.Domain
	InputMetric  metric.Metric
	OutputDomain domain.Domain
	OutputMetric metric.Metric
	Function     Function[DI, DO]
	Stability    StabilityMap
}

// NewTransformation validates check_space on both the input and output
// (domain, metric) pairs before returning a value: a
// successful build implies both spaces are well-formed.
func NewTransformation[DI, DO any](
	inputDomain domain.Domain, inputMetric metric.Metric,
	outputDomain domain.Domain, outputMetric metric.Metric,
	function Function[DI, DO], stability StabilityMap,
) (*Transformation[DI, DO], error) {
	if _, err := space.NewMetricSpace(inputDomain, inputMetric); err != nil {
		return nil, errs.NewMakeTransformation("invalid input space: %v", err)
	}
	if _, err := space.NewMetricSpace(outputDomain, outputMetric); err != nil {
		return nil, errs.NewMakeTransformation("invalid output space: %v", err)
	}
	return &Transformation[DI, DO]{
		InputDomain:  inputDomain,
		InputMetric:  inputMetric,
		OutputDomain: outputDomain,
		OutputMetric: outputMetric,
		Function:     function,
		Stability:    stability,
	}, nil
}

// Invoke runs the transformation's function on arg.
func (t *Transformation[DI, DO]) Invoke(arg DI) (DO, error) {
	out, err := t.Function.Invoke(arg)
	if err != nil {
		var zero DO
		return zero, errs.WrapFailedFunction(err, "transformation function failed")
	}
	return out, nil
}

// Map runs the stability map, rejecting negative input distances with
// an InvalidDistance error.
func (t *Transformation[DI, DO]) Map(dIn arith.Rat) (arith.Rat, error) {
	if dIn.Sign() < 0 {
		return arith.Rat{}, errs.NewInvalidDistance("input distance %s is negative", dIn.String())
	}
	dOut, err := t.Stability(dIn)
	if err != nil {
		return arith.Rat{}, errs.WrapFailedFunction(err, "stability map failed")
	}
	return dOut, nil
}

// Check implements the check-contract: t.check(dIn, dOut) iff dOut >=
// sigma(dIn).
func (t *Transformation[DI, DO]) Check(dIn, dOut arith.Rat) (bool, error) {
	bound, err := t.Map(dIn)
	if err != nil {
		return false, err
	}
	return dOut.Cmp(bound) >= 0, nil
}
