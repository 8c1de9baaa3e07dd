package combinators

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
)

// BasicComposition combines measurements that all share (DI, MI, mu)
// into one measurement whose function returns a tuple of releases and
// whose privacy map is mu.compose([pi_i(d)]).
func BasicComposition[DI, TO any](ms []*core.Measurement[DI, TO]) (*core.Measurement[DI, []TO], error) {
	if len(ms) == 0 {
		return nil, errs.NewMakeMeasurement("basic_composition: need at least one measurement")
	}
	head := ms[0]
	for _, m := range ms[1:] {
		if !m.InputDomain.Equal(head.InputDomain) {
			return nil, errs.NewDomainMismatch("basic_composition: input domains differ")
		}
		if !m.InputMetric.Equal(head.InputMetric) {
			return nil, errs.NewMetricMismatch("basic_composition: input metrics differ")
		}
		if !m.OutputMeasure.Equal(head.OutputMeasure) {
			return nil, errs.NewMeasureMismatch("basic_composition: output measures differ")
		}
	}
	fn := core.NewFunction(func(arg DI) ([]TO, error) {
		out := make([]TO, len(ms))
		for i, m := range ms {
			v, err := m.Invoke(arg)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	})
	// composeApprox re-evaluates every child's (epsilon, delta) pair at
	// dIn and folds them through the measure's real composition rule;
	// privacy and deltaMap below each read one half of its result so
	// delta is threaded through rather than discarded.
	composeApprox := func(composer measure.ApproximateComposer, dIn arith.Rat) (measure.ApproximateDistance, error) {
		ds := make([]measure.ApproximateDistance, len(ms))
		for i, m := range ms {
			d, err := m.MapApproximate(dIn)
			if err != nil {
				return measure.ApproximateDistance{}, err
			}
			ds[i] = d
		}
		return composer.ComposeApproximateDistances(ds)
	}

	var privacy, deltaMap core.PrivacyMap
	if composer, ok := head.OutputMeasure.(measure.ApproximateComposer); ok {
		privacy = func(dIn arith.Rat) (arith.Rat, error) {
			d, err := composeApprox(composer, dIn)
			if err != nil {
				return arith.Rat{}, err
			}
			return d.Eps, nil
		}
		deltaMap = func(dIn arith.Rat) (arith.Rat, error) {
			d, err := composeApprox(composer, dIn)
			if err != nil {
				return arith.Rat{}, err
			}
			return d.Delta, nil
		}
	} else {
		privacy = func(dIn arith.Rat) (arith.Rat, error) {
			ds := make([]arith.Rat, len(ms))
			for i, m := range ms {
				d, err := m.Map(dIn)
				if err != nil {
					return arith.Rat{}, err
				}
				ds[i] = d
			}
			return head.OutputMeasure.Compose(ds)
		}
	}
	return &core.Measurement[DI, []TO]{
		InputDomain:   head.InputDomain,
		InputMetric:   head.InputMetric,
		OutputMeasure: head.OutputMeasure,
		Function:      fn,
		Privacy:       privacy,
		DeltaMap:      deltaMap,
	}, nil
}
