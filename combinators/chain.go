// Package combinators implements the chaining and composition operators:
// chain_tt, chain_mt, chain_pm (postprocessing), and basic_composition,
// each threading a metric-space compatibility check so an incompatible
// pairing fails at build time rather than silently coercing.
package combinators

import (
	"vsis-dpcore/core"
	"vsis-dpcore/errs"
)

// ChainTT composes two transformations: t1 after t0. Requires t0's
// output domain/metric to equal t1's input domain/metric. The composed
// function is f1 . f0; the composed stability map is sigma1 . sigma0.
func ChainTT[DI, DMid, DO any](t1 *core.Transformation[DMid, DO], t0 *core.Transformation[DI, DMid]) (*core.Transformation[DI, DO], error) {
	if !t0.OutputDomain.Equal(t1.InputDomain) {
		return nil, errs.NewDomainMismatch("chain_tt: t0 output domain %q != t1 input domain %q",
			t0.OutputDomain.Carrier(), t1.InputDomain.Carrier())
	}
	if !t0.OutputMetric.Equal(t1.InputMetric) {
		return nil, errs.NewMetricMismatch("chain_tt: t0 output metric %q != t1 input metric %q",
			t0.OutputMetric.Name(), t1.InputMetric.Name())
	}
	fn := core.NewFunction(func(arg DI) (DO, error) {
		mid, err := t0.Invoke(arg)
		if err != nil {
			var zero DO
			return zero, err
		}
		return t1.Invoke(mid)
	})
	return &core.Transformation[DI, DO]{
		InputDomain:  t0.InputDomain,
		InputMetric:  t0.InputMetric,
		OutputDomain: t1.OutputDomain,
		OutputMetric: t1.OutputMetric,
		Function:     fn,
		Stability:    core.Chain(t1.Stability, t0.Stability),
	}, nil
}

// ChainMT composes a measurement m1 after a transformation t0: the
// function is m1.f . t0.f; the privacy map is m1.pi . t0.sigma.
func ChainMT[DI, DMid, TO any](m1 *core.Measurement[DMid, TO], t0 *core.Transformation[DI, DMid]) (*core.Measurement[DI, TO], error) {
	if !t0.OutputDomain.Equal(m1.InputDomain) {
		return nil, errs.NewDomainMismatch("chain_mt: t0 output domain %q != m1 input domain %q",
			t0.OutputDomain.Carrier(), m1.InputDomain.Carrier())
	}
	if !t0.OutputMetric.Equal(m1.InputMetric) {
		return nil, errs.NewMetricMismatch("chain_mt: t0 output metric %q != m1 input metric %q",
			t0.OutputMetric.Name(), m1.InputMetric.Name())
	}
	fn := core.NewFunction(func(arg DI) (TO, error) {
		mid, err := t0.Invoke(arg)
		if err != nil {
			var zero TO
			return zero, err
		}
		return m1.Invoke(mid)
	})
	return &core.Measurement[DI, TO]{
		InputDomain:   t0.InputDomain,
		InputMetric:   t0.InputMetric,
		OutputMeasure: m1.OutputMeasure,
		Function:      fn,
		Privacy:       core.PrivacyMap(core.Chain(core.StabilityMap(m1.Privacy), t0.Stability)),
	}, nil
}

// ChainPM applies a postprocessing function pp to measurement m0's
// release. The privacy map is unchanged: postprocessing a DP release
// with a function that does not re-touch the sensitive input can never
// increase privacy loss.
func ChainPM[DI, TMid, TO any](pp func(TMid) (TO, error), m0 *core.Measurement[DI, TMid]) *core.Measurement[DI, TO] {
	fn := core.NewFunction(func(arg DI) (TO, error) {
		mid, err := m0.Invoke(arg)
		if err != nil {
			var zero TO
			return zero, err
		}
		out, err := pp(mid)
		if err != nil {
			var zero TO
			return zero, errs.WrapFailedFunction(err, "postprocessing function failed")
		}
		return out, nil
	})
	return &core.Measurement[DI, TO]{
		InputDomain:   m0.InputDomain,
		InputMetric:   m0.InputMetric,
		OutputMeasure: m0.OutputMeasure,
		Function:      fn,
		Privacy:       m0.Privacy,
	}
}
