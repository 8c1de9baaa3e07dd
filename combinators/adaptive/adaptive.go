package adaptive

import (
	"vsis-dpcore/arith"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
	"vsis-dpcore/queryable"
)

// askPermission is the internal query a sequentiality wrapper issues to
// its parent before every interaction with a child Queryable. id is the
// number of d_mid slots remaining at the moment the child was spawned;
// the parent answers true iff that still matches its current remaining
// count, i.e. the parent has not moved on since.
type askPermission struct{ id int }

// MakeAdaptiveComposition returns a Measurement whose function yields a
// Queryable accepting further Measurements (each wrapped via Wrap) as
// external queries. Each accepted query consumes one d_mid slot, in the
// order dMids lists them (dMids[0] first); a query whose measurement's privacy cost exceeds the next slot fails
// InsufficientBudget. When concurrent is false (the common case: mu
// does not declare concurrency support), any child Queryable returned
// by an accepted measurement is wrapped with a sequentiality check.
func MakeAdaptiveComposition[DI any](
	inputDomain domain.Domain, inputMetric metric.Metric, mu measure.Measure,
	dIn arith.Rat, dMids []arith.Rat, concurrent bool,
) (*core.Measurement[DI, *queryable.Queryable], error) {
	if len(dMids) == 0 {
		return nil, errs.NewMakeMeasurement("adaptive composition: need at least one d_mid slot")
	}

	fn := core.NewFunction(func(arg DI) (*queryable.Queryable, error) {
		remaining := append([]arith.Rat(nil), dMids...)

		var self *queryable.Queryable
		self = queryable.New(func(q *queryable.Queryable, query queryable.Query) (queryable.Answer, error) {
			switch query.Tag {
			case queryable.TagExternal:
				meas, ok := query.Payload.(AnyMeasurement[DI])
				if !ok {
					return queryable.Answer{}, errs.NewFailedFunction(
						"adaptive composition: external query payload is not a wrapped Measurement")
				}
				if !meas.Domain().Equal(inputDomain) || !meas.Metric().Equal(inputMetric) || !meas.Measure().Equal(mu) {
					return queryable.Answer{}, errs.NewMakeMeasurement(
						"adaptive composition: measurement's (domain, metric, measure) does not match the composition's")
				}
				if len(remaining) == 0 {
					return queryable.Answer{}, errs.NewInsufficientBudget(
						"adaptive composition: no d_mid slots remain")
				}
				top := remaining[0]
				d, err := meas.MapAny(dIn)
				if err != nil {
					return queryable.Answer{}, err
				}
				if d.Cmp(top) > 0 {
					return queryable.Answer{}, errs.NewInsufficientBudget(
						"adaptive composition: measurement privacy cost %s exceeds remaining slot %s",
						d.String(), top.String())
				}
				raw, err := meas.InvokeAny(arg)
				if err != nil {
					return queryable.Answer{}, err
				}
				remaining = remaining[1:]
				id := len(remaining)
				out := raw
				if !concurrent {
					if child, ok := raw.(*queryable.Queryable); ok {
						wrapped, werr := sequentialityWrapper(q, id)(child)
						if werr != nil {
							return queryable.Answer{}, werr
						}
						out = wrapped
					}
				}
				return queryable.ExternalAnswer(out), nil

			case queryable.TagInternal:
				perm, ok := query.Payload.(askPermission)
				if !ok {
					return queryable.Answer{}, errs.NewFailedFunction(
						"adaptive composition: unrecognized internal query")
				}
				if perm.id == len(remaining) {
					return queryable.InternalAnswer(true), nil
				}
				return queryable.Answer{}, errs.NewStaleChild(
					"adaptive composition: child id=%d is stale, parent now has %d slots remaining",
					perm.id, len(remaining))
			}
			return queryable.Answer{}, errs.NewFailedFunction("adaptive composition: unreachable query tag")
		})
		return self, nil
	})

	privacy := core.PrivacyMap(func(dActual arith.Rat) (arith.Rat, error) {
		if dActual.Cmp(dIn) > 0 {
			return arith.Rat{}, errs.NewInvalidDistance(
				"adaptive composition: actual input distance %s exceeds declared d_in %s",
				dActual.String(), dIn.String())
		}
		return mu.Compose(dMids)
	})

	return core.NewMeasurement[DI, *queryable.Queryable](inputDomain, inputMetric, mu, fn, privacy)
}

// sequentialityWrapper returns a Wrapper that, before delegating any
// query to child, asks parent for permission via an internal
// askPermission(id) query - a closure-captured parent handle rather
// than a stored parent pointer in the child, which would create an
// ownership cycle.
func sequentialityWrapper(parent *queryable.Queryable, id int) queryable.Wrapper {
	return func(child queryable.PolyQueryable) (queryable.PolyQueryable, error) {
		wrapped := queryable.New(func(self *queryable.Queryable, q queryable.Query) (queryable.Answer, error) {
			if _, err := parent.EvalInternal(askPermission{id: id}); err != nil {
				return queryable.Answer{}, err
			}
			switch q.Tag {
			case queryable.TagExternal:
				raw, err := child.Eval(q.Payload)
				if err != nil {
					return queryable.Answer{}, err
				}
				return queryable.ExternalAnswer(raw), nil
			default:
				raw, err := child.EvalInternal(q.Payload)
				if err != nil {
					return queryable.Answer{}, err
				}
				return queryable.InternalAnswer(raw), nil
			}
		})
		return wrapped, nil
	}
}
