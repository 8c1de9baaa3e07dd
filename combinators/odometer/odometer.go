// Package odometer implements make_odometer: a
// Measurement whose function returns a Queryable that accumulates the
// privacy cost of an open-ended stream of invoked measurements and
// reports the running total on demand.
package odometer

import (
	"time"

	"vsis-dpcore/arith"
	"vsis-dpcore/combinators/adaptive"
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/internal/telemetry"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
	"vsis-dpcore/queryable"
)

// InvokeQuery is the external query that appends a measurement's privacy
// map to the odometer's running list and returns its release.
type InvokeQuery[DI any] struct {
	Meas adaptive.AnyMeasurement[DI]
}

// MapQuery is the external query that returns mu.compose of every
// appended child's privacy map evaluated at DIn.
type MapQuery struct {
	DIn arith.Rat
}

// ChildChange is the internal probe-then-commit query: it reports what
// the odometer's Map(DIn) would become if child ID's privacy map were
// replaced by NewPi, optionally committing the replacement.
type ChildChange struct {
	ID     int
	NewPi  core.PrivacyMap
	DIn    arith.Rat
	Commit bool
}

// DigestQuery is the external query that returns the odometer's running
// SHA3-256 audit digest over every committed invocation so far.
type DigestQuery struct{}

// MakeOdometer returns a Measurement whose function binds arg and yields
// an odometer Queryable over it. concurrent mirrors
// adaptive.MakeAdaptiveComposition's flag: odometers over a concurrency-
// supporting measure may allow interleaved child interaction, but this
// implementation does not install a sequentiality wrapper on invoked
// children either way, since an odometer's budget only ever grows and
// has no "parent has moved on" state for a wrapper to check against
// (unlike adaptive composition's fixed, shrinking slot stack).
func MakeOdometer[DI any](
	inputDomain domain.Domain, inputMetric metric.Metric, mu measure.Measure, concurrent bool,
) (*core.Measurement[DI, *queryable.Queryable], error) {
	if concurrent {
		if err := RequireConcurrencySupport(mu); err != nil {
			return nil, err
		}
	}
	fn := core.NewFunction(func(arg DI) (*queryable.Queryable, error) {
		var children []core.PrivacyMap
		// childrenDelta[i] is nil unless mu is an ApproximateComposer, in
		// which case it mirrors children[i] but reports the delta
		// component instead of epsilon. Kept as a parallel slice (rather
		// than changing children's element type) so the epsilon-only path
		// used by every non-Approximate measure, and by ChildChange's
		// probe-then-commit, is untouched.
		var childrenDelta []core.PrivacyMap
		digest := newDigest()

		q := queryable.New(func(self *queryable.Queryable, query queryable.Query) (queryable.Answer, error) {
			switch query.Tag {
			case queryable.TagExternal:
				switch payload := query.Payload.(type) {
				case InvokeQuery[DI]:
					defer telemetry.Mark(time.Now(), "odometer.invoke")
					telemetry.Count("odometer.invoke")
					meas := payload.Meas
					if !meas.Domain().Equal(inputDomain) || !meas.Metric().Equal(inputMetric) || !meas.Measure().Equal(mu) {
						return queryable.Answer{}, errs.NewMakeMeasurement(
							"odometer: measurement's (domain, metric, measure) does not match the odometer's")
					}
					raw, err := meas.InvokeAny(arg)
					if err != nil {
						return queryable.Answer{}, err
					}
					children = append(children, core.PrivacyMap(meas.MapAny))
					var deltaPi core.PrivacyMap
					if _, ok := mu.(measure.ApproximateComposer); ok {
						deltaPi = func(dIn arith.Rat) (arith.Rat, error) {
							d, err := meas.MapApproximateAny(dIn)
							if err != nil {
								return arith.Rat{}, err
							}
							return d.Delta, nil
						}
					}
					childrenDelta = append(childrenDelta, deltaPi)
					digest.append(meas.Domain().Carrier(), meas.Metric().Name(), meas.Measure().Name())
					return queryable.ExternalAnswer(raw), nil

				case MapQuery:
					defer telemetry.Mark(time.Now(), "odometer.map")
					total, err := composeChildren(mu, children, childrenDelta, payload.DIn)
					if err != nil {
						return queryable.Answer{}, err
					}
					return queryable.ExternalAnswer(total), nil

				case DigestQuery:
					return queryable.ExternalAnswer(digest.Sum()), nil

				default:
					return queryable.Answer{}, errs.NewFailedFunction("odometer: unrecognized external query")
				}

			case queryable.TagInternal:
				cc, ok := query.Payload.(ChildChange)
				if !ok {
					return queryable.Answer{}, errs.NewFailedFunction("odometer: unrecognized internal query")
				}
				if cc.ID < 0 || cc.ID >= len(children) {
					return queryable.Answer{}, errs.NewFailedFunction("odometer: ChildChange id %d out of range", cc.ID)
				}
				hypothetical := append([]core.PrivacyMap(nil), children...)
				hypothetical[cc.ID] = cc.NewPi
				total, err := composeChildren(mu, hypothetical, childrenDelta, cc.DIn)
				if err != nil {
					return queryable.Answer{}, err
				}
				if cc.Commit {
					children[cc.ID] = cc.NewPi
				}
				return queryable.InternalAnswer(total), nil
			}
			return queryable.Answer{}, errs.NewFailedFunction("odometer: unreachable query tag")
		})
		return q, nil
	})

	// An odometer's running total is only observable through its
	// Queryable's MapQuery, since it grows with every Invoke; the static
	// privacy map every core.Measurement carries is therefore a
	// structural placeholder that always fails, steering callers to the
	// Queryable's Map query instead of a misleadingly-fixed bound.
	privacy := core.PrivacyMap(func(arith.Rat) (arith.Rat, error) {
		return arith.Rat{}, errs.NewFailedMap(
			"odometer: use the odometer Queryable's Map query, not a static privacy map")
	})

	return core.NewMeasurement[DI, *queryable.Queryable](inputDomain, inputMetric, mu, fn, privacy)
}

// composeChildren folds every appended child's privacy map through mu's
// composition rule at dIn. When mu is an ApproximateComposer, each
// child's epsilon and delta are gathered via deltaChildren and the real
// (epsilon, delta) composition rule runs, returning a
// measure.ApproximateDistance; otherwise it returns a bare arith.Rat as
// before. deltaChildren is only read in that branch, so non-Approximate
// callers may pass a slice of all-nil entries (or one shorter than
// children, via ChildChange's untouched probe) safely.
func composeChildren(mu measure.Measure, children []core.PrivacyMap, deltaChildren []core.PrivacyMap, dIn arith.Rat) (interface{}, error) {
	if composer, ok := mu.(measure.ApproximateComposer); ok {
		ds := make([]measure.ApproximateDistance, len(children))
		for i, pi := range children {
			eps, err := pi(dIn)
			if err != nil {
				return nil, err
			}
			delta := arith.IntRat(0)
			if i < len(deltaChildren) && deltaChildren[i] != nil {
				delta, err = deltaChildren[i](dIn)
				if err != nil {
					return nil, err
				}
			}
			ds[i] = measure.ApproximateDistance{Eps: eps, Delta: delta}
		}
		return composer.ComposeApproximateDistances(ds)
	}
	ds := make([]arith.Rat, len(children))
	for i, pi := range children {
		d, err := pi(dIn)
		if err != nil {
			return arith.Rat{}, err
		}
		ds[i] = d
	}
	return mu.Compose(ds)
}
