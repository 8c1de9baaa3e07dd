// Package space holds the domain/metric compatibility table every
// Transformation and Measurement is checked against at construction
// time, kept separate from both domain and metric to avoid those
// packages importing each other.
package space

import (
	"strings"

	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/metric"
)

// MetricSpace pairs a Domain with the Metric measuring distances between
// its members - the "(D, d)" pair a Transformation's input and output
// sides are each defined over.
type MetricSpace struct {
	Domain domain.Domain
	Metric metric.Metric
}

// Check validates that d and m form a compatible (domain, metric) space
// against the core's metric-space compatibility table: atom carriers
// pair with AbsoluteDistance, vector carriers pair with the dataset
// metrics and with Lp/LInf, map carriers pair with SymmetricDistance,
// frame carriers pair with PartitionDistance/FrameDistance, and the
// extrinsic carrier pairs with DiscreteDistance alongside atoms. Every
// other pairing is a mismatch - this is a closed table, not a
// provisional default-accept, so an unrecognized metric/domain product
// fails here rather than at some later silent-coercion point.
func Check(d domain.Domain, m metric.Metric) error {
	switch m.(type) {
	case metric.SymmetricDistance:
		if isVectorCarrier(d) || isMapCarrier(d) {
			return nil
		}
		return errs.NewDomainMismatch(
			"%s requires a vector<...> or map<...> carrier, got %q", m.Name(), d.Carrier())

	case metric.InsertDeleteDistance, metric.ChangeOneDistance, metric.HammingDistance:
		if isVectorCarrier(d) {
			return nil
		}
		return errs.NewDomainMismatch(
			"%s requires a vector<...> carrier, got %q", m.Name(), d.Carrier())

	case metric.DiscreteDistance:
		if isAtomCarrier(d) || isExtrinsicCarrier(d) {
			return nil
		}
		return errs.NewDomainMismatch(
			"DiscreteDistance requires an atom or extrinsic carrier, got %q", d.Carrier())

	default:
		// AbsoluteDistance[Q], LpDistance[Q], LInfDistance[Q],
		// PartitionDistance[M], and FrameDistance[M] are generic over their
		// type parameter, so they can't appear as type-switch cases above;
		// Name() encodes the family (see metric.Metric.Name's doc comment)
		// and is what combinator compatibility checks are meant to dispatch
		// on.
		switch {
		case strings.HasPrefix(m.Name(), "AbsoluteDistance"):
			if isAtomCarrier(d) {
				return nil
			}
			return errs.NewDomainMismatch(
				"%s requires an atom carrier, got %q", m.Name(), d.Carrier())

		case strings.HasPrefix(m.Name(), "LpDistance"), strings.HasPrefix(m.Name(), "LInfDistance"):
			if isVectorCarrier(d) {
				return nil
			}
			return errs.NewDomainMismatch(
				"%s requires a vector<...> carrier, got %q", m.Name(), d.Carrier())

		case m.Name() == "PartitionDistance", m.Name() == "FrameDistance":
			if isFrameCarrier(d) {
				return nil
			}
			return errs.NewDomainMismatch(
				"%s requires a frame domain, got %q", m.Name(), d.Carrier())

		default:
			return errs.NewDomainMismatch(
				"unrecognized metric %s for domain carrier %q", m.Name(), d.Carrier())
		}
	}
}

func isVectorCarrier(d domain.Domain) bool { return strings.HasPrefix(d.Carrier(), "vector<") }
func isMapCarrier(d domain.Domain) bool    { return strings.HasPrefix(d.Carrier(), "map<") }
func isFrameCarrier(d domain.Domain) bool  { return d.Carrier() == "frame" }
func isExtrinsicCarrier(d domain.Domain) bool {
	return strings.HasPrefix(d.Carrier(), "extrinsic:")
}

// isAtomCarrier reports whether d's carrier is a bare scalar type name
// (e.g. "int64", "float64") rather than one of the composite carrier
// shapes above - the shape every AtomDomain[T] produces.
func isAtomCarrier(d domain.Domain) bool {
	return !isVectorCarrier(d) && !isMapCarrier(d) && !isFrameCarrier(d) && !isExtrinsicCarrier(d)
}

// NewMetricSpace constructs and validates a MetricSpace in one call, the
// shape MakeTransformation/MakeMeasurement use for their input and output
// spaces.
func NewMetricSpace(d domain.Domain, m metric.Metric) (MetricSpace, error) {
	if err := Check(d, m); err != nil {
		return MetricSpace{}, err
	}
	return MetricSpace{Domain: d, Metric: m}, nil
}
