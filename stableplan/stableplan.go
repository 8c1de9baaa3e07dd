// Package stableplan defines the contract the surrounding dataframe
// layer uses to inject stable per-column operations into the core
//. The plan rewriter itself is out of scope; this
// package only names the interface. No other package in this module
// imports it.
package stableplan

import (
	"vsis-dpcore/core"
	"vsis-dpcore/domain"
	"vsis-dpcore/metric"
)

// StableExpr is any externally-supplied plan node that can be realized
// as a Transformation once given a concrete input space. DI and DO are
// the carrier types the resulting Transformation operates over.
type StableExpr[DI, DO any] interface {
	// Build returns the Transformation this plan node denotes over the
	// given input domain/metric, or an error if the plan node cannot be
	// realized over that space (e.g. a column reference that does not
	// exist, or a cast this plan node does not support).
	Build(inputDomain domain.Domain, inputMetric metric.Metric) (*core.Transformation[DI, DO], error)
}

// StablePlan wraps a single StableExpr, letting a noise mechanism chain
// onto the result of running a caller-supplied plan rather than a
// single Transformation. It holds one expression; it does not chain
// several StableExpr nodes itself.
type StablePlan[DI, DO any] struct {
	Expr StableExpr[DI, DO]
}

// Build realizes the plan's sole expression over the given input space.
func (p StablePlan[DI, DO]) Build(inputDomain domain.Domain, inputMetric metric.Metric) (*core.Transformation[DI, DO], error) {
	return p.Expr.Build(inputDomain, inputMetric)
}

// FuncExpr adapts a plain closure into a StableExpr, the shape a
// dataframe layer's per-column stable operation builder takes in
// practice: given (input_domain, input_metric), return a
// Transformation.
type FuncExpr[DI, DO any] func(inputDomain domain.Domain, inputMetric metric.Metric) (*core.Transformation[DI, DO], error)

func (f FuncExpr[DI, DO]) Build(inputDomain domain.Domain, inputMetric metric.Metric) (*core.Transformation[DI, DO], error) {
	return f(inputDomain, inputMetric)
}
