// Package domain implements the Domain side of the core data model: a
// value space together with a membership predicate. Every concrete
// domain is cloneable and value-equal, a plain struct compared and
// copied by value.
package domain

import "vsis-dpcore/errs"

// Domain describes a carrier type and which values of it are admissible.
// Member answers the membership predicate; Carrier names the Go type the
// domain's values are represented as, used by combinators to check
// domain-compatibility before chaining (see combinators.ChainTT).
type Domain interface {
	// Member reports whether v (expected to be of the domain's carrier
	// type) satisfies the domain's constraints.
	Member(v interface{}) (bool, error)
	// Carrier names the Go type this domain's values are represented as
	// (e.g. "int64", "vector<int64>", "map<string,int64>").
	Carrier() string
	// Equal reports whether o describes the same domain (same carrier,
	// same constraints) - combinators use this for the chain-compatible
	// check when composing a Transformation's output domain against the
	// next stage's input domain.
	Equal(o Domain) bool
	// CastCarrier erases descriptive refinements (bounds, size, nullable)
	// while preserving the carrier type, the projection combinators use
	// when narrowing or widening a plan node's domain.
	CastCarrier() Domain
}

// errMismatch is a shared helper for Member implementations that receive
// a value of the wrong Go type.
func errMismatch(carrier string, v interface{}) error {
	return errs.NewMakeDomain("value of type %T is not a member of carrier %q", v, carrier)
}
