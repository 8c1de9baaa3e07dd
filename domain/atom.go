package domain

import "vsis-dpcore/errs"

// Numeric is the constraint atom domains over bounded scalar types are
// generic over.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AtomDomain describes a single scalar value of type T, with optional
// closed bounds and a "nullable" flag (nullable only makes sense for
// float types, where NaN stands in for null unless explicitly banned).
type AtomDomain[T Numeric] struct {
	HasBounds  bool
	Lower      T
	Upper      T
	NullableOK bool
}

// NewAtomDomain returns an unbounded, non-nullable atom domain.
func NewAtomDomain[T Numeric]() AtomDomain[T] { return AtomDomain[T]{} }

// WithBounds returns a copy of d with closed bounds [lo,hi].
func (d AtomDomain[T]) WithBounds(lo, hi T) AtomDomain[T] {
	d.HasBounds = true
	d.Lower = lo
	d.Upper = hi
	return d
}

// WithNullable returns a copy of d that additionally admits NaN.
func (d AtomDomain[T]) WithNullable() AtomDomain[T] {
	d.NullableOK = true
	return d
}

func (d AtomDomain[T]) Member(v interface{}) (bool, error) {
	x, ok := v.(T)
	if !ok {
		return false, errMismatch(d.Carrier(), v)
	}
	if isNaN(x) {
		return d.NullableOK, nil
	}
	if d.HasBounds && (x < d.Lower || x > d.Upper) {
		return false, nil
	}
	return true, nil
}

func (d AtomDomain[T]) Carrier() string { return typeName[T]() }

func (d AtomDomain[T]) Equal(o Domain) bool {
	other, ok := o.(AtomDomain[T])
	if !ok {
		return false
	}
	return d.HasBounds == other.HasBounds && d.Lower == other.Lower &&
		d.Upper == other.Upper && d.NullableOK == other.NullableOK
}

func (d AtomDomain[T]) CastCarrier() Domain { return NewAtomDomain[T]() }

// CheckBoundsFinite fails if the configured bounds are not well-formed
// (lo > hi): a construction-time precondition ensuring a successful
// build implies all of a domain's bound constants are finite.
func (d AtomDomain[T]) CheckBoundsFinite() error {
	if d.HasBounds && d.Lower > d.Upper {
		return errs.NewMakeDomain("atom domain bounds are inverted: lower=%v > upper=%v", d.Lower, d.Upper)
	}
	return nil
}

func isNaN[T Numeric](x T) bool {
	f := float64(x)
	return f != f
}

func typeName[T Numeric]() string {
	var zero T
	switch interface{}(zero).(type) {
	case int:
		return "int"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	default:
		return "unknown"
	}
}
