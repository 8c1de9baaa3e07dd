package domain

// OptionValue carries either a present value of T or an explicit null.
type OptionValue[T any] struct {
	Valid bool
	Value T
}

// OptionDomain wraps a non-null atom (or other) domain, additionally
// permitting an explicit null marked via OptionValue.Valid=false - unlike
// AtomDomain's NaN-as-null convention, this applies to any carrier type.
type OptionDomain struct {
	Inner Domain
}

// NewOptionDomain wraps inner, which must itself reject null values (an
// AtomDomain without WithNullable, a VectorDomain, etc).
func NewOptionDomain(inner Domain) OptionDomain { return OptionDomain{Inner: inner} }

func (d OptionDomain) Member(v interface{}) (bool, error) {
	ov, ok := v.(optionLike)
	if !ok {
		return false, errMismatch(d.Carrier(), v)
	}
	if !ov.isValid() {
		return true, nil
	}
	return d.Inner.Member(ov.inner())
}

func (d OptionDomain) Carrier() string { return "option<" + d.Inner.Carrier() + ">" }

func (d OptionDomain) Equal(o Domain) bool {
	other, ok := o.(OptionDomain)
	if !ok {
		return false
	}
	return d.Inner.Equal(other.Inner)
}

func (d OptionDomain) CastCarrier() Domain { return NewOptionDomain(d.Inner.CastCarrier()) }

// optionLike lets OptionDomain.Member accept any OptionValue[T] without
// needing OptionDomain itself to be generic.
type optionLike interface {
	isValid() bool
	inner() interface{}
}

func (o OptionValue[T]) isValid() bool    { return o.Valid }
func (o OptionValue[T]) inner() interface{} { return o.Value }
