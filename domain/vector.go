package domain

// VectorDomain describes a homogeneous slice whose elements each satisfy
// Elem, with an optional fixed Size.
type VectorDomain struct {
	Elem    Domain
	HasSize bool
	Size    int
}

func NewVectorDomain(elem Domain) VectorDomain { return VectorDomain{Elem: elem} }

func (d VectorDomain) WithSize(n int) VectorDomain {
	d.HasSize = true
	d.Size = n
	return d
}

func (d VectorDomain) Member(v interface{}) (bool, error) {
	vals, ok := toInterfaceSlice(v)
	if !ok {
		return false, errMismatch(d.Carrier(), v)
	}
	if d.HasSize && len(vals) != d.Size {
		return false, nil
	}
	for _, x := range vals {
		ok, err := d.Elem.Member(x)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (d VectorDomain) Carrier() string { return "vector<" + d.Elem.Carrier() + ">" }

func (d VectorDomain) Equal(o Domain) bool {
	other, ok := o.(VectorDomain)
	if !ok {
		return false
	}
	return d.Elem.Equal(other.Elem) && d.HasSize == other.HasSize && d.Size == other.Size
}

func (d VectorDomain) CastCarrier() Domain { return NewVectorDomain(d.Elem.CastCarrier()) }

// toInterfaceSlice reflects minimally over the common slice shapes this
// library passes around, avoiding a reflect dependency for the
// []int64/[]float64 cases the noise mechanisms actually use.
func toInterfaceSlice(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case []interface{}:
		return s, true
	case []int64:
		out := make([]interface{}, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []float64:
		out := make([]interface{}, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	default:
		return nil, false
	}
}
