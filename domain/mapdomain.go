package domain

// MapDomain describes a map keyed by Key whose values satisfy Value.
type MapDomain struct {
	Key   Domain
	Value Domain
}

func NewMapDomain(key, value Domain) MapDomain { return MapDomain{Key: key, Value: value} }

func (d MapDomain) Member(v interface{}) (bool, error) {
	m, ok := v.(map[interface{}]interface{})
	if !ok {
		return false, errMismatch(d.Carrier(), v)
	}
	for k, val := range m {
		okk, err := d.Key.Member(k)
		if err != nil {
			return false, err
		}
		if !okk {
			return false, nil
		}
		okv, err := d.Value.Member(val)
		if err != nil {
			return false, err
		}
		if !okv {
			return false, nil
		}
	}
	return true, nil
}

func (d MapDomain) Carrier() string { return "map<" + d.Key.Carrier() + "," + d.Value.Carrier() + ">" }

func (d MapDomain) Equal(o Domain) bool {
	other, ok := o.(MapDomain)
	if !ok {
		return false
	}
	return d.Key.Equal(other.Key) && d.Value.Equal(other.Value)
}

func (d MapDomain) CastCarrier() Domain {
	return NewMapDomain(d.Key.CastCarrier(), d.Value.CastCarrier())
}
