package domain

// PublicInfo describes what, if anything, is publicly known about a
// margin's grouping structure.
type PublicInfo int

const (
	PublicNone PublicInfo = iota
	PublicLength
	PublicKeys
)

// Margin declares a grouping-key set within a frame domain and what is
// publicly known about it (its length, its keys, or nothing) - the
// declared-margin mechanism frame domains require so a group-by
// transformation's stability can be computed without leaking more than
// the caller already disclosed.
type Margin struct {
	By   []string
	Info PublicInfo
}

// ColumnDescriptor names a frame column and its per-cell domain.
type ColumnDescriptor struct {
	Name   string
	Domain Domain
}

// FrameDomain describes an ordered list of columns plus the margins
// (grouping-key sets) the frame's builder has declared.
type FrameDomain struct {
	Columns []ColumnDescriptor
	Margins []Margin
}

func NewFrameDomain(columns []ColumnDescriptor) FrameDomain {
	return FrameDomain{Columns: columns}
}

func (d FrameDomain) WithMargin(m Margin) FrameDomain {
	d.Margins = append(append([]Margin(nil), d.Margins...), m)
	return d
}

// Row is one frame record: a map from column name to cell value.
type Row map[string]interface{}

func (d FrameDomain) Member(v interface{}) (bool, error) {
	rows, ok := v.([]Row)
	if !ok {
		return false, errMismatch(d.Carrier(), v)
	}
	for _, row := range rows {
		for _, col := range d.Columns {
			cell, present := row[col.Name]
			if !present {
				return false, nil
			}
			ok, err := col.Domain.Member(cell)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

func (d FrameDomain) Carrier() string { return "frame" }

func (d FrameDomain) Equal(o Domain) bool {
	other, ok := o.(FrameDomain)
	if !ok || len(d.Columns) != len(other.Columns) {
		return false
	}
	for i := range d.Columns {
		if d.Columns[i].Name != other.Columns[i].Name || !d.Columns[i].Domain.Equal(other.Columns[i].Domain) {
			return false
		}
	}
	return true
}

func (d FrameDomain) CastCarrier() Domain {
	cols := make([]ColumnDescriptor, len(d.Columns))
	for i, c := range d.Columns {
		cols[i] = ColumnDescriptor{Name: c.Name, Domain: c.Domain.CastCarrier()}
	}
	return FrameDomain{Columns: cols}
}
