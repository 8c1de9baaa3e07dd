package metric

// SymmetricDistance counts the minimum number of row insertions/removals
// (order-insensitive) to transform one dataset into another.
type SymmetricDistance struct{}

func (SymmetricDistance) Name() string        { return "SymmetricDistance" }
func (SymmetricDistance) Ordered() bool        { return false }
func (SymmetricDistance) Sized() bool          { return false }
func (SymmetricDistance) Bounded() bool        { return false }
func (SymmetricDistance) Equal(o Metric) bool  { _, ok := o.(SymmetricDistance); return ok }

// InsertDeleteDistance is SymmetricDistance's order-sensitive sibling:
// insertions/removals count, but position matters.
type InsertDeleteDistance struct{}

func (InsertDeleteDistance) Name() string       { return "InsertDeleteDistance" }
func (InsertDeleteDistance) Ordered() bool       { return true }
func (InsertDeleteDistance) Sized() bool         { return false }
func (InsertDeleteDistance) Bounded() bool       { return false }
func (InsertDeleteDistance) Equal(o Metric) bool { _, ok := o.(InsertDeleteDistance); return ok }

// ChangeOneDistance counts the minimum number of row substitutions
// (dataset size fixed) to transform one dataset into another - the
// "bounded" sibling of SymmetricDistance.
type ChangeOneDistance struct{}

func (ChangeOneDistance) Name() string       { return "ChangeOneDistance" }
func (ChangeOneDistance) Ordered() bool       { return false }
func (ChangeOneDistance) Sized() bool         { return true }
func (ChangeOneDistance) Bounded() bool       { return true }
func (ChangeOneDistance) Equal(o Metric) bool { _, ok := o.(ChangeOneDistance); return ok }

// HammingDistance is ChangeOneDistance's order-sensitive sibling.
type HammingDistance struct{}

func (HammingDistance) Name() string       { return "HammingDistance" }
func (HammingDistance) Ordered() bool       { return true }
func (HammingDistance) Sized() bool         { return true }
func (HammingDistance) Bounded() bool       { return true }
func (HammingDistance) Equal(o Metric) bool { _, ok := o.(HammingDistance); return ok }

// DiscreteDistance is 0 if two values are equal, 1 otherwise - the metric
// an ExtrinsicDomain or an atom comparison outside the numeric metrics
// below would use.
type DiscreteDistance struct{}

func (DiscreteDistance) Name() string       { return "DiscreteDistance" }
func (DiscreteDistance) Ordered() bool       { return false }
func (DiscreteDistance) Sized() bool         { return false }
func (DiscreteDistance) Bounded() bool       { return false }
func (DiscreteDistance) Equal(o Metric) bool { _, ok := o.(DiscreteDistance); return ok }
