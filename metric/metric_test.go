package metric

import "testing"

func TestMetricFlags(t *testing.T) {
	cases := []struct {
		m                          Metric
		ordered, sized, bounded    bool
	}{
		{SymmetricDistance{}, false, false, false},
		{InsertDeleteDistance{}, true, false, false},
		{ChangeOneDistance{}, false, true, true},
		{HammingDistance{}, true, true, true},
	}
	for _, c := range cases {
		if c.m.Ordered() != c.ordered || c.m.Sized() != c.sized || c.m.Bounded() != c.bounded {
			t.Errorf("%s: flags = (%v,%v,%v), want (%v,%v,%v)", c.m.Name(),
				c.m.Ordered(), c.m.Sized(), c.m.Bounded(), c.ordered, c.sized, c.bounded)
		}
	}
}

func TestAbsoluteDistance_Equal(t *testing.T) {
	a := AbsoluteDistance[int64]{}
	b := AbsoluteDistance[int64]{}
	if !a.Equal(b) {
		t.Fatalf("AbsoluteDistance[int64] should equal itself")
	}
	if a.Equal(DiscreteDistance{}) {
		t.Fatalf("AbsoluteDistance should not equal DiscreteDistance")
	}
}

func TestPartitionDistance_Equal(t *testing.T) {
	a := PartitionDistance[SymmetricDistance]{Base: SymmetricDistance{}}
	b := PartitionDistance[SymmetricDistance]{Base: SymmetricDistance{}}
	if !a.Equal(b) {
		t.Fatalf("PartitionDistance should equal another with the same base")
	}
}
