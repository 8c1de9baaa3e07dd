package space

import (
	"testing"

	"vsis-dpcore/domain"
	"vsis-dpcore/metric"
)

func TestCheck_DatasetMetricNeedsVector(t *testing.T) {
	atom := domain.NewAtomDomain[int64]()
	if err := Check(atom, metric.SymmetricDistance{}); err == nil {
		t.Fatalf("expected mismatch for dataset metric over an atom domain")
	}
	vec := domain.NewVectorDomain(atom)
	if err := Check(vec, metric.SymmetricDistance{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewMetricSpace(t *testing.T) {
	atom := domain.NewAtomDomain[int64]()
	if _, err := NewMetricSpace(atom, metric.AbsoluteDistance[int64]{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck_MapDomainAcceptsSymmetricDistance(t *testing.T) {
	m := domain.NewMapDomain(domain.NewAtomDomain[int64](), domain.NewAtomDomain[int64]())
	if err := Check(m, metric.SymmetricDistance{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Check(m, metric.InsertDeleteDistance{}); err == nil {
		t.Fatalf("expected mismatch: only SymmetricDistance pairs with map<...>")
	}
}

func TestCheck_RejectsUnrecognizedPairing(t *testing.T) {
	atom := domain.NewAtomDomain[int64]()
	if err := Check(atom, metric.LInfDistance[int64]{}); err == nil {
		t.Fatalf("expected mismatch: LInfDistance requires a vector<...> carrier")
	}
}

func TestCheck_DiscreteDistanceAcceptsAtomAndExtrinsic(t *testing.T) {
	atom := domain.NewAtomDomain[int64]()
	if err := Check(atom, metric.DiscreteDistance{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ext := domain.NewExtrinsicDomain("plan", func(interface{}) (bool, error) { return true, nil })
	if err := Check(ext, metric.DiscreteDistance{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vec := domain.NewVectorDomain(atom)
	if err := Check(vec, metric.DiscreteDistance{}); err == nil {
		t.Fatalf("expected mismatch: DiscreteDistance does not pair with a vector carrier")
	}
}
