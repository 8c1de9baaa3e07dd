package odometer

import (
	"testing"

	"vsis-dpcore/domain"
	"vsis-dpcore/errs"
	"vsis-dpcore/measure"
	"vsis-dpcore/metric"
)

func TestMakeOdometer_RejectsConcurrentWithoutSupport(t *testing.T) {
	_, err := MakeOdometer[int64](
		domain.NewAtomDomain[int64](), metric.AbsoluteDistance[int64]{}, measure.ZCDP{}, true,
	)
	if !errs.Is(err, errs.MakeMeasurement) {
		t.Fatalf("expected MakeMeasurement error for plain ZCDP under concurrent=true, got %v", err)
	}
}

func TestMakeOdometer_AllowsConcurrentZCDP(t *testing.T) {
	_, err := MakeOdometer[int64](
		domain.NewAtomDomain[int64](), metric.AbsoluteDistance[int64]{}, ConcurrentZCDP{}, true,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
