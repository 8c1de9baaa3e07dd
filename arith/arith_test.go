package arith

import (
	"math/big"
	"testing"
)

func TestInfAdd_Saturates(t *testing.T) {
	if got := InfAdd(PosInf(), IntRat(5)); !got.IsPosInf() {
		t.Fatalf("InfAdd(+Inf, 5) = %s, want +Inf", got)
	}
	sum := InfAdd(IntRat(2), IntRat(3))
	if sum.Cmp(IntRat(5)) != 0 {
		t.Fatalf("InfAdd(2,3) = %s, want 5", sum)
	}
}

func TestInfDiv_ByZero(t *testing.T) {
	if got := InfDiv(IntRat(5), IntRat(0)); !got.IsPosInf() {
		t.Fatalf("InfDiv(5,0) = %s, want +Inf", got)
	}
	if got := InfDiv(IntRat(-5), IntRat(0)); !got.IsNegInf() {
		t.Fatalf("InfDiv(-5,0) = %s, want -Inf", got)
	}
}

func TestInfMul_Monotone(t *testing.T) {
	a := FiniteRat(big.NewRat(3, 2))
	b := FiniteRat(big.NewRat(2, 1))
	got := InfMul(a, b)
	want := FiniteRat(big.NewRat(3, 1))
	if got.Cmp(want) != 0 {
		t.Fatalf("InfMul(3/2,2) = %s, want 3", got)
	}
}

func TestInfPow(t *testing.T) {
	got := InfPow(IntRat(2), 10)
	if got.Cmp(IntRat(1024)) != 0 {
		t.Fatalf("InfPow(2,10) = %s, want 1024", got)
	}
}

func TestInfSqrt_Bounds(t *testing.T) {
	got, err := InfSqrt(IntRat(2))
	if err != nil {
		t.Fatalf("InfSqrt(2): %v", err)
	}
	lo, err := NegInfSqrt(IntRat(2))
	if err != nil {
		t.Fatalf("NegInfSqrt(2): %v", err)
	}
	if lo.Cmp(got) > 0 {
		t.Fatalf("lower bound %s exceeds upper bound %s", lo, got)
	}
	// sqrt(2) ~ 1.41421356
	f := got.Float64()
	if f < 1.4142 || f > 1.4143 {
		t.Fatalf("InfSqrt(2) = %v, want ~1.41421356", f)
	}
}

func TestInfExpLog_RoundTrip(t *testing.T) {
	x := FiniteRat(big.NewRat(1, 2))
	e, err := InfExp(x)
	if err != nil {
		t.Fatalf("InfExp: %v", err)
	}
	l, err := InfLog(e)
	if err != nil {
		t.Fatalf("InfLog: %v", err)
	}
	f := l.Float64()
	if f < 0.49 || f > 0.51 {
		t.Fatalf("log(exp(0.5)) = %v, want ~0.5", f)
	}
}

func TestInfExp_NegativeInfinity(t *testing.T) {
	got, err := InfExp(NegInf())
	if err != nil {
		t.Fatalf("InfExp(-Inf): %v", err)
	}
	if got.Cmp(IntRat(0)) != 0 {
		t.Fatalf("InfExp(-Inf) = %s, want 0", got)
	}
}

func TestInfCastInt64_RoundsTowardPosInf(t *testing.T) {
	r := FiniteRat(big.NewRat(5, 2)) // 2.5
	got, err := InfCastInt64(r)
	if err != nil {
		t.Fatalf("InfCastInt64: %v", err)
	}
	if got != 3 {
		t.Fatalf("InfCastInt64(2.5) = %d, want 3", got)
	}
	neg := FiniteRat(big.NewRat(-5, 2))
	got2, _ := InfCastInt64(neg)
	if got2 != -2 {
		t.Fatalf("InfCastInt64(-2.5) = %d, want -2 (outward = toward +inf, so the result stays >= the value)", got2)
	}
}

func TestInfCastFromFloat64_NaNFails(t *testing.T) {
	if _, err := InfCastFromFloat64(nan()); err == nil {
		t.Fatalf("InfCastFromFloat64(NaN) should fail")
	}
}

func nan() float64 {
	var x float64
	return x / x
}

func TestRingReduce(t *testing.T) {
	got, err := RingReduce(big.NewInt(12289+5), 12289)
	if err != nil {
		t.Fatalf("RingReduce: %v", err)
	}
	if got != 5 {
		t.Fatalf("RingReduce(12294, 12289) = %d, want 5", got)
	}
}

func TestRoundTripCastBound(t *testing.T) {
	x := FiniteRat(big.NewRat(7, 3))
	upper, _ := InfCastInt64(x)
	lower, _ := NegInfCastInt64(x)
	if float64(upper) < x.Float64() {
		t.Fatalf("InfCastInt64 under-approximated: %d < %v", upper, x.Float64())
	}
	if float64(lower) > x.Float64() {
		t.Fatalf("NegInfCastInt64 over-approximated: %d > %v", lower, x.Float64())
	}
}
