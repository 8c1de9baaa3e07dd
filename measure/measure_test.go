package measure

import (
	"math/big"
	"testing"

	"vsis-dpcore/arith"
)

func TestMaxDivergence_Compose(t *testing.T) {
	ds := []arith.Rat{arith.FiniteRat(big.NewRat(1, 2)), arith.FiniteRat(big.NewRat(1, 2))}
	got, err := MaxDivergence{}.Compose(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(arith.IntRat(1)) != 0 {
		t.Fatalf("got %s, want 1", got.String())
	}
}

func TestApproximate_Name(t *testing.T) {
	a := Approximate[MaxDivergence]{Inner: MaxDivergence{}}
	if a.Name() != "Approximate<MaxDivergence>" {
		t.Fatalf("unexpected name: %s", a.Name())
	}
}

func TestApproximate_Compose_Fails(t *testing.T) {
	a := Approximate[MaxDivergence]{Inner: MaxDivergence{}}
	if _, err := a.Compose([]arith.Rat{arith.IntRat(1)}); err == nil {
		t.Fatalf("expected Compose to fail rather than silently drop delta")
	}
}

func TestApproximate_ComposeApproximateDistances(t *testing.T) {
	a := Approximate[MaxDivergence]{Inner: MaxDivergence{}}
	var composer ApproximateComposer = a
	ds := []ApproximateDistance{
		{Eps: arith.FiniteRat(big.NewRat(1, 10)), Delta: arith.FiniteRat(big.NewRat(1, 1000))},
		{Eps: arith.FiniteRat(big.NewRat(2, 10)), Delta: arith.FiniteRat(big.NewRat(1, 1000))},
	}
	got, err := composer.ComposeApproximateDistances(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Eps.Cmp(arith.FiniteRat(big.NewRat(3, 10))) != 0 {
		t.Fatalf("eps = %s, want 3/10", got.Eps.String())
	}
	if got.Delta.Cmp(arith.FiniteRat(big.NewRat(2, 1000))) != 0 {
		t.Fatalf("delta = %s, want 2/1000", got.Delta.String())
	}
}

func TestComposeApproximate(t *testing.T) {
	ds := []ApproximateDistance{
		{Eps: arith.FiniteRat(big.NewRat(1, 10)), Delta: arith.FiniteRat(big.NewRat(1, 1000))},
		{Eps: arith.FiniteRat(big.NewRat(2, 10)), Delta: arith.FiniteRat(big.NewRat(1, 1000))},
	}
	got := ComposeApproximate(ds)
	if got.Eps.Cmp(arith.FiniteRat(big.NewRat(3, 10))) != 0 {
		t.Fatalf("eps = %s, want 3/10", got.Eps.String())
	}
	if got.Delta.Cmp(arith.FiniteRat(big.NewRat(2, 1000))) != 0 {
		t.Fatalf("delta = %s, want 2/1000", got.Delta.String())
	}
}

func TestPureToZCDP(t *testing.T) {
	rho, err := PureToZCDP(arith.IntRat(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rho.Cmp(arith.IntRat(2)) != 0 {
		t.Fatalf("rho = %s, want 2 (eps^2/2 = 4/2)", rho.String())
	}
}

func TestZCDPToRenyi(t *testing.T) {
	d, err := ZCDPToRenyi(arith.IntRat(1), arith.IntRat(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cmp(arith.IntRat(3)) != 0 {
		t.Fatalf("d = %s, want 3", d.String())
	}
	if _, err := ZCDPToRenyi(arith.IntRat(1), arith.IntRat(1)); err == nil {
		t.Fatalf("expected error for alpha <= 1")
	}
}

func TestRenyiDivergence_Equal(t *testing.T) {
	a := RenyiDivergence{Alpha: arith.IntRat(2)}
	b := RenyiDivergence{Alpha: arith.IntRat(2)}
	c := RenyiDivergence{Alpha: arith.IntRat(3)}
	if !a.Equal(b) {
		t.Fatalf("expected equal at same alpha")
	}
	if a.Equal(c) {
		t.Fatalf("expected unequal at different alpha")
	}
}
