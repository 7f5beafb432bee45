package xyk

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

func TestNewEquation_WorkedScenario(t *testing.T) {
	t.Parallel()

	// offerPool = askPool = 1_000_000, offerUser = 10_000, askUser = 0.
	eq, err := NewEquation(bi("10000"), bi("1000000"), bi("0"), bi("1000000"))
	if err != nil {
		t.Fatalf("NewEquation: %v", err)
	}
	if eq.A.Cmp(bi("1000000")) != 0 {
		t.Fatalf("A: want 1000000 got %s", eq.A)
	}
	if eq.B.Cmp(bi("1996970000000")) != 0 {
		t.Fatalf("B: want 1996970000000 got %s", eq.B)
	}
	if eq.C.Cmp(bi("-10000000000000000")) != 0 {
		t.Fatalf("C: want -10000000000000000 got %s", eq.C)
	}
}

func TestNewEquation_AskHeavy(t *testing.T) {
	t.Parallel()

	// User holds only the asked asset; C flips positive.
	eq, err := NewEquation(bi("0"), bi("1000000"), bi("10000"), bi("1000000"))
	if err != nil {
		t.Fatalf("NewEquation: %v", err)
	}
	if eq.A.Cmp(bi("1010000")) != 0 {
		t.Fatalf("A: want 1010000 got %s", eq.A)
	}
	if eq.B.Cmp(bi("2017000000000")) != 0 {
		t.Fatalf("B: want 2017000000000 got %s", eq.B)
	}
	if eq.C.Cmp(bi("10000000000000000")) != 0 {
		t.Fatalf("C: want 10000000000000000 got %s", eq.C)
	}
}

func TestNewEquation_Idempotent(t *testing.T) {
	t.Parallel()

	build := func() *Equation {
		eq, err := NewEquation(bi("12345"), bi("999999999999999999999"), bi("67890"), bi("31415926535897932384"))
		if err != nil {
			t.Fatalf("NewEquation: %v", err)
		}
		return eq
	}

	first, second := build(), build()
	if first.A.Cmp(second.A) != 0 || first.B.Cmp(second.B) != 0 || first.C.Cmp(second.C) != 0 {
		t.Fatalf("coefficients differ between identical builds: %v vs %v", first, second)
	}
}

func TestNewEquation_InvalidReserve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		offerUser string
		offerPool string
		askUser   string
		askPool   string
	}{
		{"zero offer pool", "1", "0", "1", "1000"},
		{"zero ask pool", "1", "1000", "1", "0"},
		{"negative offer pool", "1", "-5", "1", "1000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEquation(bi(tc.offerUser), bi(tc.offerPool), bi(tc.askUser), bi(tc.askPool))
			if !errors.Is(err, ErrInvalidReserve) {
				t.Fatalf("want ErrInvalidReserve, got %v", err)
			}
		})
	}

	if _, err := NewEquation(bi("1"), nil, bi("1"), bi("1000")); !errors.Is(err, ErrInvalidReserve) {
		t.Fatalf("nil offer pool: want ErrInvalidReserve, got %v", err)
	}
}

func TestNewEquation_InvalidAmount(t *testing.T) {
	t.Parallel()

	if _, err := NewEquation(bi("-1"), bi("1000"), bi("0"), bi("1000")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative offer user: want ErrInvalidAmount, got %v", err)
	}
	if _, err := NewEquation(bi("1"), bi("1000"), nil, bi("1000")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("nil ask user: want ErrInvalidAmount, got %v", err)
	}
}
