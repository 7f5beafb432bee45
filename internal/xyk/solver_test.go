package xyk

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

func mustEquation(t *testing.T, offerUser, offerPool, askUser, askPool string) *Equation {
	t.Helper()
	eq, err := NewEquation(bi(offerUser), bi(offerPool), bi(askUser), bi(askPool))
	if err != nil {
		t.Fatalf("NewEquation: %v", err)
	}
	return eq
}

func TestSolve_WorkedScenario(t *testing.T) {
	t.Parallel()

	eq := mustEquation(t, "10000", "1000000", "0", "1000000")
	res, err := Solve(eq, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.X.Cmp(bi("4996")) != 0 {
		t.Fatalf("x: want 4996 got %s", res.X)
	}
	if res.Iterations != 3 {
		t.Fatalf("iterations: want 3 got %d", res.Iterations)
	}
	if !res.Converged {
		t.Fatal("expected convergence")
	}
}

func TestSolve_WorkedScenarioRebalances(t *testing.T) {
	t.Parallel()

	// Swapping the solved amount and depositing the remainder must leave the
	// user's two balances in the pool's post-swap ratio, up to truncation.
	offerPool, askPool, offerUser := bi("1000000"), bi("1000000"), bi("10000")

	eq, err := NewEquation(offerUser, offerPool, bi("0"), askPool)
	if err != nil {
		t.Fatalf("NewEquation: %v", err)
	}
	res, err := Solve(eq, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.X.Sign() <= 0 || res.X.Cmp(offerUser) >= 0 {
		t.Fatalf("x out of range (0, offerUser): %s", res.X)
	}

	ret, _, err := SimulateSwap(res.X, offerPool, askPool)
	if err != nil {
		t.Fatalf("SimulateSwap: %v", err)
	}

	userOffer := new(big.Int).Sub(offerUser, res.X)
	poolOffer := new(big.Int).Add(offerPool, res.X)
	poolAsk := new(big.Int).Sub(askPool, ret)

	// Compare ret/userOffer against poolAsk/poolOffer by cross-multiplication.
	userRatio := new(big.Int).Mul(ret, poolOffer)
	poolRatio := new(big.Int).Mul(poolAsk, userOffer)

	diff := new(big.Int).Sub(userRatio, poolRatio)
	diff.Abs(diff)
	// Truncation of the root, the swap output and the commission each cost
	// at most a unit of either asset; allow a handful of them.
	tol := new(big.Int).Add(poolOffer, userOffer)
	tol.Mul(tol, bi("10"))
	if diff.Cmp(tol) > 0 {
		t.Fatalf("ratio mismatch beyond truncation tolerance: |%s| > %s", diff, tol)
	}
}

func TestSolve_ZeroDeposits(t *testing.T) {
	t.Parallel()

	// Nothing deposited: nothing to rebalance, root is 0.
	eq := mustEquation(t, "0", "1000000", "0", "1000000")
	res, err := Solve(eq, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.X.Sign() != 0 {
		t.Fatalf("x: want 0 got %s", res.X)
	}
	if !res.Converged || res.Iterations != 1 {
		t.Fatalf("want convergence on first step, got iters=%d converged=%v", res.Iterations, res.Converged)
	}
}

func TestSolve_SingleAssetBound(t *testing.T) {
	t.Parallel()

	// For a single-asset deposit, 0 <= x <= offerUser.
	cases := []struct {
		offerUser, offerPool, askPool string
		want                          string
	}{
		{"5", "1000", "1000", "2"},
		{"10000", "1000000", "1000000", "4996"},
		{"1000000", "1000000", "1000000", "415094"},
		{"999999999999999999999", "1000000000000000000000000", "3000000000000000000000000", "500626377120512044262"},
	}
	for _, tc := range cases {
		eq := mustEquation(t, tc.offerUser, tc.offerPool, "0", tc.askPool)
		res, err := Solve(eq, nil)
		if err != nil {
			t.Fatalf("Solve(%s): %v", tc.offerUser, err)
		}
		if res.X.Cmp(bi(tc.want)) != 0 {
			t.Fatalf("x: want %s got %s", tc.want, res.X)
		}
		if res.X.Sign() < 0 || res.X.Cmp(bi(tc.offerUser)) > 0 {
			t.Fatalf("x %s outside [0, %s]", res.X, tc.offerUser)
		}
		if !res.Converged {
			t.Fatalf("no convergence for offerUser=%s", tc.offerUser)
		}
	}
}

func TestSolve_AskHeavyRootIsNegative(t *testing.T) {
	t.Parallel()

	// The asked-asset share already exceeds the pool ratio; the root goes
	// negative, signaling that the swap direction should be reversed.
	eq := mustEquation(t, "0", "1000000", "10000", "1000000")
	res, err := Solve(eq, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.X.Cmp(bi("-4970")) != 0 {
		t.Fatalf("x: want -4970 got %s", res.X)
	}
}

func TestSolve_Observer(t *testing.T) {
	t.Parallel()

	eq := mustEquation(t, "10000", "1000000", "0", "1000000")

	var steps []string
	res, err := Solve(eq, func(n int, x, value, derivative *big.Int) {
		steps = append(steps, x.String())
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(steps) != res.Iterations {
		t.Fatalf("observer calls: want %d got %d", res.Iterations, len(steps))
	}
	if steps[0] != "0" {
		t.Fatalf("first iterate: want 0 got %s", steps[0])
	}
	if steps[1] != "5007" || steps[2] != "4996" {
		t.Fatalf("iterate trace mismatch: %v", steps)
	}
}

func TestSolve_DegenerateEquation(t *testing.T) {
	t.Parallel()

	eq := &Equation{A: bi("0"), B: bi("2"), C: bi("-10")}
	if _, err := Solve(eq, nil); !errors.Is(err, ErrDegenerateEquation) {
		t.Fatalf("want ErrDegenerateEquation, got %v", err)
	}
}

func TestSolve_ZeroDerivative(t *testing.T) {
	t.Parallel()

	// f(x) = x^2 + 5 has f'(0) = 0 at the starting iterate.
	eq := &Equation{A: bi("1"), B: bi("0"), C: bi("5")}
	if _, err := Solve(eq, nil); !errors.Is(err, ErrZeroDerivative) {
		t.Fatalf("want ErrZeroDerivative, got %v", err)
	}
}

func TestSolve_IterationBudgetExhausted(t *testing.T) {
	t.Parallel()

	// f(x) = x^2 - 5x + 7 has no integer root; the truncating iteration
	// falls into the 2 <-> 3 cycle and runs out its budget. That is a
	// reportable result, not an error.
	eq := &Equation{A: bi("1"), B: bi("-5"), C: bi("7")}
	res, err := Solve(eq, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Converged {
		t.Fatal("converged on an equation with no integer root")
	}
	if res.Iterations != MaxIterations {
		t.Fatalf("iterations: want %d got %d", MaxIterations, res.Iterations)
	}
	if res.X.Cmp(bi("2")) != 0 {
		t.Fatalf("x: want 2 got %s", res.X)
	}
}

func TestSolve_NilEquation(t *testing.T) {
	t.Parallel()

	if _, err := Solve(nil, nil); err == nil {
		t.Fatal("want error for nil equation")
	}
}

func BenchmarkSolve(b *testing.B) {
	eq, err := NewEquation(bi("1000000000000000000"), bi("1234567890000000000000"), bi("0"), bi("987654321000000000000000"))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(eq, nil); err != nil {
			b.Fatal(err)
		}
	}
}
