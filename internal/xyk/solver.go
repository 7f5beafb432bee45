package xyk

import (
	"math/big"

	"github.com/pkg/errors"
)

// Observer receives the state of every Newton-Raphson step: the iterate x,
// the function value f(x) and the derivative f'(x). The big.Int arguments
// are reused between iterations; observers must not retain or modify them.
type Observer func(iteration int, x, value, derivative *big.Int)

// Result is the outcome of a solve. X is the final iterate regardless of
// convergence; callers that care must check Converged (an exhausted
// iteration budget is a policy decision for them, not an error here).
type Result struct {
	X          *big.Int
	Iterations int
	Converged  bool
}

// Solve runs the root solver on the default calculator.
func Solve(eq *Equation, obs Observer) (*Result, error) {
	return defaultCalc.Solve(eq, obs)
}

// Solve finds an integer approximation of the root of eq by Newton-Raphson
// iteration starting at x = 0:
//
//	x_{n+1} = x_n - f(x_n) / f'(x_n)
//
// with truncating division, stopping as soon as an iterate repeats exactly
// or after MaxIterations steps. Iterates are compared at full precision; a
// repeated iterate means the sequence has stabilized and further steps
// cannot change the result.
//
// A zero leading coefficient is rejected with ErrDegenerateEquation and a
// vanishing derivative with ErrZeroDerivative; neither case is iterated.
func (c *Calculator) Solve(eq *Equation, obs Observer) (*Result, error) {
	if eq == nil || eq.A == nil || eq.B == nil || eq.C == nil {
		return nil, errors.New("nil equation")
	}
	if eq.A.Sign() == 0 {
		return nil, ErrDegenerateEquation
	}

	t := c.tmp.Get().(*calcTmp)
	defer c.tmp.Put(t)

	var (
		x     = new(big.Int) // x_0 = 0
		next  = new(big.Int)
		value = t.t1
		deriv = t.t2
		step  = t.t3
	)

	for n := 0; n < MaxIterations; n++ {
		// value = A*x^2 + B*x + C
		value.Mul(eq.A, x)
		value.Add(value, eq.B)
		value.Mul(value, x)
		value.Add(value, eq.C)

		// deriv = 2*A*x + B
		deriv.Mul(eq.A, x)
		deriv.Mul(deriv, two)
		deriv.Add(deriv, eq.B)

		if deriv.Sign() == 0 {
			return nil, ErrZeroDerivative
		}
		if obs != nil {
			obs(n, x, value, deriv)
		}

		step.Quo(value, deriv)
		next.Sub(x, step)

		if next.Cmp(x) == 0 {
			return &Result{X: next, Iterations: n + 1, Converged: true}, nil
		}
		x.Set(next)
	}

	return &Result{X: x, Iterations: MaxIterations, Converged: false}, nil
}
