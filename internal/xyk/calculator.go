// Package xyk implements the numerical core of the zap engine for
// constant-product (XYK) pools: the quadratic equation relating the optimal
// pre-deposit swap amount to the pool and user balances, an integer-only
// Newton-Raphson root solver, and a constant-product swap simulator.
//
// Everything is exact big.Int arithmetic with truncating division. No
// floating point value exists anywhere in this package, so results are
// bit-for-bit reproducible across independent executions.
package xyk

import (
	"math/big"
	"sync"

	ethmath "github.com/ethereum/go-ethereum/common/math"
)

// Commission rate of the XYK pool: 30/10000 = 0.3%.
const (
	feeNumerator   = 30
	feeDenominator = 10000
)

// MaxIterations is the fixed ceiling on Newton-Raphson steps. It is a
// deterministic safety bound, not a convergence guarantee.
const MaxIterations = 32

var two = big.NewInt(2)

type calcTmp struct {
	t1 *big.Int
	t2 *big.Int
	t3 *big.Int
}

// Calculator carries the fee rate and precision scalar as immutable values
// and a scratch pool to keep the hot paths allocation-light. The zero fee
// configuration is never valid; use NewCalculator.
type Calculator struct {
	feeNum    *big.Int
	feeDen    *big.Int
	precision *big.Int // 10^18, see SimulateSwap

	tmp *sync.Pool
}

// NewCalculator returns a Calculator with the fixed 0.3% commission and the
// 10^18 precision scalar.
func NewCalculator() *Calculator {
	return &Calculator{
		feeNum:    big.NewInt(feeNumerator),
		feeDen:    big.NewInt(feeDenominator),
		precision: ethmath.BigPow(10, 18),
		tmp: &sync.Pool{
			New: func() any {
				return &calcTmp{
					t1: new(big.Int),
					t2: new(big.Int),
					t3: new(big.Int),
				}
			},
		},
	}
}

var defaultCalc = NewCalculator()
