// Package zapper plans single-transaction "zap" deposits into a two-asset
// constant-product pool: it decides which of the two assets to swap, how
// much, and estimates the liquidity shares a deposit would mint.
package zapper

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/astroport-fi/astro-zap/internal/xyk"
)

var (
	// ErrNoDeposit is returned when both deposit amounts are zero.
	ErrNoDeposit = errors.New("must deposit at least one asset")

	// ErrInvalidShare is returned when the pool's total share supply is not
	// positive.
	ErrInvalidShare = errors.New("invalid total share")

	// ErrTooLittleReceived is returned by CheckMinimumReceived when the
	// share estimate falls below the caller's minimum.
	ErrTooLittleReceived = errors.New("too little received")
)

// Side identifies one of the pool's two assets.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideB {
		return "b"
	}
	return "a"
}

// Pool is a read-only snapshot of the pool's two reserve depths.
type Pool struct {
	DepthA *big.Int
	DepthB *big.Int
}

// Deposit is the pair of amounts the user wishes to deposit. One of them
// may be zero (single-asset zap).
type Deposit struct {
	AmountA *big.Int
	AmountB *big.Int
}

// PlanResult describes the swap that balances a deposit against the pool.
// OfferAmount is zero when the deposit already matches the pool ratio.
type PlanResult struct {
	OfferSide   Side
	OfferAmount *big.Int
	Iterations  int
	Converged   bool
}

// EnterResult extends a plan with the simulated swap outcome and the
// estimated amount of liquidity shares minted.
type EnterResult struct {
	Plan         PlanResult
	ReturnAmount *big.Int
	Commission   *big.Int
	MintShares   *big.Int
}

// Zapper plans zaps on top of an xyk.Calculator. The observer, when set,
// receives every Newton-Raphson step of each solve.
type Zapper struct {
	calc *xyk.Calculator
	obs  xyk.Observer
}

// New creates a Zapper. A nil calc selects the default calculator.
func New(calc *xyk.Calculator, obs xyk.Observer) *Zapper {
	if calc == nil {
		calc = xyk.NewCalculator()
	}
	return &Zapper{calc: calc, obs: obs}
}

// Plan computes the optimal pre-deposit swap for the given pool and deposit.
// The asset in which the user's share of the pool is larger becomes the
// offer side; shares are compared by cross-multiplication, so the decision
// is exact. The solved amount never exceeds the user's balance on the offer
// side.
func (z *Zapper) Plan(pool Pool, dep Deposit) (*PlanResult, error) {
	if err := validate(pool, dep); err != nil {
		return nil, err
	}

	// shareA > shareB  <=>  amountA/depthA > amountB/depthB
	shareA := new(big.Int).Mul(dep.AmountA, pool.DepthB)
	shareB := new(big.Int).Mul(dep.AmountB, pool.DepthA)

	var (
		eq   *xyk.Equation
		err  error
		side Side
	)
	if shareA.Cmp(shareB) > 0 {
		side = SideA
		eq, err = z.calc.NewEquation(dep.AmountA, pool.DepthA, dep.AmountB, pool.DepthB)
	} else {
		side = SideB
		eq, err = z.calc.NewEquation(dep.AmountB, pool.DepthB, dep.AmountA, pool.DepthA)
	}
	if err != nil {
		return nil, err
	}

	res, err := z.calc.Solve(eq, z.obs)
	if err != nil {
		return nil, err
	}

	offer := res.X
	// The share ordering keeps the root non-negative; clamp the truncated
	// iterate anyway.
	if offer.Sign() < 0 {
		offer = new(big.Int)
	}

	return &PlanResult{
		OfferSide:   side,
		OfferAmount: offer,
		Iterations:  res.Iterations,
		Converged:   res.Converged,
	}, nil
}

// SimulateEnter predicts the full outcome of a zap: the planned swap, its
// output, and the liquidity shares minted by depositing the rebalanced
// amounts. totalShare is the pool's current share supply. The mint estimate
// follows the pool's own rule: the smaller of the two deposit/depth ratios,
// taken against the post-swap depths.
func (z *Zapper) SimulateEnter(pool Pool, dep Deposit, totalShare *big.Int) (*EnterResult, error) {
	if totalShare == nil || totalShare.Sign() <= 0 {
		return nil, ErrInvalidShare
	}

	plan, err := z.Plan(pool, dep)
	if err != nil {
		return nil, err
	}

	offerDepth, askDepth := pool.DepthA, pool.DepthB
	userOffer, userAsk := dep.AmountA, dep.AmountB
	if plan.OfferSide == SideB {
		offerDepth, askDepth = pool.DepthB, pool.DepthA
		userOffer, userAsk = dep.AmountB, dep.AmountA
	}

	ret, commission, err := z.calc.SimulateSwap(plan.OfferAmount, offerDepth, askDepth)
	if err != nil {
		return nil, err
	}

	// Move the swapped amounts between the user and the pool.
	offerDepth = new(big.Int).Add(offerDepth, plan.OfferAmount)
	askDepth = new(big.Int).Sub(askDepth, ret)
	userOffer = new(big.Int).Sub(userOffer, plan.OfferAmount)
	userAsk = new(big.Int).Add(userAsk, ret)

	mintOffer := new(big.Int).Mul(userOffer, totalShare)
	mintOffer.Quo(mintOffer, offerDepth)
	mintAsk := new(big.Int).Mul(userAsk, totalShare)
	mintAsk.Quo(mintAsk, askDepth)

	mint := mintOffer
	if mintAsk.Cmp(mintOffer) < 0 {
		mint = mintAsk
	}

	return &EnterResult{
		Plan:         *plan,
		ReturnAmount: ret,
		Commission:   commission,
		MintShares:   mint,
	}, nil
}

// CheckMinimumReceived enforces the caller's slippage bound on a share
// estimate. A nil minimum disables the check.
func CheckMinimumReceived(received, minimum *big.Int) error {
	if minimum == nil {
		return nil
	}
	if received == nil || received.Cmp(minimum) < 0 {
		return errors.Wrapf(ErrTooLittleReceived, "minimum %s, received %s", minimum, received)
	}
	return nil
}

func validate(pool Pool, dep Deposit) error {
	if pool.DepthA == nil || pool.DepthA.Sign() <= 0 || pool.DepthB == nil || pool.DepthB.Sign() <= 0 {
		return xyk.ErrInvalidReserve
	}
	if dep.AmountA == nil || dep.AmountA.Sign() < 0 || dep.AmountB == nil || dep.AmountB.Sign() < 0 {
		return xyk.ErrInvalidAmount
	}
	if dep.AmountA.Sign() == 0 && dep.AmountB.Sign() == 0 {
		return ErrNoDeposit
	}
	return nil
}
