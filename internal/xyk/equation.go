package xyk

import "math/big"

// Equation holds the coefficients of f(x) = A*x^2 + B*x + C, whose root x is
// the optimal amount of the offered asset to swap before providing both
// assets to the pool. The balance condition derives as a*x^2 + b*x - c = 0
// with c = offerPool*(offerUser*askPool - offerPool*askUser); C stores the
// negated constant so that the solver evaluates f directly. C is negative
// for the usual case (offered-asset share exceeds asked-asset share) and
// positive when the user's asked-asset holding already exceeds the pool
// ratio, in which case the root is non-positive and no forward swap helps.
type Equation struct {
	A *big.Int
	B *big.Int
	C *big.Int
}

// NewEquation derives the equation coefficients from the user amounts and
// pool depths using the default calculator.
func NewEquation(offerUser, offerPool, askUser, askPool *big.Int) (*Equation, error) {
	return defaultCalc.NewEquation(offerUser, offerPool, askUser, askPool)
}

// NewEquation derives the equation coefficients:
//
//	A = askPool + askUser
//	B = 2*offerPool*A - askPool*(offerPool+offerUser)*30/10000
//	C = offerPool*(offerPool*askUser - offerUser*askPool)
//
// The 30/10000 term is the only place the commission enters; the solver
// itself is fee-agnostic. Both pool depths must be positive and both user
// amounts non-negative. The same inputs always produce bit-identical
// coefficients.
func (c *Calculator) NewEquation(offerUser, offerPool, askUser, askPool *big.Int) (*Equation, error) {
	if offerPool == nil || offerPool.Sign() <= 0 || askPool == nil || askPool.Sign() <= 0 {
		return nil, ErrInvalidReserve
	}
	if offerUser == nil || offerUser.Sign() < 0 || askUser == nil || askUser.Sign() < 0 {
		return nil, ErrInvalidAmount
	}

	a := new(big.Int).Add(askPool, askUser)

	b := new(big.Int).Mul(offerPool, a)
	b.Mul(b, two)
	fee := new(big.Int).Add(offerPool, offerUser)
	fee.Mul(fee, askPool)
	fee.Mul(fee, c.feeNum)
	fee.Quo(fee, c.feeDen)
	b.Sub(b, fee)

	cc := new(big.Int).Mul(offerPool, askUser)
	t := new(big.Int).Mul(offerUser, askPool)
	cc.Sub(cc, t)
	cc.Mul(cc, offerPool)

	return &Equation{A: a, B: b, C: cc}, nil
}
