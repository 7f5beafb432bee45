package xyk

import "math/big"

// SimulateSwap predicts a constant-product swap using the default calculator.
func SimulateSwap(offerAmount, offerDepth, askDepth *big.Int) (*big.Int, *big.Int, error) {
	return defaultCalc.SimulateSwap(offerAmount, offerDepth, askDepth)
}

// SimulateSwap predicts the output of swapping offerAmount against a pool
// with the given depths, returning the amount received after the 0.3%
// commission and the commission itself:
//
//	askDepthAfter = offerDepth*askDepth*10^18 / (offerDepth+offerAmount)
//	returnAmount  = (askDepth*10^18 - askDepthAfter) / 10^18
//
// The intermediate quantities are scaled up by the precision scalar before
// the truncating division against the large denominator, and scaled back
// down afterwards, so fewer significant digits are lost to truncation.
//
// Both depths must be positive and offerAmount non-negative. No transfer
// tax is modeled.
func (c *Calculator) SimulateSwap(offerAmount, offerDepth, askDepth *big.Int) (*big.Int, *big.Int, error) {
	if offerDepth == nil || offerDepth.Sign() <= 0 || askDepth == nil || askDepth.Sign() <= 0 {
		return nil, nil, ErrInvalidReserve
	}
	if offerAmount == nil || offerAmount.Sign() < 0 {
		return nil, nil, ErrInvalidAmount
	}

	t := c.tmp.Get().(*calcTmp)
	defer c.tmp.Put(t)

	// askDepthAfter = cp * precision / (offerDepth + offerAmount)
	after := t.t1
	after.Mul(offerDepth, askDepth)
	after.Mul(after, c.precision)
	den := t.t2
	den.Add(offerDepth, offerAmount)
	after.Quo(after, den)

	ret := new(big.Int).Mul(askDepth, c.precision)
	ret.Sub(ret, after)
	ret.Quo(ret, c.precision)

	commission := new(big.Int).Mul(ret, c.feeNum)
	commission.Quo(commission, c.feeDen)
	ret.Sub(ret, commission)

	return ret, commission, nil
}
