package dto

import "math/big"

// SwapRequest asks for a plain constant-product swap preview.
type SwapRequest struct {
	OfferAmount *big.Int
	OfferDepth  *big.Int
	AskDepth    *big.Int
}

// SwapEstimate is the predicted swap outcome.
type SwapEstimate struct {
	ReturnAmount *big.Int
	Commission   *big.Int
}

// ZapRequest asks for the optimal pre-deposit swap given the pool depths
// and the user's deposit amounts. All values are exact integers supplied by
// the caller; the service performs no chain queries.
type ZapRequest struct {
	DepthA  *big.Int
	DepthB  *big.Int
	AmountA *big.Int
	AmountB *big.Int
}

// ZapEstimate is the planned rebalancing swap. OfferSide is "a" or "b".
type ZapEstimate struct {
	OfferSide   string
	OfferAmount *big.Int
	Iterations  int
	Converged   bool
}

// EnterRequest asks for a full zap simulation including the share mint
// estimate. MinimumReceived is optional; when set, the estimate must reach
// it.
type EnterRequest struct {
	ZapRequest
	TotalShare      *big.Int
	MinimumReceived *big.Int
}

// EnterEstimate is the full zap simulation result.
type EnterEstimate struct {
	ZapEstimate
	ReturnAmount *big.Int
	Commission   *big.Int
	MintShares   *big.Int
}
