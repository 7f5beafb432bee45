package dto

import "math/big"

// SwapRequest represents a parsed /swap request.
type SwapRequest struct {
	OfferAmount *big.Int
	OfferDepth  *big.Int
	AskDepth    *big.Int
}

// ZapRequest represents a parsed /zap request.
type ZapRequest struct {
	DepthA  *big.Int
	DepthB  *big.Int
	AmountA *big.Int
	AmountB *big.Int
}

// EnterRequest represents a parsed /enter request. MinimumReceived is nil
// when the caller did not set one.
type EnterRequest struct {
	ZapRequest
	TotalShare      *big.Int
	MinimumReceived *big.Int
}

// SwapResponse is the JSON body returned by /swap. Amounts are decimal
// strings since they may exceed 64 bits.
type SwapResponse struct {
	ReturnAmount string `json:"return_amount"`
	Commission   string `json:"commission"`
}

// ZapResponse is the JSON body returned by /zap.
type ZapResponse struct {
	OfferSide   string `json:"offer_side"`
	OfferAmount string `json:"offer_amount"`
	Iterations  int    `json:"iterations"`
	Converged   bool   `json:"converged"`
}

// EnterResponse is the JSON body returned by /enter.
type EnterResponse struct {
	ZapResponse
	ReturnAmount string `json:"return_amount"`
	Commission   string `json:"commission"`
	MintShares   string `json:"mint_shares"`
}
