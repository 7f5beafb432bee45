package service

import (
	"context"

	"github.com/astroport-fi/astro-zap/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Service represents interface for business logic.
type Service interface {
	// EstimateSwap previews a plain constant-product swap.
	EstimateSwap(ctx context.Context, req dto.SwapRequest) (*dto.SwapEstimate, error)
	// EstimateZap computes the optimal rebalancing swap for a zap deposit.
	EstimateZap(ctx context.Context, req dto.ZapRequest) (*dto.ZapEstimate, error)
	// SimulateEnter runs a full zap simulation including the share mint
	// estimate and the optional slippage check.
	SimulateEnter(ctx context.Context, req dto.EnterRequest) (*dto.EnterEstimate, error)
}
