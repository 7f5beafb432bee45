package service

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/astroport-fi/astro-zap/internal/service/dto"
	"github.com/astroport-fi/astro-zap/internal/xyk"
	"github.com/astroport-fi/astro-zap/internal/zapper"
)

// planner is the zap-planning surface the service consumes; satisfied by
// zapper.Zapper.
type planner interface {
	Plan(pool zapper.Pool, dep zapper.Deposit) (*zapper.PlanResult, error)
	SimulateEnter(pool zapper.Pool, dep zapper.Deposit, totalShare *big.Int) (*zapper.EnterResult, error)
}

// ZapService implements Service on top of the pure numerical engine. It
// holds no mutable state; concurrent calls need no coordination.
type ZapService struct {
	calc   *xyk.Calculator
	zapper planner
	log    *zap.Logger
}

// NewZapService creates a ZapService. Solver iterations are traced at debug
// level through the engine's observer hook.
func NewZapService(log *zap.Logger) *ZapService {
	if log == nil {
		log = zap.NewNop()
	}
	calc := xyk.NewCalculator()

	var obs xyk.Observer
	if log.Core().Enabled(zap.DebugLevel) {
		obs = func(n int, x, value, derivative *big.Int) {
			log.Debug("solver iteration",
				zap.Int("n", n),
				zap.String("x", x.String()),
				zap.String("value", value.String()),
				zap.String("derivative", derivative.String()),
			)
		}
	}

	return &ZapService{
		calc:   calc,
		zapper: zapper.New(calc, obs),
		log:    log,
	}
}

// EstimateSwap previews a plain constant-product swap.
func (s *ZapService) EstimateSwap(_ context.Context, req dto.SwapRequest) (*dto.SwapEstimate, error) {
	ret, commission, err := s.calc.SimulateSwap(req.OfferAmount, req.OfferDepth, req.AskDepth)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	return &dto.SwapEstimate{ReturnAmount: ret, Commission: commission}, nil
}

// EstimateZap computes the optimal rebalancing swap for a zap deposit.
func (s *ZapService) EstimateZap(_ context.Context, req dto.ZapRequest) (*dto.ZapEstimate, error) {
	plan, err := s.zapper.Plan(
		zapper.Pool{DepthA: req.DepthA, DepthB: req.DepthB},
		zapper.Deposit{AmountA: req.AmountA, AmountB: req.AmountB},
	)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	if !plan.Converged {
		s.log.Warn("solver exhausted iteration budget",
			zap.Int("iterations", plan.Iterations),
			zap.String("offer_amount", plan.OfferAmount.String()),
		)
	}
	return &dto.ZapEstimate{
		OfferSide:   plan.OfferSide.String(),
		OfferAmount: plan.OfferAmount,
		Iterations:  plan.Iterations,
		Converged:   plan.Converged,
	}, nil
}

// SimulateEnter runs a full zap simulation including the share mint estimate.
func (s *ZapService) SimulateEnter(_ context.Context, req dto.EnterRequest) (*dto.EnterEstimate, error) {
	res, err := s.zapper.SimulateEnter(
		zapper.Pool{DepthA: req.DepthA, DepthB: req.DepthB},
		zapper.Deposit{AmountA: req.AmountA, AmountB: req.AmountB},
		req.TotalShare,
	)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	if !res.Plan.Converged {
		s.log.Warn("solver exhausted iteration budget",
			zap.Int("iterations", res.Plan.Iterations),
			zap.String("offer_amount", res.Plan.OfferAmount.String()),
		)
	}
	if err := zapper.CheckMinimumReceived(res.MintShares, req.MinimumReceived); err != nil {
		return nil, errors.WithMessage(ErrTooLittleReceived, err.Error())
	}
	return &dto.EnterEstimate{
		ZapEstimate: dto.ZapEstimate{
			OfferSide:   res.Plan.OfferSide.String(),
			OfferAmount: res.Plan.OfferAmount,
			Iterations:  res.Plan.Iterations,
			Converged:   res.Plan.Converged,
		},
		ReturnAmount: res.ReturnAmount,
		Commission:   res.Commission,
		MintShares:   res.MintShares,
	}, nil
}

func mapEngineErr(err error) error {
	switch {
	case errors.Is(err, xyk.ErrInvalidReserve):
		return ErrInvalidReserve
	case errors.Is(err, xyk.ErrInvalidAmount),
		errors.Is(err, zapper.ErrNoDeposit),
		errors.Is(err, zapper.ErrInvalidShare):
		return ErrInvalidArgument
	case errors.Is(err, xyk.ErrDegenerateEquation),
		errors.Is(err, xyk.ErrZeroDerivative):
		return ErrNotSolvable
	default:
		return err
	}
}
