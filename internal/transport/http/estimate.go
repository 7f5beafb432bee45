package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/astroport-fi/astro-zap/internal/service"
	svcdto "github.com/astroport-fi/astro-zap/internal/service/dto"
	"github.com/astroport-fi/astro-zap/internal/transport/http/dto"
	"github.com/astroport-fi/astro-zap/internal/transport/http/validate"
)

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.SwapRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	est, err := s.est.EstimateSwap(ctx, svcdto.SwapRequest{
		OfferAmount: req.OfferAmount,
		OfferDepth:  req.OfferDepth,
		AskDepth:    req.AskDepth,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, dto.SwapResponse{
		ReturnAmount: est.ReturnAmount.String(),
		Commission:   est.Commission.String(),
	})
}

func (s *Server) handleZap(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.ZapRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	est, err := s.est.EstimateZap(ctx, svcdto.ZapRequest{
		DepthA:  req.DepthA,
		DepthB:  req.DepthB,
		AmountA: req.AmountA,
		AmountB: req.AmountB,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, dto.ZapResponse{
		OfferSide:   est.OfferSide,
		OfferAmount: est.OfferAmount.String(),
		Iterations:  est.Iterations,
		Converged:   est.Converged,
	})
}

func (s *Server) handleEnter(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.EnterRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	est, err := s.est.SimulateEnter(ctx, svcdto.EnterRequest{
		ZapRequest: svcdto.ZapRequest{
			DepthA:  req.DepthA,
			DepthB:  req.DepthB,
			AmountA: req.AmountA,
			AmountB: req.AmountB,
		},
		TotalShare:      req.TotalShare,
		MinimumReceived: req.MinimumReceived,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, dto.EnterResponse{
		ZapResponse: dto.ZapResponse{
			OfferSide:   est.OfferSide,
			OfferAmount: est.OfferAmount.String(),
			Iterations:  est.Iterations,
			Converged:   est.Converged,
		},
		ReturnAmount: est.ReturnAmount.String(),
		Commission:   est.Commission.String(),
		MintShares:   est.MintShares.String(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response write error", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidReserve),
		errors.Is(err, service.ErrTooLittleReceived):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotSolvable):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
