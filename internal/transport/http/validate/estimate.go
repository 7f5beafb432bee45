package validate

import (
	"math/big"
	"net/http"
	"net/url"

	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/astroport-fi/astro-zap/internal/transport/http/dto"
)

// param parses a non-negative big integer query parameter, accepting both
// decimal and 0x-prefixed hex. A missing required parameter is an error; a
// missing optional one yields nil.
func param(q url.Values, key string, required bool) (*big.Int, error) {
	s := q.Get(key)
	if s == "" {
		if required {
			return nil, errors.Errorf("missing %s", key)
		}
		return nil, nil
	}
	v := new(ethmath.HexOrDecimal256)
	if err := v.UnmarshalText([]byte(s)); err != nil {
		return nil, errors.Wrapf(err, "bad %s", key)
	}
	return (*big.Int)(v), nil
}

// SwapRequestValidate validates a /swap request and returns its dto.
func SwapRequestValidate(r *http.Request) (*dto.SwapRequest, int, error) {
	q := r.URL.Query()

	offerAmount, err1 := param(q, "offer_amount", true)
	offerDepth, err2 := param(q, "offer_depth", true)
	askDepth, err3 := param(q, "ask_depth", true)
	if err := multierr.Combine(err1, err2, err3); err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.SwapRequest{
		OfferAmount: offerAmount,
		OfferDepth:  offerDepth,
		AskDepth:    askDepth,
	}, 0, nil
}

func zapRequest(q url.Values) (dto.ZapRequest, error) {
	depthA, err1 := param(q, "depth_a", true)
	depthB, err2 := param(q, "depth_b", true)
	amountA, err3 := param(q, "amount_a", true)
	amountB, err4 := param(q, "amount_b", true)
	return dto.ZapRequest{
		DepthA:  depthA,
		DepthB:  depthB,
		AmountA: amountA,
		AmountB: amountB,
	}, multierr.Combine(err1, err2, err3, err4)
}

// ZapRequestValidate validates a /zap request and returns its dto.
func ZapRequestValidate(r *http.Request) (*dto.ZapRequest, int, error) {
	req, err := zapRequest(r.URL.Query())
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &req, 0, nil
}

// EnterRequestValidate validates an /enter request and returns its dto.
func EnterRequestValidate(r *http.Request) (*dto.EnterRequest, int, error) {
	q := r.URL.Query()

	zreq, err := zapRequest(q)
	totalShare, err2 := param(q, "total_share", true)
	minReceived, err3 := param(q, "minimum_received", false)
	if err := multierr.Combine(err, err2, err3); err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.EnterRequest{
		ZapRequest:      zreq,
		TotalShare:      totalShare,
		MinimumReceived: minReceived,
	}, 0, nil
}
