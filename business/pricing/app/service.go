// Package app contains application services and port definitions for the pricing context.
package app

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/business/pricing/domain"
	"github.com/fd1az/dexkit/internal/apperror"
	"github.com/fd1az/dexkit/internal/logger"
)

// QuoteRequest describes a swap to price. TokenIn/TokenOut are the
// caller's trade direction; canonical pool ordering is derived here, not
// trusted from the caller.
type QuoteRequest struct {
	Version  domain.Version
	Pool     common.Address // pair (V2) or pool (V3) contract
	PoolID   common.Hash    // canonical pool identifier (V4)
	TokenIn  common.Address
	TokenOut common.Address
	AmountIn *big.Int
	FeePpm   uint32 // ignored for V2; V4 dynamic fees resolved by caller
}

// QuoteService resolves pool snapshots through a provider and prices
// swaps with the pure domain math.
type QuoteService struct {
	provider SnapshotProvider
	v2Fee    domain.V2Fee
	log      logger.LoggerInterface
}

// NewQuoteService creates a QuoteService. v2Fee parameterizes the
// constant-product fee factor for the deployment.
func NewQuoteService(provider SnapshotProvider, v2Fee domain.V2Fee, log logger.LoggerInterface) *QuoteService {
	return &QuoteService{
		provider: provider,
		v2Fee:    v2Fee,
		log:      log,
	}
}

// Quote prices the requested swap. Dispatch is exhaustive over the
// version enum; an unknown version is a structured error, not a fallthrough.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (domain.SwapQuote, error) {
	if req.AmountIn == nil || req.AmountIn.Sign() <= 0 {
		return domain.SwapQuote{}, apperror.Validation(apperror.CodeInvalidAmount, "amountIn must be positive")
	}

	metaIn, err := s.provider.TokenMetadata(ctx, req.TokenIn)
	if err != nil {
		return domain.SwapQuote{}, err
	}
	metaOut, err := s.provider.TokenMetadata(ctx, req.TokenOut)
	if err != nil {
		return domain.SwapQuote{}, err
	}

	switch req.Version {
	case domain.V2:
		state, err := s.provider.FetchV2State(ctx, req.Pool)
		if err != nil {
			return domain.SwapQuote{}, err
		}
		quote := domain.QuoteV2(state, req.TokenIn, req.AmountIn, s.v2Fee, metaIn.Decimals(), metaOut.Decimals())
		s.logQuote(ctx, req, quote)
		return quote, nil

	case domain.V3:
		state, err := s.provider.FetchV3State(ctx, req.Pool)
		if err != nil {
			return domain.SwapQuote{}, err
		}
		return s.quoteConcentrated(ctx, req, state, metaIn.Decimals(), metaOut.Decimals())

	case domain.V4:
		state, err := s.provider.FetchV4State(ctx, req.PoolID)
		if err != nil {
			return domain.SwapQuote{}, err
		}
		return s.quoteConcentrated(ctx, req, state, metaIn.Decimals(), metaOut.Decimals())

	default:
		return domain.SwapQuote{}, apperror.Unsupported(apperror.CodeUnsupportedVersion, req.Version.String())
	}
}

func (s *QuoteService) quoteConcentrated(ctx context.Context, req QuoteRequest, state domain.ConcentratedPoolState, decIn, decOut uint8) (domain.SwapQuote, error) {
	// Direction comes from canonical ordering, never from the caller's
	// notion of which side is token0.
	currency0, _ := domain.SortCurrencies(req.TokenIn, req.TokenOut)
	zeroForOne := req.TokenIn == currency0

	dec0, dec1 := decIn, decOut
	if !zeroForOne {
		dec0, dec1 = decOut, decIn
	}

	quote := domain.QuoteConcentrated(state, zeroForOne, req.AmountIn, req.FeePpm, dec0, dec1)
	s.logQuote(ctx, req, quote)
	return quote, nil
}

func (s *QuoteService) logQuote(ctx context.Context, req QuoteRequest, quote domain.SwapQuote) {
	if s.log == nil {
		return
	}
	s.log.Debug(ctx, "quote computed",
		"version", req.Version.String(),
		"token_in", req.TokenIn.Hex(),
		"token_out", req.TokenOut.Hex(),
		"amount_in", req.AmountIn.String(),
		"amount_out", quote.AmountOut.String(),
		"impact_pct", quote.PriceImpactPercent.String(),
	)
}
