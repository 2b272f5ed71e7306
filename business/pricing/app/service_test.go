package app

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/business/pricing/domain"
	"github.com/fd1az/dexkit/internal/apperror"
	"github.com/fd1az/dexkit/internal/asset"
)

var (
	tokenA = common.HexToAddress("0x1000000000000000000000000000000000000001")
	tokenB = common.HexToAddress("0x2000000000000000000000000000000000000002")
)

// fakeProvider serves canned snapshots; it records nothing and never
// touches the network.
type fakeProvider struct {
	v2  domain.V2PoolState
	v3  domain.ConcentratedPoolState
	v4  domain.ConcentratedPoolState
	err error
}

func (f *fakeProvider) FetchV2State(ctx context.Context, pair common.Address) (domain.V2PoolState, error) {
	return f.v2, f.err
}

func (f *fakeProvider) FetchV3State(ctx context.Context, pool common.Address) (domain.ConcentratedPoolState, error) {
	return f.v3, f.err
}

func (f *fakeProvider) FetchV4State(ctx context.Context, poolID common.Hash) (domain.ConcentratedPoolState, error) {
	return f.v4, f.err
}

func (f *fakeProvider) TokenMetadata(ctx context.Context, token common.Address) (*asset.Asset, error) {
	return asset.NewAsset(asset.NewTokenAssetID(asset.ChainIDEthereum, token), "TKN", 18), nil
}

func e18(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func testService(p SnapshotProvider) *QuoteService {
	return NewQuoteService(p, domain.DefaultV2Fee, nil)
}

func TestQuoteV2DispatchesToReserves(t *testing.T) {
	provider := &fakeProvider{
		v2: domain.V2PoolState{
			Reserve0: e18(1000),
			Reserve1: e18(2000),
			Token0:   tokenA,
		},
	}
	svc := testService(provider)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		Version:  domain.V2,
		Pool:     common.HexToAddress("0xabc0000000000000000000000000000000000001"),
		TokenIn:  tokenA,
		TokenOut: tokenB,
		AmountIn: e18(1),
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.AmountOut.Sign() <= 0 {
		t.Fatal("expected positive output")
	}
	if !quote.ZeroForOne {
		t.Fatal("tokenA is token0, direction should be zeroForOne")
	}
	// Output must stay below the no-fee spot rate of 2 per input.
	if quote.AmountOut.Cmp(e18(2)) >= 0 {
		t.Fatalf("output %s not reduced by fee and impact", quote.AmountOut)
	}
}

func TestQuoteConcentratedDerivesDirection(t *testing.T) {
	state := domain.ConcentratedPoolState{
		SqrtPriceX96: new(big.Int).Lsh(big.NewInt(1), 96), // price 1
		Liquidity:    e18(10),
	}
	provider := &fakeProvider{v3: state, v4: state}
	svc := testService(provider)

	// tokenB -> tokenA is a one-for-zero swap regardless of how the
	// caller orders the request.
	quote, err := svc.Quote(context.Background(), QuoteRequest{
		Version:  domain.V3,
		TokenIn:  tokenB,
		TokenOut: tokenA,
		AmountIn: e18(1),
		FeePpm:   3000,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.ZeroForOne {
		t.Fatal("tokenB is token1, direction should not be zeroForOne")
	}
	if quote.AmountOut.Sign() <= 0 {
		t.Fatal("expected positive output")
	}
}

func TestQuoteV4UsesPoolID(t *testing.T) {
	provider := &fakeProvider{
		v4: domain.ConcentratedPoolState{
			SqrtPriceX96: new(big.Int).Lsh(big.NewInt(1), 96),
			Liquidity:    e18(10),
		},
	}
	svc := testService(provider)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		Version:  domain.V4,
		PoolID:   common.HexToHash("0xdeadbeef"),
		TokenIn:  tokenA,
		TokenOut: tokenB,
		AmountIn: e18(1),
		FeePpm:   500,
	})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.AmountOut.Sign() <= 0 {
		t.Fatal("expected positive output")
	}
}

func TestQuoteRejectsNonPositiveAmount(t *testing.T) {
	svc := testService(&fakeProvider{})

	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := svc.Quote(context.Background(), QuoteRequest{
			Version:  domain.V2,
			TokenIn:  tokenA,
			TokenOut: tokenB,
			AmountIn: amount,
		})
		if apperror.GetCode(err) != apperror.CodeInvalidAmount {
			t.Fatalf("amount=%v: code = %v, want CodeInvalidAmount", amount, apperror.GetCode(err))
		}
	}
}

func TestQuoteRejectsUnknownVersion(t *testing.T) {
	svc := testService(&fakeProvider{})

	_, err := svc.Quote(context.Background(), QuoteRequest{
		Version:  domain.VersionUnknown,
		TokenIn:  tokenA,
		TokenOut: tokenB,
		AmountIn: big.NewInt(1),
	})
	if apperror.GetCode(err) != apperror.CodeUnsupportedVersion {
		t.Fatalf("code = %v, want CodeUnsupportedVersion", apperror.GetCode(err))
	}
}

func TestQuotePropagatesProviderErrors(t *testing.T) {
	provider := &fakeProvider{
		err: apperror.New(apperror.CodeContractCallFailed),
	}
	svc := testService(provider)

	_, err := svc.Quote(context.Background(), QuoteRequest{
		Version:  domain.V3,
		TokenIn:  tokenA,
		TokenOut: tokenB,
		AmountIn: big.NewInt(1000),
	})
	if apperror.GetCode(err) != apperror.CodeContractCallFailed {
		t.Fatalf("code = %v, want CodeContractCallFailed", apperror.GetCode(err))
	}
}
