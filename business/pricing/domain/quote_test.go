package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

func TestQuoteV2(t *testing.T) {
	token0 := common.HexToAddress("0x1111111111111111111111111111111111111111")
	token1 := common.HexToAddress("0x2222222222222222222222222222222222222222")

	// 100 WETH-like / 200,000 USDC-like: spot ~2000.
	state := V2PoolState{
		Reserve0: bigInt("100000000000000000000"),
		Reserve1: bigInt("200000000000"),
		Token0:   token0,
	}

	t.Run("zero_for_one", func(t *testing.T) {
		q := QuoteV2(state, token0, bigInt("1000000000000000000"), DefaultV2Fee, 18, 6)

		if !q.ZeroForOne {
			t.Error("selling token0 should be zeroForOne")
		}
		if q.AmountOut.Sign() <= 0 {
			t.Fatal("expected positive output")
		}
		// Execution price must sit below spot (fee + slippage),
		// and impact must be positive but small for a 1% trade.
		if q.ExecutionPrice.GreaterThanOrEqual(adjustedRatio(state.Reserve1, state.Reserve0, 6, 18)) {
			t.Errorf("execution price %s not below spot", q.ExecutionPrice)
		}
		if q.PriceImpactPercent.IsZero() || q.PriceImpactPercent.GreaterThan(decimal.NewFromInt(5)) {
			t.Errorf("implausible price impact %s%%", q.PriceImpactPercent)
		}
	})

	t.Run("one_for_zero", func(t *testing.T) {
		q := QuoteV2(state, token1, bigInt("2000000000"), DefaultV2Fee, 6, 18)
		if q.ZeroForOne {
			t.Error("selling token1 should not be zeroForOne")
		}
		if q.AmountOut.Sign() <= 0 {
			t.Fatal("expected positive output")
		}
	})

	t.Run("zero_reserves_defined_result", func(t *testing.T) {
		empty := V2PoolState{Reserve0: new(big.Int), Reserve1: new(big.Int), Token0: token0}
		q := QuoteV2(empty, token0, bigInt("1000000000000000000"), DefaultV2Fee, 18, 6)
		if q.AmountOut.Sign() != 0 || !q.ExecutionPrice.IsZero() {
			t.Errorf("empty pool must quote zero, got %+v", q)
		}
	})
}

func TestQuoteConcentrated(t *testing.T) {
	// Pool at raw price 2e-9 (human 2000 for an 18/6 pair), deep liquidity.
	state := ConcentratedPoolState{
		SqrtPriceX96: PriceToSqrtPrice(2000e-12),
		Liquidity:    bigInt("2000000000000000000"),
		Tick:         -200312,
	}

	t.Run("zero_for_one", func(t *testing.T) {
		q := QuoteConcentrated(state, true, bigInt("1000000000000000000"), 3000, 18, 6)
		if q.AmountOut.Sign() <= 0 {
			t.Fatal("expected positive output")
		}
		// ~2000 out per 1 in, minus fee and impact.
		if q.ExecutionPrice.IntPart() < 1800 || q.ExecutionPrice.IntPart() > 2000 {
			t.Errorf("execution price %s outside plausible band", q.ExecutionPrice)
		}
		if q.PriceImpactPercent.IsNegative() {
			t.Errorf("negative price impact %s", q.PriceImpactPercent)
		}
	})

	t.Run("one_for_zero", func(t *testing.T) {
		q := QuoteConcentrated(state, false, bigInt("2000000000"), 3000, 18, 6)
		if q.AmountOut.Sign() <= 0 {
			t.Fatal("expected positive output")
		}
		// ~2000 USDC buys ~1 WETH: execution price in token0 per token1.
		if q.ExecutionPrice.InexactFloat64() < 0.0003 || q.ExecutionPrice.InexactFloat64() > 0.0006 {
			t.Errorf("execution price %s outside plausible band", q.ExecutionPrice)
		}
	})

	t.Run("fee_reduces_output", func(t *testing.T) {
		in := bigInt("1000000000000000000")
		noFee := QuoteConcentrated(state, true, in, 0, 18, 6)
		fee := QuoteConcentrated(state, true, in, 10000, 18, 6)
		if fee.AmountOut.Cmp(noFee.AmountOut) >= 0 {
			t.Errorf("1%% fee should reduce output: %s vs %s", fee.AmountOut, noFee.AmountOut)
		}
	})

	t.Run("zero_liquidity_defined_result", func(t *testing.T) {
		empty := ConcentratedPoolState{SqrtPriceX96: state.SqrtPriceX96, Liquidity: new(big.Int)}
		q := QuoteConcentrated(empty, true, bigInt("1000000000000000000"), 3000, 18, 6)
		if q.AmountOut.Sign() != 0 {
			t.Errorf("zero liquidity must quote zero, got %s", q.AmountOut)
		}
	})

	t.Run("uninitialized_pool_defined_result", func(t *testing.T) {
		empty := ConcentratedPoolState{SqrtPriceX96: new(big.Int), Liquidity: bigInt("1000")}
		q := QuoteConcentrated(empty, true, bigInt("1000"), 3000, 18, 6)
		if q.AmountOut.Sign() != 0 {
			t.Errorf("uninitialized pool must quote zero, got %s", q.AmountOut)
		}
	})
}

// Quotes are pure: same snapshot in, same quote out.
func TestQuoteConcentrated_Deterministic(t *testing.T) {
	state := ConcentratedPoolState{
		SqrtPriceX96: PriceToSqrtPrice(1),
		Liquidity:    bigInt("500000000000000000"),
	}
	in := bigInt("12345678901234567")

	a := QuoteConcentrated(state, true, in, 500, 18, 18)
	b := QuoteConcentrated(state, true, in, 500, 18, 18)

	if a.AmountOut.Cmp(b.AmountOut) != 0 || !a.ExecutionPrice.Equal(b.ExecutionPrice) {
		t.Error("quote not deterministic")
	}
}
