package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// FeePpmDenominator is the parts-per-million base for V3/V4 fee tiers.
const FeePpmDenominator = 1_000_000

// V2PoolState is the snapshot a constant-product quote needs.
type V2PoolState struct {
	Reserve0 *big.Int
	Reserve1 *big.Int
	Token0   common.Address
}

// ConcentratedPoolState is the snapshot a V3/V4 quote needs.
type ConcentratedPoolState struct {
	SqrtPriceX96 *big.Int
	Liquidity    *big.Int
	Tick         int32
}

// SwapQuote is a pure computation result with no side effects.
type SwapQuote struct {
	AmountIn           *big.Int
	AmountOut          *big.Int
	ExecutionPrice     decimal.Decimal
	PriceImpactPercent decimal.Decimal
	ZeroForOne         bool
}

// zeroQuote is the defined result for degenerate inputs (no liquidity,
// zero amount): all-zero, never a division fault.
func zeroQuote(amountIn *big.Int, zeroForOne bool) SwapQuote {
	if amountIn == nil {
		amountIn = new(big.Int)
	}
	return SwapQuote{
		AmountIn:           new(big.Int).Set(amountIn),
		AmountOut:          new(big.Int),
		ExecutionPrice:     decimal.Zero,
		PriceImpactPercent: decimal.Zero,
		ZeroForOne:         zeroForOne,
	}
}

// QuoteV2 prices a swap against constant-product reserves. tokenIn is
// compared to the pool's token0 to derive direction; decimalsIn/Out are
// the respective tokens' decimals for display-adjusted prices.
func QuoteV2(state V2PoolState, tokenIn common.Address, amountIn *big.Int, fee V2Fee, decimalsIn, decimalsOut uint8) SwapQuote {
	zeroForOne := tokenIn == state.Token0

	reserveIn, reserveOut := state.Reserve0, state.Reserve1
	if !zeroForOne {
		reserveIn, reserveOut = state.Reserve1, state.Reserve0
	}

	amountOut := ConstantProductAmountOut(amountIn, reserveIn, reserveOut, fee)
	if amountOut.Sign() == 0 {
		return zeroQuote(amountIn, zeroForOne)
	}

	execution := adjustedRatio(amountOut, amountIn, decimalsOut, decimalsIn)
	spot := adjustedRatio(reserveOut, reserveIn, decimalsOut, decimalsIn)

	return SwapQuote{
		AmountIn:           new(big.Int).Set(amountIn),
		AmountOut:          amountOut,
		ExecutionPrice:     execution,
		PriceImpactPercent: priceImpact(execution, spot),
		ZeroForOne:         zeroForOne,
	}
}

// QuoteConcentrated prices a swap against a sqrt-price/liquidity
// snapshot. feePpm is the fee in parts per million, taken as a
// multiplicative haircut on the input before the price projection. Both
// V3 pools and V4 pools (with any dynamic fee already resolved by the
// caller) quote through here.
func QuoteConcentrated(state ConcentratedPoolState, zeroForOne bool, amountIn *big.Int, feePpm uint32, decimals0, decimals1 uint8) SwapQuote {
	if amountIn == nil || amountIn.Sign() <= 0 ||
		state.SqrtPriceX96 == nil || state.SqrtPriceX96.Sign() <= 0 ||
		state.Liquidity == nil || state.Liquidity.Sign() <= 0 {
		return zeroQuote(amountIn, zeroForOne)
	}

	// Fee haircut at ppm precision.
	amountInAfterFee := new(big.Int).Mul(amountIn, big.NewInt(int64(FeePpmDenominator-feePpm)))
	amountInAfterFee.Div(amountInAfterFee, big.NewInt(FeePpmDenominator))
	if amountInAfterFee.Sign() == 0 {
		return zeroQuote(amountIn, zeroForOne)
	}

	var amountOut *big.Int
	if zeroForOne {
		next := nextSqrtPriceFromAmount0In(state.SqrtPriceX96, state.Liquidity, amountInAfterFee)
		amountOut = amount1Delta(next, state.SqrtPriceX96, state.Liquidity)
	} else {
		next := nextSqrtPriceFromAmount1In(state.SqrtPriceX96, state.Liquidity, amountInAfterFee)
		amountOut = amount0Delta(state.SqrtPriceX96, next, state.Liquidity)
	}
	if amountOut.Sign() == 0 {
		return zeroQuote(amountIn, zeroForOne)
	}

	decimalsIn, decimalsOut := decimals0, decimals1
	if !zeroForOne {
		decimalsIn, decimalsOut = decimals1, decimals0
	}

	execution := adjustedRatio(amountOut, amountIn, decimalsOut, decimalsIn)

	spotRaw := SqrtPriceToPrice(state.SqrtPriceX96, decimals0, decimals1)
	spot := decimal.NewFromFloat(spotRaw)
	if !zeroForOne && spotRaw > 0 {
		spot = decimal.NewFromInt(1).Div(spot)
	}

	return SwapQuote{
		AmountIn:           new(big.Int).Set(amountIn),
		AmountOut:          amountOut,
		ExecutionPrice:     execution,
		PriceImpactPercent: priceImpact(execution, spot),
		ZeroForOne:         zeroForOne,
	}
}

// adjustedRatio returns (a / b) with each side shifted by its token's
// decimals. Display-boundary math only.
func adjustedRatio(a, b *big.Int, decimalsA, decimalsB uint8) decimal.Decimal {
	if b == nil || b.Sign() == 0 {
		return decimal.Zero
	}
	da := decimal.NewFromBigInt(a, -int32(decimalsA))
	db := decimal.NewFromBigInt(b, -int32(decimalsB))
	if db.IsZero() {
		return decimal.Zero
	}
	return da.Div(db)
}

// priceImpact returns |execution - spot| / spot * 100.
func priceImpact(execution, spot decimal.Decimal) decimal.Decimal {
	if spot.IsZero() {
		return decimal.Zero
	}
	return execution.Sub(spot).Abs().Div(spot).Mul(decimal.NewFromInt(100))
}
