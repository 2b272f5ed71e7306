package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Liquidity sizing follows the reference concentrated-liquidity math:
// all divisions are floor divisions on big integers, and every
// degenerate input (zero amounts, equal bounds, zero liquidity) resolves
// to zero rather than an error so callers can treat "no liquidity
// needed" uniformly.

// mulDiv computes floor(a * b / denominator) at full intermediate
// precision. A zero denominator yields 0.
func mulDiv(a, b, denominator *big.Int) *big.Int {
	if denominator == nil || denominator.Sign() == 0 {
		return new(big.Int)
	}
	product := new(big.Int).Mul(a, b)
	return product.Div(product, denominator)
}

// LiquidityForAmount0 computes the liquidity a given amount0 can back
// over [sqrtA, sqrtB]: amount0 * (sqrtA*sqrtB/Q96) / (sqrtB - sqrtA).
func LiquidityForAmount0(sqrtAX96, sqrtBX96, amount0 *big.Int) *big.Int {
	if sqrtAX96.Cmp(sqrtBX96) > 0 {
		sqrtAX96, sqrtBX96 = sqrtBX96, sqrtAX96
	}
	intermediate := mulDiv(sqrtAX96, sqrtBX96, Q96)
	return mulDiv(amount0, intermediate, new(big.Int).Sub(sqrtBX96, sqrtAX96))
}

// LiquidityForAmount1 computes the liquidity a given amount1 can back
// over [sqrtA, sqrtB]: amount1 * Q96 / (sqrtB - sqrtA).
func LiquidityForAmount1(sqrtAX96, sqrtBX96, amount1 *big.Int) *big.Int {
	if sqrtAX96.Cmp(sqrtBX96) > 0 {
		sqrtAX96, sqrtBX96 = sqrtBX96, sqrtAX96
	}
	return mulDiv(amount1, Q96, new(big.Int).Sub(sqrtBX96, sqrtAX96))
}

// LiquidityForAmounts computes position liquidity from both token
// amounts given the current price and a range. Three regimes:
// below range the position is all currency0, above range all currency1,
// and inside the range the minimum of the two single-sided liquidities
// wins - never promise liquidity the caller cannot fully back.
func LiquidityForAmounts(sqrtPX96, sqrtAX96, sqrtBX96, amount0, amount1 *big.Int) *big.Int {
	if sqrtAX96.Cmp(sqrtBX96) > 0 {
		sqrtAX96, sqrtBX96 = sqrtBX96, sqrtAX96
	}

	switch {
	case sqrtPX96.Cmp(sqrtAX96) <= 0:
		return LiquidityForAmount0(sqrtAX96, sqrtBX96, amount0)
	case sqrtPX96.Cmp(sqrtBX96) < 0:
		liquidity0 := LiquidityForAmount0(sqrtPX96, sqrtBX96, amount0)
		liquidity1 := LiquidityForAmount1(sqrtAX96, sqrtPX96, amount1)
		if liquidity0.Cmp(liquidity1) < 0 {
			return liquidity0
		}
		return liquidity1
	default:
		return LiquidityForAmount1(sqrtAX96, sqrtBX96, amount1)
	}
}

// Amount0ForLiquidity returns the currency0 amount backing liquidity
// over [sqrtA, sqrtB].
func Amount0ForLiquidity(sqrtAX96, sqrtBX96, liquidity *big.Int) *big.Int {
	if sqrtAX96.Cmp(sqrtBX96) > 0 {
		sqrtAX96, sqrtBX96 = sqrtBX96, sqrtAX96
	}
	if sqrtAX96.Sign() == 0 {
		return new(big.Int)
	}
	numerator := new(big.Int).Lsh(liquidity, 96)
	diff := new(big.Int).Sub(sqrtBX96, sqrtAX96)
	return new(big.Int).Div(mulDiv(numerator, diff, sqrtBX96), sqrtAX96)
}

// Amount1ForLiquidity returns the currency1 amount backing liquidity
// over [sqrtA, sqrtB].
func Amount1ForLiquidity(sqrtAX96, sqrtBX96, liquidity *big.Int) *big.Int {
	if sqrtAX96.Cmp(sqrtBX96) > 0 {
		sqrtAX96, sqrtBX96 = sqrtBX96, sqrtAX96
	}
	return mulDiv(liquidity, new(big.Int).Sub(sqrtBX96, sqrtAX96), Q96)
}

// AmountsForLiquidity is the inverse of LiquidityForAmounts, with the
// same three regimes.
func AmountsForLiquidity(sqrtPX96, sqrtAX96, sqrtBX96, liquidity *big.Int) (amount0, amount1 *big.Int) {
	if sqrtAX96.Cmp(sqrtBX96) > 0 {
		sqrtAX96, sqrtBX96 = sqrtBX96, sqrtAX96
	}

	amount0, amount1 = new(big.Int), new(big.Int)
	switch {
	case sqrtPX96.Cmp(sqrtAX96) <= 0:
		amount0 = Amount0ForLiquidity(sqrtAX96, sqrtBX96, liquidity)
	case sqrtPX96.Cmp(sqrtBX96) < 0:
		amount0 = Amount0ForLiquidity(sqrtPX96, sqrtBX96, liquidity)
		amount1 = Amount1ForLiquidity(sqrtAX96, sqrtPX96, liquidity)
	default:
		amount1 = Amount1ForLiquidity(sqrtAX96, sqrtBX96, liquidity)
	}
	return amount0, amount1
}

// PositionValue is a display-only projection of a position's holdings.
type PositionValue struct {
	Amount0          decimal.Decimal
	Amount1          decimal.Decimal
	TotalInCurrency1 decimal.Decimal
}

// EstimatePositionValue decorates AmountsForLiquidity with
// decimal-adjusted totals for display. It is a read-only projection and
// is never used for transaction construction.
func EstimatePositionValue(sqrtPX96 *big.Int, tickLower, tickUpper int32, liquidity *big.Int, decimals0, decimals1 uint8) PositionValue {
	sqrtA := TickToSqrtPrice(tickLower)
	sqrtB := TickToSqrtPrice(tickUpper)
	raw0, raw1 := AmountsForLiquidity(sqrtPX96, sqrtA, sqrtB, liquidity)

	amount0 := decimal.NewFromBigInt(raw0, -int32(decimals0))
	amount1 := decimal.NewFromBigInt(raw1, -int32(decimals1))

	price := decimal.NewFromFloat(SqrtPriceToPrice(sqrtPX96, decimals0, decimals1))
	total := amount0.Mul(price).Add(amount1)

	return PositionValue{
		Amount0:          amount0,
		Amount1:          amount1,
		TotalInCurrency1: total,
	}
}

// PoolSharePercent returns the position's share of total pool liquidity
// as a percentage. Zero total liquidity yields zero.
func PoolSharePercent(positionLiquidity, totalLiquidity *big.Int) decimal.Decimal {
	if totalLiquidity == nil || totalLiquidity.Sign() == 0 {
		return decimal.Zero
	}
	position := decimal.NewFromBigInt(positionLiquidity, 0)
	total := decimal.NewFromBigInt(totalLiquidity, 0)
	return position.Div(total).Mul(decimal.NewFromInt(100))
}
