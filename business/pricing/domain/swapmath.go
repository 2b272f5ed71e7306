package domain

import "math/big"

// Single-step sqrt-price projection used by the concentrated-liquidity
// quotes. Rounding directions match the reference pool math: the price
// moves conservatively against the trader.

// mulDivRoundingUp computes ceil(a * b / denominator).
func mulDivRoundingUp(a, b, denominator *big.Int) *big.Int {
	if denominator == nil || denominator.Sign() == 0 {
		return new(big.Int)
	}
	product := new(big.Int).Mul(a, b)
	quotient, remainder := new(big.Int).QuoRem(product, denominator, new(big.Int))
	if remainder.Sign() > 0 {
		quotient.Add(quotient, big.NewInt(1))
	}
	return quotient
}

// nextSqrtPriceFromAmount0In returns the sqrt price after amount0 is
// added to the pool: liquidity*Q96*sqrtP / (liquidity*Q96 + amount*sqrtP),
// rounded up.
func nextSqrtPriceFromAmount0In(sqrtPX96, liquidity, amount *big.Int) *big.Int {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPX96)
	}
	numerator := new(big.Int).Lsh(liquidity, 96)
	denominator := new(big.Int).Add(numerator, new(big.Int).Mul(amount, sqrtPX96))
	return mulDivRoundingUp(numerator, sqrtPX96, denominator)
}

// nextSqrtPriceFromAmount1In returns the sqrt price after amount1 is
// added to the pool: sqrtP + amount*Q96/liquidity, rounded down.
func nextSqrtPriceFromAmount1In(sqrtPX96, liquidity, amount *big.Int) *big.Int {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPX96)
	}
	quotient := new(big.Int).Lsh(amount, 96)
	quotient.Div(quotient, liquidity)
	return new(big.Int).Add(sqrtPX96, quotient)
}

// amount0Delta returns the currency0 owed over [sqrtA, sqrtB] for the
// given liquidity, rounded down.
func amount0Delta(sqrtAX96, sqrtBX96, liquidity *big.Int) *big.Int {
	return Amount0ForLiquidity(sqrtAX96, sqrtBX96, liquidity)
}

// amount1Delta returns the currency1 owed over [sqrtA, sqrtB] for the
// given liquidity, rounded down.
func amount1Delta(sqrtAX96, sqrtBX96, liquidity *big.Int) *big.Int {
	return Amount1ForLiquidity(sqrtAX96, sqrtBX96, liquidity)
}
