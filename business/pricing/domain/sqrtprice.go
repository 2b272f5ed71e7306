package domain

import (
	"math"
	"math/big"
)

// Q96 is 2^96, the fixed-point scale of sqrtPriceX96 values.
var Q96 = new(big.Int).Lsh(big.NewInt(1), 96)

// q96Float is Q96 as a float for conversion boundaries.
var q96Float = new(big.Float).SetInt(Q96)

// tickBase is the per-tick price ratio.
const tickBase = 1.0001

// Precision note: the price<->tick conversions below go through IEEE
// floating point (log/sqrt), which is lossy near tick boundaries.
// TickToSqrtPrice(SqrtPriceToTick(x)) is NOT guaranteed to round-trip to
// x; callers must tolerate a one-tick drift. Amount math never uses
// these - it stays on the integer sqrtPriceX96 representation.

// SqrtPriceToRawPrice converts a Q64.96 sqrt price into the raw
// (undecimalized) price of currency1 per unit of currency0.
// Returns 0 for a zero/negative (uninitialized) sqrt price.
func SqrtPriceToRawPrice(sqrtPriceX96 *big.Int) float64 {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return 0
	}
	ratio, _ := new(big.Float).Quo(new(big.Float).SetInt(sqrtPriceX96), q96Float).Float64()
	return ratio * ratio
}

// SqrtPriceToPrice converts a Q64.96 sqrt price into a human-readable
// price, adjusting for the two tokens' decimals.
func SqrtPriceToPrice(sqrtPriceX96 *big.Int, decimals0, decimals1 uint8) float64 {
	raw := SqrtPriceToRawPrice(sqrtPriceX96)
	if raw == 0 {
		return 0
	}
	return raw * math.Pow(10, float64(int(decimals0))-float64(int(decimals1)))
}

// PriceToSqrtPrice converts a raw price into floor(sqrt(price) * 2^96).
// Non-positive prices yield 0.
func PriceToSqrtPrice(price float64) *big.Int {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return new(big.Int)
	}
	sqrt := big.NewFloat(math.Sqrt(price))
	out, _ := new(big.Float).Mul(sqrt, q96Float).Int(nil)
	return out
}

// SqrtPriceToTick returns floor(log(price) / log(1.0001)) for the raw
// price encoded by sqrtPriceX96, clamped to the tick bounds. A
// zero/negative sqrt price yields tick 0.
func SqrtPriceToTick(sqrtPriceX96 *big.Int) int32 {
	raw := SqrtPriceToRawPrice(sqrtPriceX96)
	if raw <= 0 {
		return 0
	}
	tick := math.Floor(math.Log(raw) / math.Log(tickBase))
	return clampTick(int32(tick))
}

// TickToSqrtPrice returns floor(sqrt(1.0001^tick) * 2^96).
func TickToSqrtPrice(tick int32) *big.Int {
	sqrtRatio := math.Pow(tickBase, float64(tick)/2)
	out, _ := new(big.Float).Mul(big.NewFloat(sqrtRatio), q96Float).Int(nil)
	return out
}
