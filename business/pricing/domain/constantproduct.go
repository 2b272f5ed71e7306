package domain

import (
	"math/big"

	"github.com/fd1az/dexkit/internal/apperror"
)

// V2Fee is the constant-product swap fee expressed as a rational
// multiplier on the input amount. The canonical 0.3% fee is 997/1000,
// but deployments differ, so the factor is a parameter, never a literal
// at call sites.
type V2Fee struct {
	Numerator   int64
	Denominator int64
}

// DefaultV2Fee is the canonical 0.3% constant-product fee.
var DefaultV2Fee = V2Fee{Numerator: 997, Denominator: 1000}

func (f V2Fee) valid() bool {
	return f.Denominator > 0 && f.Numerator > 0 && f.Numerator <= f.Denominator
}

// ConstantProductAmountOut computes
// floor(amountIn*num*reserveOut / (reserveIn*den + amountIn*num)).
// Zero amounts or reserves yield zero.
func ConstantProductAmountOut(amountIn, reserveIn, reserveOut *big.Int, fee V2Fee) *big.Int {
	if !allPositive(amountIn, reserveIn, reserveOut) || !fee.valid() {
		return new(big.Int)
	}

	amountInWithFee := new(big.Int).Mul(amountIn, big.NewInt(fee.Numerator))
	numerator := new(big.Int).Mul(amountInWithFee, reserveOut)
	denominator := new(big.Int).Mul(reserveIn, big.NewInt(fee.Denominator))
	denominator.Add(denominator, amountInWithFee)

	return numerator.Div(numerator, denominator)
}

// ConstantProductAmountIn computes the exact inverse, rounded up (+1) so
// the pool never under-receives. Draining the reserve
// (amountOut >= reserveOut) is not satisfiable at any input size.
func ConstantProductAmountIn(amountOut, reserveIn, reserveOut *big.Int, fee V2Fee) (*big.Int, error) {
	if !allPositive(amountOut, reserveIn, reserveOut) || !fee.valid() {
		return new(big.Int), nil
	}
	if amountOut.Cmp(reserveOut) >= 0 {
		return nil, apperror.New(apperror.CodeInsufficientLiquidity,
			apperror.WithContext("requested output meets or exceeds reserve"))
	}

	numerator := new(big.Int).Mul(reserveIn, amountOut)
	numerator.Mul(numerator, big.NewInt(fee.Denominator))
	denominator := new(big.Int).Sub(reserveOut, amountOut)
	denominator.Mul(denominator, big.NewInt(fee.Numerator))

	amountIn := numerator.Div(numerator, denominator)
	return amountIn.Add(amountIn, big.NewInt(1)), nil
}

func allPositive(values ...*big.Int) bool {
	for _, v := range values {
		if v == nil || v.Sign() <= 0 {
			return false
		}
	}
	return true
}
