package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/fd1az/dexkit/internal/apperror"
)

// BpsDenominator is the basis-point base: 10000 bps = 100%.
const BpsDenominator = 10_000

// ValidateBps rejects slippage tolerances outside [0, 10000].
func ValidateBps(bps int64) error {
	if bps < 0 || bps > BpsDenominator {
		return apperror.Validation(apperror.CodeInvalidBps, fmt.Sprintf("bps out of range: %d", bps))
	}
	return nil
}

// MinAmountAfterSlippage computes floor(desired * (10000-bps) / 10000),
// the least amount the caller will accept for a desired outflow or quote.
func MinAmountAfterSlippage(desired *big.Int, bps int64) *big.Int {
	if desired == nil || desired.Sign() <= 0 {
		return new(big.Int)
	}
	n := new(big.Int).Mul(desired, big.NewInt(BpsDenominator-bps))
	return n.Quo(n, big.NewInt(BpsDenominator))
}

// MaxAmountAfterSlippage computes ceil(desired * (10000+bps) / 10000),
// the most the caller is willing to pay. Rounding up keeps the bound on
// the caller's side of the tolerance.
func MaxAmountAfterSlippage(desired *big.Int, bps int64) *big.Int {
	if desired == nil || desired.Sign() <= 0 {
		return new(big.Int)
	}
	n := new(big.Int).Mul(desired, big.NewInt(BpsDenominator+bps))
	d := big.NewInt(BpsDenominator)
	r := new(big.Int)
	q, _ := n.QuoRem(n, d, r)
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// DeadlineFrom converts an absolute wall-clock deadline into the unix
// seconds value contracts expect.
func DeadlineFrom(now time.Time, window time.Duration) *big.Int {
	return big.NewInt(now.Add(window).Unix())
}
