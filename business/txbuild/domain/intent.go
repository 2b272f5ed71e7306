package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	pricing "github.com/fd1az/dexkit/business/pricing/domain"
)

// CreatePoolIntent asks for a pool to be created (if absent) and seeded
// with initial liquidity. TokenA/TokenB and their amounts are given in
// the caller's order; the builder canonicalizes them before encoding,
// so amounts always travel with the token they were declared for.
type CreatePoolIntent struct {
	Version pricing.Version
	TokenA  common.Address
	TokenB  common.Address
	AmountA *big.Int
	AmountB *big.Int

	// Fee is the static tier in ppm, or carries the dynamic-fee flag on
	// v4. TickSpacing zero means derive it from the fee tier.
	Fee         uint32
	TickSpacing int32
	Hooks       common.Address

	// SqrtPriceX96 is the initial pool price (Q64.96). Required for v3
	// and v4 initialization; ignored for v2, where the deposit ratio
	// sets the price.
	SqrtPriceX96 *big.Int

	// Ticks bounds the minted position on v3/v4. Zero value means full
	// range for the pool's spacing.
	Ticks pricing.TickRange

	// Payer funds the deposit; approvals are checked against it.
	Payer       common.Address
	Recipient   common.Address
	SlippageBps int64
}

// PositionState is the caller-supplied snapshot of an existing position
// and its pool, needed to turn liquidity deltas into amount bounds.
type PositionState struct {
	Pool         pricing.PoolKey
	Liquidity    *big.Int
	SqrtPriceX96 *big.Int
	Ticks        pricing.TickRange
}

// IncreaseLiquidityIntent adds funds to an existing position.
type IncreaseLiquidityIntent struct {
	Position PositionIdentifier
	State    PositionState
	Amount0  *big.Int
	Amount1  *big.Int

	Payer       common.Address
	SlippageBps int64
}

// DecreaseLiquidityIntent removes a fraction of an existing position,
// expressed in basis points of its current liquidity (10000 = all).
type DecreaseLiquidityIntent struct {
	Position   PositionIdentifier
	State      PositionState
	PercentBps int64

	Recipient   common.Address
	SlippageBps int64

	// Burn additionally destroys the position NFT. Only meaningful when
	// PercentBps is 10000.
	Burn bool
}

// CollectFeesIntent claims accrued fees without touching principal.
type CollectFeesIntent struct {
	Position  PositionIdentifier
	State     PositionState
	Recipient common.Address
}

// SwapIntent asks for an exact-input swap through a single pool.
type SwapIntent struct {
	Version  pricing.Version
	TokenIn  common.Address
	TokenOut common.Address
	AmountIn *big.Int

	Fee         uint32
	TickSpacing int32
	Hooks       common.Address

	// QuotedOut is the expected output from a prior quote; the minimum
	// acceptable amount is derived from it and SlippageBps. A nil
	// QuotedOut yields a zero minimum. SlippageBps of zero selects the
	// configured default tolerance rather than zero slippage.
	QuotedOut   *big.Int
	SlippageBps int64

	Payer     common.Address
	Recipient common.Address
}

// Allowances maps token address to the caller's on-record allowance for
// the relevant spender. The builder prepends an approval step for any
// token whose declared allowance falls short of the required amount. A
// nil map disables approval insertion.
type Allowances map[common.Address]*big.Int

// Covers reports whether the declared allowance for token covers amount.
// Unknown tokens are treated as having zero allowance.
func (a Allowances) Covers(token common.Address, amount *big.Int) bool {
	if amount == nil || amount.Sign() <= 0 {
		return true
	}
	have, ok := a[token]
	if !ok || have == nil {
		return false
	}
	return have.Cmp(amount) >= 0
}
