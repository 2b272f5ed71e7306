// Package app contains application services and port definitions for the pricing context.
package app

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/business/pricing/domain"
	"github.com/fd1az/dexkit/internal/asset"
)

// SnapshotProvider supplies pool-state snapshots to the quote engine.
// The engine itself never performs I/O: quotes are pure functions of the
// snapshot a provider resolved beforehand.
type SnapshotProvider interface {
	// FetchV2State reads constant-product reserves for a pair contract.
	FetchV2State(ctx context.Context, pair common.Address) (domain.V2PoolState, error)

	// FetchV3State reads slot0 and in-range liquidity for a V3 pool.
	FetchV3State(ctx context.Context, pool common.Address) (domain.ConcentratedPoolState, error)

	// FetchV4State reads sqrt price and liquidity for a V4 pool by its
	// canonical identifier.
	FetchV4State(ctx context.Context, poolID common.Hash) (domain.ConcentratedPoolState, error)

	// TokenMetadata resolves decimals and symbol for an ERC20 token.
	TokenMetadata(ctx context.Context, token common.Address) (*asset.Asset, error)
}

// AllowanceReader reports the on-record ERC20 allowance an owner has
// granted a spender. Used by transaction building to decide whether an
// approval step must be prepended.
type AllowanceReader interface {
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
}
