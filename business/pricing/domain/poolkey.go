package domain

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NativeCurrency is the sentinel address for the chain's native coin.
// Being the zero address it sorts before every ERC20 address, which is
// exactly the canonical ordering the protocol expects.
var NativeCurrency = common.Address{}

// DynamicFeeFlag is the reserved fee value marking a dynamic-fee pool.
const DynamicFeeFlag uint32 = 0x800000

// PoolKey uniquely identifies a pool instance. Invariant: Currency0 <
// Currency1 under byte comparison. Construct via NewPoolKey; a PoolKey is
// immutable, any parameter change means a different pool.
type PoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         uint32
	TickSpacing int32
	Hooks       common.Address
}

// SortCurrencies returns the pair in canonical order. Address comparison
// is on raw bytes, which is case-insensitive by construction (hex case is
// a display concern only). The native-currency sentinel sorts first.
func SortCurrencies(a, b common.Address) (common.Address, common.Address) {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		return b, a
	}
	return a, b
}

// NewPoolKey builds a canonical PoolKey. The caller's token order is
// advisory: currencies are always re-sorted here.
func NewPoolKey(tokenA, tokenB common.Address, fee uint32, tickSpacing int32, hooks common.Address) PoolKey {
	c0, c1 := SortCurrencies(tokenA, tokenB)
	return PoolKey{
		Currency0:   c0,
		Currency1:   c1,
		Fee:         fee,
		TickSpacing: tickSpacing,
		Hooks:       hooks,
	}
}

// HasDynamicFee reports whether the key carries the dynamic-fee sentinel.
func (k PoolKey) HasDynamicFee() bool {
	return k.Fee == DynamicFeeFlag
}

// poolKeyArgs is the ABI tuple (address,address,uint24,int24,address)
// the on-chain pool identifier is derived from.
var poolKeyArgs = mustPoolKeyArgs()

func mustPoolKeyArgs() abi.Arguments {
	addressT, err := abi.NewType("address", "", nil)
	if err != nil {
		panic(fmt.Sprintf("poolkey abi: %v", err))
	}
	uint24T, err := abi.NewType("uint24", "", nil)
	if err != nil {
		panic(fmt.Sprintf("poolkey abi: %v", err))
	}
	int24T, err := abi.NewType("int24", "", nil)
	if err != nil {
		panic(fmt.Sprintf("poolkey abi: %v", err))
	}
	return abi.Arguments{
		{Type: addressT},
		{Type: addressT},
		{Type: uint24T},
		{Type: int24T},
		{Type: addressT},
	}
}

// ID computes the deterministic pool identifier: the keccak256 hash of
// the ABI-encoded key tuple. Collaborators use it as an opaque lookup
// key when probing on-chain pool existence.
func (k PoolKey) ID() (common.Hash, error) {
	encoded, err := poolKeyArgs.Pack(
		k.Currency0,
		k.Currency1,
		new(big.Int).SetUint64(uint64(k.Fee)),
		big.NewInt(int64(k.TickSpacing)),
		k.Hooks,
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack pool key: %w", err)
	}
	return crypto.Keccak256Hash(encoded), nil
}

// String returns a short human-readable form for logs.
func (k PoolKey) String() string {
	return fmt.Sprintf("%s/%s fee=%d spacing=%d", k.Currency0.Hex(), k.Currency1.Hex(), k.Fee, k.TickSpacing)
}
