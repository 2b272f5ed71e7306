package ethabi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/internal/apperror"

	pricing "github.com/fd1az/dexkit/business/pricing/domain"
)

// Position manager and router action opcodes. The action byte stream
// and the parameter blob list must stay index-aligned: action i is
// decoded against params[i].
const (
	ActionIncreaseLiquidity byte = 0x00
	ActionDecreaseLiquidity byte = 0x01
	ActionMintPosition      byte = 0x02
	ActionBurnPosition      byte = 0x03
	ActionSwapExactInSingle byte = 0x06
	ActionSettleAll         byte = 0x0c
	ActionSettlePair        byte = 0x0d
	ActionTakeAll           byte = 0x0f
	ActionTakePair          byte = 0x11
)

// abiPoolKey is the wire shape of a pool key tuple. Fee and tick
// spacing ride uint24/int24, which the ABI encoder takes as *big.Int.
type abiPoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         *big.Int
	TickSpacing *big.Int
	Hooks       common.Address
}

func toABIPoolKey(k pricing.PoolKey) abiPoolKey {
	return abiPoolKey{
		Currency0:   k.Currency0,
		Currency1:   k.Currency1,
		Fee:         big.NewInt(int64(k.Fee)),
		TickSpacing: big.NewInt(int64(k.TickSpacing)),
		Hooks:       k.Hooks,
	}
}

var poolKeyComponents = []abi.ArgumentMarshaling{
	{Name: "currency0", Type: "address"},
	{Name: "currency1", Type: "address"},
	{Name: "fee", Type: "uint24"},
	{Name: "tickSpacing", Type: "int24"},
	{Name: "hooks", Type: "address"},
}

var (
	typeAddress = mustType("address", nil)
	typeBytes   = mustType("bytes", nil)
	typeBytesN  = mustType("bytes[]", nil)
	typeInt24   = mustType("int24", nil)
	typeUint128 = mustType("uint128", nil)
	typeUint256 = mustType("uint256", nil)
	typePoolKey = mustType("tuple", poolKeyComponents)

	typeSwapExactInSingle = mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "poolKey", Type: "tuple", Components: poolKeyComponents},
		{Name: "zeroForOne", Type: "bool"},
		{Name: "amountIn", Type: "uint128"},
		{Name: "amountOutMinimum", Type: "uint128"},
		{Name: "hookData", Type: "bytes"},
	})
)

func args(types ...abi.Type) abi.Arguments {
	out := make(abi.Arguments, len(types))
	for i, t := range types {
		out[i] = abi.Argument{Type: t}
	}
	return out
}

var (
	mintPositionArgs = args(typePoolKey, typeInt24, typeInt24, typeUint256, typeUint128, typeUint128, typeAddress, typeBytes)
	liquidityArgs    = args(typeUint256, typeUint256, typeUint128, typeUint128, typeBytes)
	burnPositionArgs = args(typeUint256, typeUint128, typeUint128, typeBytes)
	swapSingleArgs   = args(typeSwapExactInSingle)
	settlePairArgs   = args(typeAddress, typeAddress)
	takePairArgs     = args(typeAddress, typeAddress, typeAddress)
	currencyAmtArgs  = args(typeAddress, typeUint256)
	unlockDataArgs   = args(typeBytes, typeBytesN)
)

// Plan accumulates an ordered action stream with its parameter blobs.
// The zero value is ready to use.
type Plan struct {
	actions []byte
	params  [][]byte
}

func (p *Plan) add(action byte, param []byte) {
	p.actions = append(p.actions, action)
	p.params = append(p.params, param)
}

// Len reports the number of queued actions.
func (p *Plan) Len() int { return len(p.actions) }

// Encode packs the plan into the (actions, params) blob that both
// modifyLiquidities and the router's V4_SWAP input expect.
func (p *Plan) Encode() ([]byte, error) {
	data, err := unlockDataArgs.Pack(p.actions, p.params)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack action plan", err)
	}
	return data, nil
}

// MintPosition queues a position mint. amount0Max/amount1Max bound what
// the pool may pull from the payer.
func (p *Plan) MintPosition(key pricing.PoolKey, ticks pricing.TickRange, liquidity, amount0Max, amount1Max *big.Int, owner common.Address, hookData []byte) error {
	if err := checkFee("mint.fee", key.Fee); err != nil {
		return err
	}
	if err := checkUint("mint.liquidity", liquidity, 256); err != nil {
		return err
	}
	if err := checkUint("mint.amount0Max", amount0Max, 128); err != nil {
		return err
	}
	if err := checkUint("mint.amount1Max", amount1Max, 128); err != nil {
		return err
	}

	param, err := mintPositionArgs.Pack(
		toABIPoolKey(key),
		big.NewInt(int64(ticks.Lower)), big.NewInt(int64(ticks.Upper)),
		liquidity, amount0Max, amount1Max,
		owner, ensureBytes(hookData),
	)
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack MINT_POSITION", err)
	}
	p.add(ActionMintPosition, param)
	return nil
}

// IncreaseLiquidity queues a liquidity add on an existing position.
func (p *Plan) IncreaseLiquidity(tokenID, liquidity, amount0Max, amount1Max *big.Int, hookData []byte) error {
	if err := checkUint("increase.amount0Max", amount0Max, 128); err != nil {
		return err
	}
	if err := checkUint("increase.amount1Max", amount1Max, 128); err != nil {
		return err
	}

	param, err := liquidityArgs.Pack(tokenID, liquidity, amount0Max, amount1Max, ensureBytes(hookData))
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack INCREASE_LIQUIDITY", err)
	}
	p.add(ActionIncreaseLiquidity, param)
	return nil
}

// DecreaseLiquidity queues a liquidity removal. A zero liquidity delta
// is valid and is how fee collection is expressed.
func (p *Plan) DecreaseLiquidity(tokenID, liquidity, amount0Min, amount1Min *big.Int, hookData []byte) error {
	if err := checkUint("decrease.liquidity", liquidity, 256); err != nil {
		return err
	}
	if err := checkUint("decrease.amount0Min", amount0Min, 128); err != nil {
		return err
	}
	if err := checkUint("decrease.amount1Min", amount1Min, 128); err != nil {
		return err
	}

	param, err := liquidityArgs.Pack(tokenID, liquidity, amount0Min, amount1Min, ensureBytes(hookData))
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack DECREASE_LIQUIDITY", err)
	}
	p.add(ActionDecreaseLiquidity, param)
	return nil
}

// BurnPosition queues destruction of the position NFT, releasing any
// remaining principal within the given minimums.
func (p *Plan) BurnPosition(tokenID, amount0Min, amount1Min *big.Int, hookData []byte) error {
	param, err := burnPositionArgs.Pack(tokenID, amount0Min, amount1Min, ensureBytes(hookData))
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack BURN_POSITION", err)
	}
	p.add(ActionBurnPosition, param)
	return nil
}

// SwapExactInSingle queues a single-pool exact-input swap.
func (p *Plan) SwapExactInSingle(key pricing.PoolKey, zeroForOne bool, amountIn, amountOutMinimum *big.Int, hookData []byte) error {
	if err := checkUint("swap.amountIn", amountIn, 128); err != nil {
		return err
	}
	if err := checkUint("swap.amountOutMinimum", amountOutMinimum, 128); err != nil {
		return err
	}

	param, err := swapSingleArgs.Pack(struct {
		PoolKey          abiPoolKey
		ZeroForOne       bool
		AmountIn         *big.Int
		AmountOutMinimum *big.Int
		HookData         []byte
	}{
		PoolKey:          toABIPoolKey(key),
		ZeroForOne:       zeroForOne,
		AmountIn:         amountIn,
		AmountOutMinimum: amountOutMinimum,
		HookData:         ensureBytes(hookData),
	})
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack SWAP_EXACT_IN_SINGLE", err)
	}
	p.add(ActionSwapExactInSingle, param)
	return nil
}

// SettlePair queues payment of both owed currencies, in pool order.
func (p *Plan) SettlePair(currency0, currency1 common.Address) error {
	param, err := settlePairArgs.Pack(currency0, currency1)
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack SETTLE_PAIR", err)
	}
	p.add(ActionSettlePair, param)
	return nil
}

// TakePair queues withdrawal of both owed currencies to recipient.
func (p *Plan) TakePair(currency0, currency1, recipient common.Address) error {
	param, err := takePairArgs.Pack(currency0, currency1, recipient)
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack TAKE_PAIR", err)
	}
	p.add(ActionTakePair, param)
	return nil
}

// SettleAll queues payment of everything owed in one currency, bounded
// by maxAmount.
func (p *Plan) SettleAll(currency common.Address, maxAmount *big.Int) error {
	if err := checkUint("settleAll.maxAmount", maxAmount, 256); err != nil {
		return err
	}
	param, err := currencyAmtArgs.Pack(currency, maxAmount)
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack SETTLE_ALL", err)
	}
	p.add(ActionSettleAll, param)
	return nil
}

// TakeAll queues withdrawal of everything owed in one currency, failing
// below minAmount.
func (p *Plan) TakeAll(currency common.Address, minAmount *big.Int) error {
	if err := checkUint("takeAll.minAmount", minAmount, 256); err != nil {
		return err
	}
	param, err := currencyAmtArgs.Pack(currency, minAmount)
	if err != nil {
		return apperror.Internal(apperror.CodeEncodingFailed, "pack TAKE_ALL", err)
	}
	p.add(ActionTakeAll, param)
	return nil
}

// ensureBytes normalizes nil hook data to an empty blob so decoders see
// a zero-length bytes field.
func ensureBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
