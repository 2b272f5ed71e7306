package ethabi

import (
	"math/big"

	"github.com/fd1az/dexkit/internal/apperror"

	pricing "github.com/fd1az/dexkit/business/pricing/domain"
)

// v4PositionManagerABIJSON covers pool initialization and the batched
// liquidity entrypoint. All liquidity changes flow through
// modifyLiquidities as an encoded action plan.
const v4PositionManagerABIJSON = `[
	{
		"inputs": [
			{
				"components": [
					{"internalType": "Currency", "name": "currency0", "type": "address"},
					{"internalType": "Currency", "name": "currency1", "type": "address"},
					{"internalType": "uint24", "name": "fee", "type": "uint24"},
					{"internalType": "int24", "name": "tickSpacing", "type": "int24"},
					{"internalType": "contract IHooks", "name": "hooks", "type": "address"}
				],
				"internalType": "struct PoolKey",
				"name": "key",
				"type": "tuple"
			},
			{"internalType": "uint160", "name": "sqrtPriceX96", "type": "uint160"}
		],
		"name": "initializePool",
		"outputs": [{"internalType": "int24", "name": "", "type": "int24"}],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "bytes", "name": "unlockData", "type": "bytes"},
			{"internalType": "uint256", "name": "deadline", "type": "uint256"}
		],
		"name": "modifyLiquidities",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	}
]`

// universalRouterABIJSON covers the command dispatcher; swaps travel as
// a V4_SWAP command whose input is an encoded action plan.
const universalRouterABIJSON = `[
	{
		"inputs": [
			{"internalType": "bytes", "name": "commands", "type": "bytes"},
			{"internalType": "bytes[]", "name": "inputs", "type": "bytes[]"},
			{"internalType": "uint256", "name": "deadline", "type": "uint256"}
		],
		"name": "execute",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	}
]`

// CommandV4Swap is the universal-router command byte for a v4 swap.
const CommandV4Swap byte = 0x10

var (
	v4PositionManagerABI = mustABI("v4 position manager", v4PositionManagerABIJSON)
	universalRouterABI   = mustABI("universal router", universalRouterABIJSON)
)

// PackV4InitializePool encodes initializePool(key, sqrtPriceX96).
func PackV4InitializePool(key pricing.PoolKey, sqrtPriceX96 *big.Int) ([]byte, error) {
	if err := checkFee("initializePool.fee", key.Fee); err != nil {
		return nil, err
	}
	if err := checkTick("initializePool.tickSpacing", key.TickSpacing); err != nil {
		return nil, err
	}
	if err := checkUint("initializePool.sqrtPriceX96", sqrtPriceX96, 160); err != nil {
		return nil, err
	}

	data, err := v4PositionManagerABI.Pack("initializePool", toABIPoolKey(key), sqrtPriceX96)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack initializePool", err)
	}
	return data, nil
}

// PackV4ModifyLiquidities encodes modifyLiquidities(unlockData, deadline)
// from an action plan.
func PackV4ModifyLiquidities(plan *Plan, deadline *big.Int) ([]byte, error) {
	if err := checkUint("modifyLiquidities.deadline", deadline, 256); err != nil {
		return nil, err
	}
	unlockData, err := plan.Encode()
	if err != nil {
		return nil, err
	}
	data, err := v4PositionManagerABI.Pack("modifyLiquidities", unlockData, deadline)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack modifyLiquidities", err)
	}
	return data, nil
}

// PackUniversalRouterV4Swap encodes execute with a single V4_SWAP
// command carrying the plan.
func PackUniversalRouterV4Swap(plan *Plan, deadline *big.Int) ([]byte, error) {
	if err := checkUint("execute.deadline", deadline, 256); err != nil {
		return nil, err
	}
	input, err := plan.Encode()
	if err != nil {
		return nil, err
	}
	data, err := universalRouterABI.Pack("execute", []byte{CommandV4Swap}, [][]byte{input}, deadline)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack execute", err)
	}
	return data, nil
}
