package ethabi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/internal/apperror"
)

// v3PositionManagerABIJSON covers the nonfungible position manager
// calls the builder emits. Liquidity amounts ride uint128; the encoder
// rejects anything wider.
const v3PositionManagerABIJSON = `[
	{
		"inputs": [
			{"internalType": "address", "name": "token0", "type": "address"},
			{"internalType": "address", "name": "token1", "type": "address"},
			{"internalType": "uint24", "name": "fee", "type": "uint24"},
			{"internalType": "uint160", "name": "sqrtPriceX96", "type": "uint160"}
		],
		"name": "createAndInitializePoolIfNecessary",
		"outputs": [{"internalType": "address", "name": "pool", "type": "address"}],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [
			{
				"components": [
					{"internalType": "address", "name": "token0", "type": "address"},
					{"internalType": "address", "name": "token1", "type": "address"},
					{"internalType": "uint24", "name": "fee", "type": "uint24"},
					{"internalType": "int24", "name": "tickLower", "type": "int24"},
					{"internalType": "int24", "name": "tickUpper", "type": "int24"},
					{"internalType": "uint256", "name": "amount0Desired", "type": "uint256"},
					{"internalType": "uint256", "name": "amount1Desired", "type": "uint256"},
					{"internalType": "uint256", "name": "amount0Min", "type": "uint256"},
					{"internalType": "uint256", "name": "amount1Min", "type": "uint256"},
					{"internalType": "address", "name": "recipient", "type": "address"},
					{"internalType": "uint256", "name": "deadline", "type": "uint256"}
				],
				"internalType": "struct INonfungiblePositionManager.MintParams",
				"name": "params",
				"type": "tuple"
			}
		],
		"name": "mint",
		"outputs": [
			{"internalType": "uint256", "name": "tokenId", "type": "uint256"},
			{"internalType": "uint128", "name": "liquidity", "type": "uint128"},
			{"internalType": "uint256", "name": "amount0", "type": "uint256"},
			{"internalType": "uint256", "name": "amount1", "type": "uint256"}
		],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [
			{
				"components": [
					{"internalType": "uint256", "name": "tokenId", "type": "uint256"},
					{"internalType": "uint256", "name": "amount0Desired", "type": "uint256"},
					{"internalType": "uint256", "name": "amount1Desired", "type": "uint256"},
					{"internalType": "uint256", "name": "amount0Min", "type": "uint256"},
					{"internalType": "uint256", "name": "amount1Min", "type": "uint256"},
					{"internalType": "uint256", "name": "deadline", "type": "uint256"}
				],
				"internalType": "struct INonfungiblePositionManager.IncreaseLiquidityParams",
				"name": "params",
				"type": "tuple"
			}
		],
		"name": "increaseLiquidity",
		"outputs": [
			{"internalType": "uint128", "name": "liquidity", "type": "uint128"},
			{"internalType": "uint256", "name": "amount0", "type": "uint256"},
			{"internalType": "uint256", "name": "amount1", "type": "uint256"}
		],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [
			{
				"components": [
					{"internalType": "uint256", "name": "tokenId", "type": "uint256"},
					{"internalType": "uint128", "name": "liquidity", "type": "uint128"},
					{"internalType": "uint256", "name": "amount0Min", "type": "uint256"},
					{"internalType": "uint256", "name": "amount1Min", "type": "uint256"},
					{"internalType": "uint256", "name": "deadline", "type": "uint256"}
				],
				"internalType": "struct INonfungiblePositionManager.DecreaseLiquidityParams",
				"name": "params",
				"type": "tuple"
			}
		],
		"name": "decreaseLiquidity",
		"outputs": [
			{"internalType": "uint256", "name": "amount0", "type": "uint256"},
			{"internalType": "uint256", "name": "amount1", "type": "uint256"}
		],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [
			{
				"components": [
					{"internalType": "uint256", "name": "tokenId", "type": "uint256"},
					{"internalType": "address", "name": "recipient", "type": "address"},
					{"internalType": "uint128", "name": "amount0Max", "type": "uint128"},
					{"internalType": "uint128", "name": "amount1Max", "type": "uint128"}
				],
				"internalType": "struct INonfungiblePositionManager.CollectParams",
				"name": "params",
				"type": "tuple"
			}
		],
		"name": "collect",
		"outputs": [
			{"internalType": "uint256", "name": "amount0", "type": "uint256"},
			{"internalType": "uint256", "name": "amount1", "type": "uint256"}
		],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "uint256", "name": "tokenId", "type": "uint256"}],
		"name": "burn",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	}
]`

// v3SwapRouterABIJSON covers single-pool exact-input swaps.
const v3SwapRouterABIJSON = `[
	{
		"inputs": [
			{
				"components": [
					{"internalType": "address", "name": "tokenIn", "type": "address"},
					{"internalType": "address", "name": "tokenOut", "type": "address"},
					{"internalType": "uint24", "name": "fee", "type": "uint24"},
					{"internalType": "address", "name": "recipient", "type": "address"},
					{"internalType": "uint256", "name": "deadline", "type": "uint256"},
					{"internalType": "uint256", "name": "amountIn", "type": "uint256"},
					{"internalType": "uint256", "name": "amountOutMinimum", "type": "uint256"},
					{"internalType": "uint160", "name": "sqrtPriceLimitX96", "type": "uint160"}
				],
				"internalType": "struct ISwapRouter.ExactInputSingleParams",
				"name": "params",
				"type": "tuple"
			}
		],
		"name": "exactInputSingle",
		"outputs": [{"internalType": "uint256", "name": "amountOut", "type": "uint256"}],
		"stateMutability": "payable",
		"type": "function"
	}
]`

var (
	v3PositionManagerABI = mustABI("v3 position manager", v3PositionManagerABIJSON)
	v3SwapRouterABI      = mustABI("v3 swap router", v3SwapRouterABIJSON)
)

// V3MintParams mirrors the position manager's MintParams tuple.
type V3MintParams struct {
	Token0         common.Address
	Token1         common.Address
	Fee            *big.Int
	TickLower      *big.Int
	TickUpper      *big.Int
	Amount0Desired *big.Int
	Amount1Desired *big.Int
	Amount0Min     *big.Int
	Amount1Min     *big.Int
	Recipient      common.Address
	Deadline       *big.Int
}

// V3IncreaseParams mirrors IncreaseLiquidityParams.
type V3IncreaseParams struct {
	TokenId        *big.Int
	Amount0Desired *big.Int
	Amount1Desired *big.Int
	Amount0Min     *big.Int
	Amount1Min     *big.Int
	Deadline       *big.Int
}

// V3DecreaseParams mirrors DecreaseLiquidityParams.
type V3DecreaseParams struct {
	TokenId    *big.Int
	Liquidity  *big.Int
	Amount0Min *big.Int
	Amount1Min *big.Int
	Deadline   *big.Int
}

// V3CollectParams mirrors CollectParams.
type V3CollectParams struct {
	TokenId    *big.Int
	Recipient  common.Address
	Amount0Max *big.Int
	Amount1Max *big.Int
}

// V3SwapParams mirrors ExactInputSingleParams.
type V3SwapParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	Deadline          *big.Int
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

// PackV3CreatePool encodes createAndInitializePoolIfNecessary. The call
// is idempotent on the pool contract, so creation always precedes mint
// without a pre-existence check.
func PackV3CreatePool(token0, token1 common.Address, fee uint32, sqrtPriceX96 *big.Int) ([]byte, error) {
	if err := checkFee("createPool.fee", fee); err != nil {
		return nil, err
	}
	if err := checkUint("createPool.sqrtPriceX96", sqrtPriceX96, 160); err != nil {
		return nil, err
	}
	data, err := v3PositionManagerABI.Pack("createAndInitializePoolIfNecessary",
		token0, token1, big.NewInt(int64(fee)), sqrtPriceX96)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack createAndInitializePoolIfNecessary", err)
	}
	return data, nil
}

// PackV3Mint encodes mint(params).
func PackV3Mint(p V3MintParams) ([]byte, error) {
	if err := checkUint("mint.fee", p.Fee, 24); err != nil {
		return nil, err
	}
	if p.TickLower == nil || p.TickUpper == nil {
		return nil, apperror.Encoding("mint.ticks", "<nil>", 24)
	}
	if err := checkTick("mint.tickLower", int32(p.TickLower.Int64())); err != nil {
		return nil, err
	}
	if err := checkTick("mint.tickUpper", int32(p.TickUpper.Int64())); err != nil {
		return nil, err
	}
	data, err := v3PositionManagerABI.Pack("mint", p)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack mint", err)
	}
	return data, nil
}

// PackV3IncreaseLiquidity encodes increaseLiquidity(params).
func PackV3IncreaseLiquidity(p V3IncreaseParams) ([]byte, error) {
	data, err := v3PositionManagerABI.Pack("increaseLiquidity", p)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack increaseLiquidity", err)
	}
	return data, nil
}

// PackV3DecreaseLiquidity encodes decreaseLiquidity(params).
func PackV3DecreaseLiquidity(p V3DecreaseParams) ([]byte, error) {
	if err := checkUint("decreaseLiquidity.liquidity", p.Liquidity, 128); err != nil {
		return nil, err
	}
	data, err := v3PositionManagerABI.Pack("decreaseLiquidity", p)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack decreaseLiquidity", err)
	}
	return data, nil
}

// PackV3Collect encodes collect(params).
func PackV3Collect(p V3CollectParams) ([]byte, error) {
	if err := checkUint("collect.amount0Max", p.Amount0Max, 128); err != nil {
		return nil, err
	}
	if err := checkUint("collect.amount1Max", p.Amount1Max, 128); err != nil {
		return nil, err
	}
	data, err := v3PositionManagerABI.Pack("collect", p)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack collect", err)
	}
	return data, nil
}

// PackV3Burn encodes burn(tokenId).
func PackV3Burn(tokenID *big.Int) ([]byte, error) {
	if err := checkUint("burn.tokenId", tokenID, 256); err != nil {
		return nil, err
	}
	data, err := v3PositionManagerABI.Pack("burn", tokenID)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack burn", err)
	}
	return data, nil
}

// PackV3ExactInputSingle encodes exactInputSingle(params).
func PackV3ExactInputSingle(p V3SwapParams) ([]byte, error) {
	if err := checkUint("swap.fee", p.Fee, 24); err != nil {
		return nil, err
	}
	if err := checkUint("swap.amountIn", p.AmountIn, 256); err != nil {
		return nil, err
	}
	data, err := v3SwapRouterABI.Pack("exactInputSingle", p)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack exactInputSingle", err)
	}
	return data, nil
}
