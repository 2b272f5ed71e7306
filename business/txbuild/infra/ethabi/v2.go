package ethabi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/internal/apperror"
)

// v2Router02ABIJSON covers the router calls the builder emits. The
// router creates the pair on first addLiquidity, so pool creation and
// the initial deposit are a single call.
const v2Router02ABIJSON = `[
	{
		"inputs": [
			{"internalType": "address", "name": "tokenA", "type": "address"},
			{"internalType": "address", "name": "tokenB", "type": "address"},
			{"internalType": "uint256", "name": "amountADesired", "type": "uint256"},
			{"internalType": "uint256", "name": "amountBDesired", "type": "uint256"},
			{"internalType": "uint256", "name": "amountAMin", "type": "uint256"},
			{"internalType": "uint256", "name": "amountBMin", "type": "uint256"},
			{"internalType": "address", "name": "to", "type": "address"},
			{"internalType": "uint256", "name": "deadline", "type": "uint256"}
		],
		"name": "addLiquidity",
		"outputs": [
			{"internalType": "uint256", "name": "amountA", "type": "uint256"},
			{"internalType": "uint256", "name": "amountB", "type": "uint256"},
			{"internalType": "uint256", "name": "liquidity", "type": "uint256"}
		],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "uint256", "name": "amountIn", "type": "uint256"},
			{"internalType": "uint256", "name": "amountOutMin", "type": "uint256"},
			{"internalType": "address[]", "name": "path", "type": "address[]"},
			{"internalType": "address", "name": "to", "type": "address"},
			{"internalType": "uint256", "name": "deadline", "type": "uint256"}
		],
		"name": "swapExactTokensForTokens",
		"outputs": [
			{"internalType": "uint256[]", "name": "amounts", "type": "uint256[]"}
		],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var v2RouterABI = mustABI("v2 router", v2Router02ABIJSON)

// V2AddLiquidityParams mirrors the router's addLiquidity arguments.
type V2AddLiquidityParams struct {
	TokenA         common.Address
	TokenB         common.Address
	AmountADesired *big.Int
	AmountBDesired *big.Int
	AmountAMin     *big.Int
	AmountBMin     *big.Int
	To             common.Address
	Deadline       *big.Int
}

// PackV2AddLiquidity encodes addLiquidity.
func PackV2AddLiquidity(p V2AddLiquidityParams) ([]byte, error) {
	for _, c := range []struct {
		field string
		v     *big.Int
	}{
		{"addLiquidity.amountADesired", p.AmountADesired},
		{"addLiquidity.amountBDesired", p.AmountBDesired},
		{"addLiquidity.amountAMin", p.AmountAMin},
		{"addLiquidity.amountBMin", p.AmountBMin},
		{"addLiquidity.deadline", p.Deadline},
	} {
		if err := checkUint(c.field, c.v, 256); err != nil {
			return nil, err
		}
	}

	data, err := v2RouterABI.Pack("addLiquidity",
		p.TokenA, p.TokenB,
		p.AmountADesired, p.AmountBDesired,
		p.AmountAMin, p.AmountBMin,
		p.To, p.Deadline,
	)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack addLiquidity", err)
	}
	return data, nil
}

// PackV2SwapExactTokensForTokens encodes an exact-input swap along path.
func PackV2SwapExactTokensForTokens(amountIn, amountOutMin *big.Int, path []common.Address, to common.Address, deadline *big.Int) ([]byte, error) {
	if err := checkUint("swap.amountIn", amountIn, 256); err != nil {
		return nil, err
	}
	if err := checkUint("swap.amountOutMin", amountOutMin, 256); err != nil {
		return nil, err
	}
	if err := checkUint("swap.deadline", deadline, 256); err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return nil, apperror.Validation(apperror.CodeInvalidInput, "swap path needs at least two tokens")
	}

	data, err := v2RouterABI.Pack("swapExactTokensForTokens", amountIn, amountOutMin, path, to, deadline)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack swapExactTokensForTokens", err)
	}
	return data, nil
}
