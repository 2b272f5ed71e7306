package ethabi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/internal/apperror"
)

const erc20ABIJSON = `[
	{
		"inputs": [
			{"internalType": "address", "name": "spender", "type": "address"},
			{"internalType": "uint256", "name": "amount", "type": "uint256"}
		],
		"name": "approve",
		"outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

var erc20ABI = mustABI("erc20", erc20ABIJSON)

// PackApprove encodes approve(spender, amount).
func PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	if err := checkUint("approve.amount", amount, 256); err != nil {
		return nil, err
	}
	data, err := erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return nil, apperror.Internal(apperror.CodeEncodingFailed, "pack approve", err)
	}
	return data, nil
}
