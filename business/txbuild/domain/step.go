// Package domain contains the transaction-construction model: intents,
// ordered transaction steps, slippage bounds, and position identifiers.
// Building is a pure transformation from intent to steps; nothing here
// signs, submits, or touches the network.
package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// StepKind labels a step for logs and display. The on-chain contract
// only sees (to, data, value).
type StepKind string

const (
	StepApprove    StepKind = "approve"
	StepCreatePair StepKind = "create_pair"
	StepInitialize StepKind = "initialize"
	StepMint       StepKind = "mint"
	StepIncrease   StepKind = "increase_liquidity"
	StepDecrease   StepKind = "decrease_liquidity"
	StepBurn       StepKind = "burn"
	StepCollect    StepKind = "collect"
	StepSwap       StepKind = "swap"
)

// TransactionStep is one unsigned on-chain call. Steps within a build
// result are ordered; the caller must submit them in sequence.
type TransactionStep struct {
	Kind  StepKind       `json:"kind"`
	To    common.Address `json:"to"`
	Data  hexutil.Bytes  `json:"data"`
	Value *hexutil.Big   `json:"value"`
}

// NewStep builds a TransactionStep; a nil value means zero.
func NewStep(kind StepKind, to common.Address, data []byte, value *big.Int) TransactionStep {
	if value == nil {
		value = new(big.Int)
	}
	return TransactionStep{
		Kind:  kind,
		To:    to,
		Data:  data,
		Value: (*hexutil.Big)(value),
	}
}
