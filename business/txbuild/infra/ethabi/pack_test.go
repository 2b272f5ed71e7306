package ethabi

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/internal/apperror"
)

func TestPackApproveSelector(t *testing.T) {
	data, err := PackApprove(testOwner, big.NewInt(1000))
	if err != nil {
		t.Fatalf("PackApprove: %v", err)
	}
	want := erc20ABI.Methods["approve"].ID
	if !bytes.Equal(data[:4], want) {
		t.Fatalf("selector = %x, want %x", data[:4], want)
	}
	// selector + spender word + amount word
	if len(data) != 4+32+32 {
		t.Fatalf("calldata length = %d, want 68", len(data))
	}
}

func TestPackApproveRejectsNil(t *testing.T) {
	_, err := PackApprove(testOwner, nil)
	if apperror.GetCode(err) != apperror.CodeValueOverflow {
		t.Fatalf("code = %v, want CodeValueOverflow", apperror.GetCode(err))
	}
}

func TestPackV2AddLiquidity(t *testing.T) {
	params := V2AddLiquidityParams{
		TokenA:         testToken0,
		TokenB:         testToken1,
		AmountADesired: big.NewInt(1_000_000),
		AmountBDesired: big.NewInt(2_000_000),
		AmountAMin:     big.NewInt(990_000),
		AmountBMin:     big.NewInt(1_980_000),
		To:             testOwner,
		Deadline:       big.NewInt(1_900_000_000),
	}

	data, err := PackV2AddLiquidity(params)
	if err != nil {
		t.Fatalf("PackV2AddLiquidity: %v", err)
	}
	want := v2RouterABI.Methods["addLiquidity"].ID
	if !bytes.Equal(data[:4], want) {
		t.Fatalf("selector = %x, want %x", data[:4], want)
	}

	// Round-trip the arguments to confirm field ordering survived.
	decoded, err := v2RouterABI.Methods["addLiquidity"].Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	if got := decoded[0].(common.Address); got != testToken0 {
		t.Fatalf("tokenA = %s, want %s", got.Hex(), testToken0.Hex())
	}
	if got := decoded[2].(*big.Int); got.Cmp(params.AmountADesired) != 0 {
		t.Fatalf("amountADesired = %s, want %s", got, params.AmountADesired)
	}
	if got := decoded[4].(*big.Int); got.Cmp(params.AmountAMin) != 0 {
		t.Fatalf("amountAMin = %s, want %s", got, params.AmountAMin)
	}
}

func TestPackV2SwapRejectsShortPath(t *testing.T) {
	_, err := PackV2SwapExactTokensForTokens(big.NewInt(1), big.NewInt(0),
		[]common.Address{testToken0}, testOwner, big.NewInt(1))
	if apperror.GetCode(err) != apperror.CodeInvalidInput {
		t.Fatalf("code = %v, want CodeInvalidInput", apperror.GetCode(err))
	}
}

func TestPackV3CreatePool(t *testing.T) {
	sqrtPrice := new(big.Int).Lsh(big.NewInt(1), 96)
	data, err := PackV3CreatePool(testToken0, testToken1, 3000, sqrtPrice)
	if err != nil {
		t.Fatalf("PackV3CreatePool: %v", err)
	}
	want := v3PositionManagerABI.Methods["createAndInitializePoolIfNecessary"].ID
	if !bytes.Equal(data[:4], want) {
		t.Fatalf("selector = %x, want %x", data[:4], want)
	}
}

func TestPackV3CreatePoolRejectsWidePrice(t *testing.T) {
	tooWide := new(big.Int).Lsh(big.NewInt(1), 161)
	_, err := PackV3CreatePool(testToken0, testToken1, 3000, tooWide)
	if apperror.GetCode(err) != apperror.CodeValueOverflow {
		t.Fatalf("code = %v, want CodeValueOverflow", apperror.GetCode(err))
	}
}

func TestPackV3MintRoundTrip(t *testing.T) {
	p := V3MintParams{
		Token0:         testToken0,
		Token1:         testToken1,
		Fee:            big.NewInt(500),
		TickLower:      big.NewInt(-887270),
		TickUpper:      big.NewInt(887270),
		Amount0Desired: big.NewInt(1000),
		Amount1Desired: big.NewInt(2000),
		Amount0Min:     big.NewInt(995),
		Amount1Min:     big.NewInt(1990),
		Recipient:      testOwner,
		Deadline:       big.NewInt(1_900_000_000),
	}
	data, err := PackV3Mint(p)
	if err != nil {
		t.Fatalf("PackV3Mint: %v", err)
	}
	want := v3PositionManagerABI.Methods["mint"].ID
	if !bytes.Equal(data[:4], want) {
		t.Fatalf("selector = %x, want %x", data[:4], want)
	}
}

func TestPackV3MintRejectsWideTick(t *testing.T) {
	p := V3MintParams{
		Token0: testToken0, Token1: testToken1, Fee: big.NewInt(500),
		TickLower: big.NewInt(-9_000_000), TickUpper: big.NewInt(60),
		Amount0Desired: big.NewInt(1), Amount1Desired: big.NewInt(1),
		Amount0Min: big.NewInt(0), Amount1Min: big.NewInt(0),
		Recipient: testOwner, Deadline: big.NewInt(1),
	}
	_, err := PackV3Mint(p)
	if apperror.GetCode(err) != apperror.CodeValueOverflow {
		t.Fatalf("code = %v, want CodeValueOverflow", apperror.GetCode(err))
	}
}

func TestPackV4InitializePool(t *testing.T) {
	key := testKey(t)
	sqrtPrice := new(big.Int).Lsh(big.NewInt(1), 96)

	data, err := PackV4InitializePool(key, sqrtPrice)
	if err != nil {
		t.Fatalf("PackV4InitializePool: %v", err)
	}
	want := v4PositionManagerABI.Methods["initializePool"].ID
	if !bytes.Equal(data[:4], want) {
		t.Fatalf("selector = %x, want %x", data[:4], want)
	}
}

func TestPackV4ModifyLiquiditiesSelector(t *testing.T) {
	plan := &Plan{}
	zero := new(big.Int)
	if err := plan.DecreaseLiquidity(big.NewInt(7), zero, zero, zero, nil); err != nil {
		t.Fatalf("DecreaseLiquidity: %v", err)
	}
	if err := plan.TakePair(testToken0, testToken1, testOwner); err != nil {
		t.Fatalf("TakePair: %v", err)
	}

	data, err := PackV4ModifyLiquidities(plan, big.NewInt(1_900_000_000))
	if err != nil {
		t.Fatalf("PackV4ModifyLiquidities: %v", err)
	}
	want := v4PositionManagerABI.Methods["modifyLiquidities"].ID
	if !bytes.Equal(data[:4], want) {
		t.Fatalf("selector = %x, want %x", data[:4], want)
	}
}

func TestPackUniversalRouterV4Swap(t *testing.T) {
	key := testKey(t)
	plan := &Plan{}
	if err := plan.SwapExactInSingle(key, true, big.NewInt(100), big.NewInt(99), nil); err != nil {
		t.Fatalf("SwapExactInSingle: %v", err)
	}
	if err := plan.SettleAll(key.Currency0, big.NewInt(100)); err != nil {
		t.Fatalf("SettleAll: %v", err)
	}
	if err := plan.TakeAll(key.Currency1, big.NewInt(99)); err != nil {
		t.Fatalf("TakeAll: %v", err)
	}

	data, err := PackUniversalRouterV4Swap(plan, big.NewInt(1_900_000_000))
	if err != nil {
		t.Fatalf("PackUniversalRouterV4Swap: %v", err)
	}
	want := universalRouterABI.Methods["execute"].ID
	if !bytes.Equal(data[:4], want) {
		t.Fatalf("selector = %x, want %x", data[:4], want)
	}

	decoded, err := universalRouterABI.Methods["execute"].Inputs.Unpack(data[4:])
	if err != nil {
		t.Fatalf("unpack execute: %v", err)
	}
	commands := decoded[0].([]byte)
	if !bytes.Equal(commands, []byte{CommandV4Swap}) {
		t.Fatalf("commands = %x, want %x", commands, []byte{CommandV4Swap})
	}
	inputs := decoded[1].([][]byte)
	if len(inputs) != 1 {
		t.Fatalf("inputs count = %d, want 1", len(inputs))
	}
}
