package ethabi

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fd1az/dexkit/internal/apperror"

	pricing "github.com/fd1az/dexkit/business/pricing/domain"
)

var (
	testToken0 = common.HexToAddress("0x1000000000000000000000000000000000000001")
	testToken1 = common.HexToAddress("0x2000000000000000000000000000000000000002")
	testOwner  = common.HexToAddress("0x3000000000000000000000000000000000000003")
)

func testKey(t *testing.T) pricing.PoolKey {
	t.Helper()
	return pricing.NewPoolKey(testToken0, testToken1, 3000, 60, common.Address{})
}

// decodePlan unpacks the (actions, params) blob a plan encodes to.
func decodePlan(t *testing.T, data []byte) ([]byte, [][]byte) {
	t.Helper()
	out, err := unlockDataArgs.Unpack(data)
	if err != nil {
		t.Fatalf("unpack plan: %v", err)
	}
	return out[0].([]byte), out[1].([][]byte)
}

func TestPlanActionOrdering(t *testing.T) {
	key := testKey(t)
	plan := &Plan{}

	liquidity := big.NewInt(1_000_000)
	max := big.NewInt(2_000_000)
	ticks := pricing.TickRange{Lower: -600, Upper: 600}

	if err := plan.MintPosition(key, ticks, liquidity, max, max, testOwner, nil); err != nil {
		t.Fatalf("MintPosition: %v", err)
	}
	if err := plan.SettlePair(key.Currency0, key.Currency1); err != nil {
		t.Fatalf("SettlePair: %v", err)
	}

	encoded, err := plan.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	actions, params := decodePlan(t, encoded)
	want := []byte{ActionMintPosition, ActionSettlePair}
	if !bytes.Equal(actions, want) {
		t.Fatalf("actions = %x, want %x", actions, want)
	}
	if len(params) != 2 {
		t.Fatalf("params count = %d, want 2", len(params))
	}
	for i, p := range params {
		if len(p) == 0 {
			t.Fatalf("params[%d] is empty", i)
		}
	}
}

func TestPlanCollectComposite(t *testing.T) {
	plan := &Plan{}
	zero := new(big.Int)

	if err := plan.DecreaseLiquidity(big.NewInt(42), zero, zero, zero, nil); err != nil {
		t.Fatalf("DecreaseLiquidity: %v", err)
	}
	if err := plan.TakePair(testToken0, testToken1, testOwner); err != nil {
		t.Fatalf("TakePair: %v", err)
	}

	encoded, err := plan.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	actions, _ := decodePlan(t, encoded)
	want := []byte{ActionDecreaseLiquidity, ActionTakePair}
	if !bytes.Equal(actions, want) {
		t.Fatalf("actions = %x, want %x", actions, want)
	}
}

func TestPlanSwapSequence(t *testing.T) {
	key := testKey(t)
	plan := &Plan{}

	if err := plan.SwapExactInSingle(key, true, big.NewInt(1000), big.NewInt(990), nil); err != nil {
		t.Fatalf("SwapExactInSingle: %v", err)
	}
	if err := plan.SettleAll(key.Currency0, big.NewInt(1000)); err != nil {
		t.Fatalf("SettleAll: %v", err)
	}
	if err := plan.TakeAll(key.Currency1, big.NewInt(990)); err != nil {
		t.Fatalf("TakeAll: %v", err)
	}

	encoded, err := plan.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	actions, params := decodePlan(t, encoded)
	want := []byte{ActionSwapExactInSingle, ActionSettleAll, ActionTakeAll}
	if !bytes.Equal(actions, want) {
		t.Fatalf("actions = %x, want %x", actions, want)
	}
	if len(params) != 3 {
		t.Fatalf("params count = %d, want 3", len(params))
	}
}

func TestPlanDeterministic(t *testing.T) {
	key := testKey(t)

	build := func() []byte {
		plan := &Plan{}
		if err := plan.MintPosition(key, pricing.TickRange{Lower: -60, Upper: 60},
			big.NewInt(5), big.NewInt(10), big.NewInt(10), testOwner, nil); err != nil {
			t.Fatalf("MintPosition: %v", err)
		}
		if err := plan.SettlePair(key.Currency0, key.Currency1); err != nil {
			t.Fatalf("SettlePair: %v", err)
		}
		out, err := plan.Encode()
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		return out
	}

	if !bytes.Equal(build(), build()) {
		t.Fatal("identical plans encoded differently")
	}
}

func TestPlanRejectsOverflow(t *testing.T) {
	key := testKey(t)
	tooWide := new(big.Int).Lsh(big.NewInt(1), 130) // exceeds uint128

	plan := &Plan{}
	err := plan.MintPosition(key, pricing.TickRange{Lower: -60, Upper: 60},
		big.NewInt(1), tooWide, big.NewInt(1), testOwner, nil)
	if apperror.GetCode(err) != apperror.CodeValueOverflow {
		t.Fatalf("code = %v, want CodeValueOverflow", apperror.GetCode(err))
	}
	if plan.Len() != 0 {
		t.Fatalf("failed action was queued, len = %d", plan.Len())
	}

	err = (&Plan{}).SwapExactInSingle(key, true, tooWide, big.NewInt(1), nil)
	if apperror.GetCode(err) != apperror.CodeValueOverflow {
		t.Fatalf("swap code = %v, want CodeValueOverflow", apperror.GetCode(err))
	}
}

func TestPlanRejectsNegativeAmount(t *testing.T) {
	plan := &Plan{}
	err := plan.DecreaseLiquidity(big.NewInt(1), big.NewInt(10), big.NewInt(-1), big.NewInt(0), nil)
	if apperror.GetCode(err) != apperror.CodeValueOverflow {
		t.Fatalf("code = %v, want CodeValueOverflow", apperror.GetCode(err))
	}
}
