package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

var (
	addrLow  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	addrHigh = common.HexToAddress("0xEEeEeEeEeEeEeEeEeEeEEEeeeeEeeeeeeeEEeEEE")
)

func TestSortCurrencies(t *testing.T) {
	tests := []struct {
		name  string
		a, b  common.Address
		want0 common.Address
	}{
		{"already_sorted", addrLow, addrHigh, addrLow},
		{"reversed", addrHigh, addrLow, addrLow},
		{"native_sentinel_first", addrHigh, NativeCurrency, NativeCurrency},
		{"native_sentinel_first_either_side", NativeCurrency, addrLow, NativeCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c0, c1 := SortCurrencies(tt.a, tt.b)
			if c0 != tt.want0 {
				t.Errorf("currency0 = %s, want %s", c0.Hex(), tt.want0.Hex())
			}
			if c0 == c1 && tt.a != tt.b {
				t.Error("currencies collapsed")
			}
		})
	}
}

func TestNewPoolKey_CanonicalOrder(t *testing.T) {
	// Caller-supplied order is advisory: both orders produce the same key.
	k1 := NewPoolKey(addrLow, addrHigh, 3000, 60, common.Address{})
	k2 := NewPoolKey(addrHigh, addrLow, 3000, 60, common.Address{})

	if k1 != k2 {
		t.Fatalf("keys differ by input order: %+v vs %+v", k1, k2)
	}
	if k1.Currency0 != addrLow || k1.Currency1 != addrHigh {
		t.Errorf("not canonical: %s < %s expected", k1.Currency0.Hex(), k1.Currency1.Hex())
	}
}

func TestPoolKeyID_Deterministic(t *testing.T) {
	k := NewPoolKey(addrLow, addrHigh, 500, 10, common.Address{})

	id1, err := k.ID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, err := k.ID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id1 != id2 {
		t.Error("pool ID not deterministic")
	}
	if id1 == (common.Hash{}) {
		t.Error("pool ID is zero")
	}
}

func TestPoolKeyID_HooksChangeIdentity(t *testing.T) {
	hooked := common.HexToAddress("0x9999999999999999999999999999999999999999")

	plain := NewPoolKey(addrLow, addrHigh, 3000, 60, common.Address{})
	withHooks := NewPoolKey(addrLow, addrHigh, 3000, 60, hooked)

	idPlain, err := plain.ID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idHooked, err := withHooks.ID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idPlain == idHooked {
		t.Error("hook address must participate in pool identity")
	}
}

func TestPoolKey_DynamicFee(t *testing.T) {
	k := NewPoolKey(addrLow, addrHigh, DynamicFeeFlag, 200, common.Address{})
	if !k.HasDynamicFee() {
		t.Error("dynamic fee flag not detected")
	}

	static := NewPoolKey(addrLow, addrHigh, 3000, 60, common.Address{})
	if static.HasDynamicFee() {
		t.Error("static fee misread as dynamic")
	}
}
