package asset_test

import (
	"math/big"
	"testing"

	"github.com/fd1az/dexkit/internal/asset"
	"github.com/shopspring/decimal"
)

func TestAmount_Basic(t *testing.T) {
	// 1 ETH = 1e18 wei
	oneETH := asset.NewAmount(asset.ETH, big.NewInt(1e18))

	if oneETH.IsZero() {
		t.Error("expected non-zero amount")
	}

	d := oneETH.ToDecimal()
	if !d.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1, got %s", d.String())
	}

	if oneETH.String() != "1 ETH" {
		t.Errorf("expected '1 ETH', got '%s'", oneETH.String())
	}
}

func TestAmount_Add(t *testing.T) {
	oneETH := asset.NewAmount(asset.ETH, big.NewInt(1e18))
	twoETH := asset.NewAmount(asset.ETH, big.NewInt(2e18))

	sum, err := oneETH.Add(twoETH)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := decimal.NewFromInt(3)
	if !sum.ToDecimal().Equal(expected) {
		t.Errorf("expected 3, got %s", sum.ToDecimal().String())
	}
}

func TestAmount_CannotAddDifferentAssets(t *testing.T) {
	oneETH := asset.NewAmount(asset.ETH, big.NewInt(1e18))
	oneUSDC := asset.NewAmount(asset.USDC, big.NewInt(1e6))

	_, err := oneETH.Add(oneUSDC)
	if err == nil {
		t.Error("expected error when adding different assets")
	}
}

func TestAmount_RawIsCopied(t *testing.T) {
	raw := big.NewInt(5e17)
	amt := asset.NewAmount(asset.ETH, raw)

	raw.SetInt64(0)
	if amt.Raw().Sign() == 0 {
		t.Error("amount shares storage with caller's big.Int")
	}

	amt.Raw().SetInt64(0)
	if amt.IsZero() {
		t.Error("Raw() exposed internal storage")
	}
}

func TestAmount_Parse(t *testing.T) {
	tests := []struct {
		human   string
		wantRaw string
	}{
		{"1", "1000000000000000000"},
		{"1.5", "1500000000000000000"},
		{"0.000000000000000001", "1"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.human, func(t *testing.T) {
			amt, err := asset.Parse(asset.ETH, tt.human)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.human, err)
			}
			if amt.Raw().String() != tt.wantRaw {
				t.Errorf("raw = %s, want %s", amt.Raw(), tt.wantRaw)
			}
		})
	}
}

func TestAmount_ParseRejects(t *testing.T) {
	for _, human := range []string{
		"abc",
		"-1",
		"0.0000001", // too many decimals for USDC (6)
	} {
		t.Run(human, func(t *testing.T) {
			if _, err := asset.Parse(asset.USDC, human); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", human)
			}
		})
	}
}

func TestAmount_ParseNilAsset(t *testing.T) {
	if _, err := asset.Parse(nil, "1"); err == nil {
		t.Error("expected error for nil asset")
	}
}
