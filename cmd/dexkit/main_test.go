package main

import (
	"context"
	"math/big"
	"testing"

	pricing "github.com/fd1az/dexkit/business/pricing/domain"
	"github.com/fd1az/dexkit/internal/asset"
)

func TestParseHumanAmount(t *testing.T) {
	tests := []struct {
		name  string
		asset *asset.Asset
		in    string
		want  *big.Int
	}{
		{"whole_eth", asset.ETH, "1", big.NewInt(1e18)},
		{"fractional_eth", asset.ETH, "1.5", big.NewInt(15e17)},
		{"usdc_six_decimals", asset.USDC, "2500.25", big.NewInt(2_500_250_000)},
		{"smallest_unit", asset.USDC, "0.000001", big.NewInt(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHumanAmount(tt.asset, tt.in)
			if err != nil {
				t.Fatalf("parseHumanAmount(%q) error: %v", tt.in, err)
			}
			if got.Cmp(tt.want) != 0 {
				t.Errorf("parseHumanAmount(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHumanAmount_Rejects(t *testing.T) {
	for _, in := range []string{"abc", "-1", "0.0000001"} {
		t.Run(in, func(t *testing.T) {
			// 0.0000001 has more decimal places than USDC carries.
			if _, err := parseHumanAmount(asset.USDC, in); err == nil {
				t.Fatalf("parseHumanAmount(%q) accepted", in)
			}
		})
	}
}

func TestResolveAssetNativeSentinel(t *testing.T) {
	// The native sentinel resolves from the registry without a provider.
	a, err := resolveAsset(context.Background(), nil, 1, pricing.NativeCurrency)
	if err != nil {
		t.Fatalf("resolveAsset: %v", err)
	}
	if a.Decimals() != 18 || a.Symbol() != "ETH" {
		t.Errorf("native asset = %s/%d", a.Symbol(), a.Decimals())
	}
}
