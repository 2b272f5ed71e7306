package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/fd1az/dexkit/internal/apperror"
)

func TestMinAmountAfterSlippage(t *testing.T) {
	tests := []struct {
		name    string
		desired int64
		bps     int64
		want    int64
	}{
		{"no tolerance", 1000, 0, 1000},
		{"one percent", 1000, 100, 990},
		{"half percent floors", 999, 50, 994},
		{"full tolerance", 1000, 10000, 0},
		{"zero desired", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinAmountAfterSlippage(big.NewInt(tt.desired), tt.bps)
			if got.Int64() != tt.want {
				t.Fatalf("min = %d, want %d", got.Int64(), tt.want)
			}
		})
	}
}

func TestMinAmountAfterSlippageNil(t *testing.T) {
	if got := MinAmountAfterSlippage(nil, 100); got.Sign() != 0 {
		t.Fatalf("nil desired = %s, want 0", got)
	}
}

func TestMaxAmountAfterSlippage(t *testing.T) {
	tests := []struct {
		name    string
		desired int64
		bps     int64
		want    int64
	}{
		{"no tolerance", 1000, 0, 1000},
		{"one percent", 1000, 100, 1010},
		{"rounds up", 999, 50, 1004}, // 999 * 10050 / 10000 = 1003.995
		{"zero desired", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxAmountAfterSlippage(big.NewInt(tt.desired), tt.bps)
			if got.Int64() != tt.want {
				t.Fatalf("max = %d, want %d", got.Int64(), tt.want)
			}
		})
	}
}

func TestMinNeverExceedsDesired(t *testing.T) {
	desired := new(big.Int)
	desired.SetString("123456789012345678901234567890", 10)

	for _, bps := range []int64{0, 1, 30, 100, 9999, 10000} {
		min := MinAmountAfterSlippage(desired, bps)
		if min.Cmp(desired) > 0 {
			t.Fatalf("bps=%d: min %s exceeds desired %s", bps, min, desired)
		}
		max := MaxAmountAfterSlippage(desired, bps)
		if max.Cmp(desired) < 0 {
			t.Fatalf("bps=%d: max %s below desired %s", bps, max, desired)
		}
	}
}

func TestValidateBps(t *testing.T) {
	for _, bps := range []int64{0, 1, 5000, 10000} {
		if err := ValidateBps(bps); err != nil {
			t.Fatalf("ValidateBps(%d) = %v, want nil", bps, err)
		}
	}
	for _, bps := range []int64{-1, 10001, 1 << 40} {
		err := ValidateBps(bps)
		if apperror.GetCode(err) != apperror.CodeInvalidBps {
			t.Fatalf("ValidateBps(%d) code = %v, want CodeInvalidBps", bps, apperror.GetCode(err))
		}
	}
}

func TestDeadlineFrom(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := DeadlineFrom(now, 20*time.Minute)
	want := now.Add(20 * time.Minute).Unix()
	if got.Int64() != want {
		t.Fatalf("deadline = %d, want %d", got.Int64(), want)
	}
}
