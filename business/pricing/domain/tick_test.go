package domain

import "testing"

func TestRoundTickToSpacing(t *testing.T) {
	tests := []struct {
		name    string
		tick    int32
		spacing int32
		mode    RoundMode
		want    int32
	}{
		{"exact_multiple_down", 120, 60, RoundDown, 120},
		{"down_positive", 125, 60, RoundDown, 120},
		{"down_negative", -125, 60, RoundDown, -180},
		{"up_positive", 125, 60, RoundUp, 180},
		{"up_negative", -125, 60, RoundUp, -120},
		{"nearest_low", 125, 60, RoundNearest, 120},
		{"nearest_high", 155, 60, RoundNearest, 180},
		{"nearest_negative", -155, 60, RoundNearest, -180},
		{"clamp_min", -900000, 60, RoundDown, MinTick},
		{"clamp_max", 900000, 60, RoundUp, MaxTick},
		{"zero_spacing_passthrough", 123, 0, RoundDown, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundTickToSpacing(tt.tick, tt.spacing, tt.mode)
			if got != tt.want {
				t.Errorf("RoundTickToSpacing(%d, %d) = %d, want %d", tt.tick, tt.spacing, got, tt.want)
			}
		})
	}
}

func TestFullRangeTicks(t *testing.T) {
	tests := []struct {
		name    string
		spacing int32
	}{
		{"spacing_1", 1},
		{"spacing_10", 10},
		{"spacing_60", 60},
		{"spacing_200", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FullRangeTicks(tt.spacing)

			if r.Lower >= r.Upper {
				t.Fatalf("range not ordered: [%d, %d)", r.Lower, r.Upper)
			}
			if r.Lower%tt.spacing != 0 || r.Upper%tt.spacing != 0 {
				t.Errorf("bounds not multiples of %d: [%d, %d)", tt.spacing, r.Lower, r.Upper)
			}
			if r.Lower < MinTick || r.Upper > MaxTick {
				t.Errorf("bounds exceed tick limits: [%d, %d)", r.Lower, r.Upper)
			}
			// Symmetric around zero within one spacing unit.
			if diff := r.Lower + r.Upper; diff > tt.spacing || diff < -tt.spacing {
				t.Errorf("range asymmetric by %d (spacing %d)", diff, tt.spacing)
			}
		})
	}
}

func TestTickSpacingTable(t *testing.T) {
	table := DefaultTickSpacingTable()

	tests := []struct {
		name string
		fee  uint32
		want int32
	}{
		{"tier_100", 100, 1},
		{"tier_500", 500, 10},
		{"tier_3000", 3000, 60},
		{"tier_10000", 10000, 200},
		{"unknown_static_tier_defaults", 2500, 60},
		{"dynamic_fee_sentinel", DynamicFeeFlag, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.SpacingForFee(tt.fee); got != tt.want {
				t.Errorf("SpacingForFee(%d) = %d, want %d", tt.fee, got, tt.want)
			}
		})
	}
}

func TestTickSpacingTable_Overrides(t *testing.T) {
	table := NewTickSpacingTable(map[uint32]int32{2500: 50}, 120)

	if got := table.SpacingForFee(2500); got != 50 {
		t.Errorf("override tier: got %d, want 50", got)
	}
	if got := table.SpacingForFee(DynamicFeeFlag); got != 120 {
		t.Errorf("dynamic spacing: got %d, want 120", got)
	}
	// Standard tiers survive alongside overrides.
	if got := table.SpacingForFee(500); got != 10 {
		t.Errorf("standard tier: got %d, want 10", got)
	}
}
