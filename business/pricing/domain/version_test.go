package domain

import (
	"testing"

	"github.com/fd1az/dexkit/internal/apperror"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"v2", V2},
		{"v3", V3},
		{"v4", V4},
		{"V3", V3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if err != nil {
				t.Fatalf("ParseVersion(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVersion_Rejects(t *testing.T) {
	for _, in := range []string{"", "v1", "v5", "uniswap"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseVersion(in)
			if err == nil {
				t.Fatalf("ParseVersion(%q) accepted", in)
			}
			if apperror.GetCode(err) != apperror.CodeUnsupportedVersion {
				t.Errorf("code = %v, want CodeUnsupportedVersion", apperror.GetCode(err))
			}
		})
	}
}

func TestVersionStringRoundTrip(t *testing.T) {
	for _, v := range []Version{V2, V3, V4} {
		got, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("round trip %v: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %v = %v", v, got)
		}
	}
}

func TestVersionConcentrated(t *testing.T) {
	if V2.Concentrated() {
		t.Error("v2 marked concentrated")
	}
	if !V3.Concentrated() || !V4.Concentrated() {
		t.Error("v3/v4 not marked concentrated")
	}
}
