// Package domain contains the pure pricing model: fixed-point price and
// tick conversion, pool-key canonicalization, liquidity sizing, and swap
// quote computation. Everything here is a deterministic function of its
// inputs; no I/O, no shared state.
package domain

import (
	"strings"

	"github.com/fd1az/dexkit/internal/apperror"
)

// Version identifies a protocol generation. It is a closed enum so an
// unsupported version is a compile-time gap at switch sites, not a
// runtime string surprise.
type Version uint8

const (
	VersionUnknown Version = iota
	V2
	V3
	V4
)

// ParseVersion converts a tag like "v3" into a Version.
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(s) {
	case "v2":
		return V2, nil
	case "v3":
		return V3, nil
	case "v4":
		return V4, nil
	default:
		return VersionUnknown, apperror.Unsupported(apperror.CodeUnsupportedVersion, s)
	}
}

// String returns the canonical lowercase tag.
func (v Version) String() string {
	switch v {
	case V2:
		return "v2"
	case V3:
		return "v3"
	case V4:
		return "v4"
	default:
		return "unknown"
	}
}

// Concentrated reports whether the version uses tick-ranged liquidity.
func (v Version) Concentrated() bool {
	return v == V3 || v == V4
}
