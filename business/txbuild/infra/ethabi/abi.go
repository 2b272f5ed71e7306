// Package ethabi encodes calldata for the per-version periphery
// contracts. Encoders are pure: given validated inputs they return the
// exact bytes a transaction step carries, and reject values that do not
// fit their ABI width instead of truncating.
package ethabi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/fd1az/dexkit/internal/apperror"
)

func mustABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid %s ABI: %v", name, err))
	}
	return parsed
}

func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(fmt.Sprintf("invalid ABI type %s: %v", t, err))
	}
	return typ
}

// checkUint verifies a non-negative value fits the given unsigned width.
func checkUint(field string, v *big.Int, bits int) error {
	if v == nil {
		return apperror.Encoding(field, "<nil>", bits)
	}
	if v.Sign() < 0 || v.BitLen() > bits {
		return apperror.Encoding(field, v.String(), bits)
	}
	return nil
}

// checkFee verifies a fee value fits uint24, which also admits the
// dynamic-fee flag.
func checkFee(field string, fee uint32) error {
	if fee >= 1<<24 {
		return apperror.Encoding(field, fmt.Sprintf("%d", fee), 24)
	}
	return nil
}

const (
	minInt24 = -(1 << 23)
	maxInt24 = 1<<23 - 1
)

// checkTick verifies a tick fits int24.
func checkTick(field string, tick int32) error {
	if tick < minInt24 || tick > maxInt24 {
		return apperror.Encoding(field, fmt.Sprintf("%d", tick), 24)
	}
	return nil
}
