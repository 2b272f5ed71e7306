package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fd1az/dexkit/internal/apperror"

	pricing "github.com/fd1az/dexkit/business/pricing/domain"
)

// PositionIdentifier names an existing concentrated-liquidity position:
// the protocol version that minted it plus the NFT token id. The string
// form is "v3-12345" or "v4-7".
type PositionIdentifier struct {
	Version pricing.Version
	TokenID *big.Int
}

// ParsePositionIdentifier parses "v3-<id>" / "v4-<id>". Version tags
// without positions (v2) and unknown tags are rejected.
func ParsePositionIdentifier(s string) (PositionIdentifier, error) {
	tag, id, ok := strings.Cut(s, "-")
	if !ok {
		return PositionIdentifier{}, apperror.Validation(apperror.CodeInvalidPositionID, "position id: "+s)
	}

	version, err := pricing.ParseVersion(tag)
	if err != nil {
		return PositionIdentifier{}, apperror.Validation(apperror.CodeInvalidPositionID, "position id: "+s)
	}
	if !version.Concentrated() {
		return PositionIdentifier{}, apperror.Validation(apperror.CodeInvalidPositionID, "position id: "+s)
	}

	tokenID, ok := new(big.Int).SetString(id, 10)
	if !ok || tokenID.Sign() < 0 {
		return PositionIdentifier{}, apperror.Validation(apperror.CodeInvalidPositionID, "position id: "+s)
	}

	return PositionIdentifier{Version: version, TokenID: tokenID}, nil
}

func (p PositionIdentifier) String() string {
	return fmt.Sprintf("%s-%s", p.Version, p.TokenID)
}
