package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stellar/go/strkey"
)

// Asset types as reported by Horizon
const (
	AssetTypeNative   = "native"
	AssetTypeCredit4  = "credit_alphanum4"
	AssetTypeCredit12 = "credit_alphanum12"
)

// NativeCode is the code users type to mean the native asset.
const NativeCode = "XLM"

// ErrInvalidAsset is returned when form input does not describe a ledger asset.
var ErrInvalidAsset = errors.New("invalid asset")

// Asset identifies a ledger asset: either native or a code issued by an account.
type Asset struct {
	Type   string `json:"asset_type"`
	Code   string `json:"asset_code,omitempty"`
	Issuer string `json:"asset_issuer,omitempty"`
}

// NativeAsset returns the native asset descriptor.
func NativeAsset() Asset {
	return Asset{Type: AssetTypeNative}
}

// NewCreditAsset builds a credit asset and checks code length and issuer address.
func NewCreditAsset(code, issuer string) (Asset, error) {
	code = strings.TrimSpace(code)
	issuer = strings.TrimSpace(issuer)

	var assetType string
	switch n := len(code); {
	case n >= 1 && n <= 4:
		assetType = AssetTypeCredit4
	case n >= 5 && n <= 12:
		assetType = AssetTypeCredit12
	default:
		return Asset{}, fmt.Errorf("%w: code %q must be 1-12 characters", ErrInvalidAsset, code)
	}

	if !strkey.IsValidEd25519PublicKey(issuer) {
		return Asset{}, fmt.Errorf("%w: issuer %q is not a valid public address", ErrInvalidAsset, issuer)
	}

	return Asset{Type: assetType, Code: code, Issuer: issuer}, nil
}

// ResolveSourceAsset turns form input into an asset. Empty code or XLM means native.
func ResolveSourceAsset(code, issuer string) (Asset, error) {
	code = strings.TrimSpace(code)
	if code == "" || code == NativeCode {
		return NativeAsset(), nil
	}
	return NewCreditAsset(code, issuer)
}

// IsNative reports whether a is the native asset
func (a Asset) IsNative() bool {
	return a.Type == AssetTypeNative
}

// DisplayCode returns the code shown to users (XLM for native).
func (a Asset) DisplayCode() string {
	if a.IsNative() {
		return NativeCode
	}
	return a.Code
}

// String returns "native" or "CODE:ISSUER", the form Horizon accepts in asset lists.
func (a Asset) String() string {
	if a.IsNative() {
		return AssetTypeNative
	}
	return a.Code + ":" + a.Issuer
}
