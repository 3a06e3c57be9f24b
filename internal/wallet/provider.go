// Package wallet holds the wallet provider abstraction the controller signs
// through, the event sources that announce a wallet becoming available, and
// the confirmation prompt used by the connect flow.
package wallet

import (
	"context"
	"errors"
)

var (
	// ErrWalletUnavailable is returned when no wallet is present to serve a request.
	ErrWalletUnavailable = errors.New("wallet unavailable")
	// ErrPermissionDenied is returned when an operation was not granted by Connect.
	ErrPermissionDenied = errors.New("permission denied")
)

// Permissions are requested from a provider before signing.
type Permissions struct {
	CanRequestPublicKey bool `json:"canRequestPublicKey"`
	CanRequestSign      bool `json:"canRequestSign"`
}

// SignOptions select the key and the network a transaction is signed for.
type SignOptions struct {
	PublicKey string
	Network   string // network passphrase
}

// Provider is the capability the controller needs from a wallet.
type Provider interface {
	GetPublicKey(ctx context.Context) (string, error)
	Connect(ctx context.Context, perms Permissions) (Permissions, error)
	// Sign returns the signed transaction envelope as base64 XDR.
	Sign(ctx context.Context, envelopeXDR string, opts SignOptions) (string, error)
}
