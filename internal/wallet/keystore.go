package wallet

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/stellar-donate/internal/crypto"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// PasswordFunc returns a copy of the keystore password. Callers zero it after use.
type PasswordFunc func() ([]byte, error)

// KeystoreProvider is a Provider backed by an encrypted .cwt keystore on disk.
type KeystoreProvider struct {
	filePath string
	password PasswordFunc
}

// NewKeystoreProvider creates a provider for the keystore at filePath
func NewKeystoreProvider(filePath string, password PasswordFunc) *KeystoreProvider {
	return &KeystoreProvider{filePath: filePath, password: password}
}

// GetPublicKey reads the wallet address without decrypting the keystore
func (p *KeystoreProvider) GetPublicKey(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	address, err := crypto.ReadWalletAddress(p.filePath)
	if err != nil {
		return "", p.unavailable(err)
	}
	return address, nil
}

// Connect grants the requested permissions if the keystore can serve them
func (p *KeystoreProvider) Connect(ctx context.Context, perms Permissions) (Permissions, error) {
	if _, err := p.GetPublicKey(ctx); err != nil {
		return Permissions{}, err
	}

	if perms.CanRequestSign {
		password, err := p.password()
		if err != nil {
			return Permissions{}, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		clear(password)
	}
	return perms, nil
}

// Sign decrypts the keystore seed and signs envelopeXDR for opts.Network
func (p *KeystoreProvider) Sign(ctx context.Context, envelopeXDR string, opts SignOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	password, err := p.password()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	defer clear(password) // Always clear password from memory

	_, walletData, err := crypto.DecryptWallet(p.filePath, password)
	if err != nil {
		return "", p.unavailable(err)
	}
	defer clear(walletData.Seed)

	kp, err := keypair.ParseFull(string(walletData.Seed))
	if err != nil {
		return "", fmt.Errorf("invalid keystore seed: %w", err)
	}
	if opts.PublicKey != "" && kp.Address() != opts.PublicKey {
		return "", fmt.Errorf("keystore key does not match %s", opts.PublicKey)
	}

	generic, err := txnbuild.TransactionFromXDR(envelopeXDR)
	if err != nil {
		return "", fmt.Errorf("failed to decode transaction: %w", err)
	}
	tx, ok := generic.Transaction()
	if !ok {
		return "", errors.New("fee bump transactions are not supported")
	}

	signed, err := tx.Sign(opts.Network, kp)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	out, err := signed.Base64()
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction: %w", err)
	}
	return out, nil
}

// unavailable marks a missing keystore with ErrWalletUnavailable
func (p *KeystoreProvider) unavailable(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s: %v", ErrWalletUnavailable, p.filePath, err)
	}
	return err
}
