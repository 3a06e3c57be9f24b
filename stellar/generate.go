package stellar

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlexZinkM/stellar-donate/internal/crypto"
	"github.com/AlexZinkM/stellar-donate/internal/metrics"
	"github.com/AlexZinkM/stellar-donate/internal/model"

	"github.com/skip2/go-qrcode"
	"github.com/stellar/go/keypair"
)

const (
	networkStellar = "stellar"
)

// FileExistsError is an error when file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var target *FileExistsError
	return errors.As(err, &target)
}

// GenerateKeypair creates a random demonstration keypair. Its public key becomes the
// session's random destination; nothing is persisted.
func (c *Controller) GenerateKeypair() (*model.Keypair, error) {
	kp, err := keypair.Random()
	if err != nil {
		metrics.RecordOperation("keypair", metrics.OutcomeFailure)
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	qr, err := generateQRCode(kp.Address())
	if err != nil {
		metrics.RecordOperation("keypair", metrics.OutcomeFailure)
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	c.mu.Lock()
	c.randomDestination = kp.Address()
	c.mu.Unlock()

	c.opLogger("keypair").WithField("account", kp.Address()).Info("new wallet public key")
	metrics.RecordOperation("keypair", metrics.OutcomeSuccess)

	return &model.Keypair{
		PublicKey: kp.Address(),
		SecretKey: kp.Seed(),
		QR:        qr,
	}, nil
}

// GenerateWallet generates a new Stellar keypair and saves it to an encrypted .cwt keystore.
// Returns the generated public address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte) (address string, err error) {
	if ext := filepath.Ext(filePath); ext != ".cwt" {
		return "", fmt.Errorf("file must have .cwt extension")
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return "", &FileExistsError{Message: "file is not empty"}
	}

	kp, err := keypair.Random()
	if err != nil {
		return "", fmt.Errorf("failed to generate keypair: %w", err)
	}
	address = kp.Address()

	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		Seed:      []byte(kp.Seed()),
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	defer clear(walletData.Seed)

	if err := crypto.EncryptWallet(filePath, networkStellar, address, qrCode, walletData, password); err != nil {
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return address, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
