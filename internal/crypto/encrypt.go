package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/stellar-donate/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for the local keystore.
	// N=2^18 (~256MB RAM, 0.5-2s) keeps brute force expensive while still
	// fitting the memory limits of small machines.
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12

	keystoreExt = ".cwt"

	// legacyScryptN is assumed for keystores written before the cost was stored
	legacyScryptN = 1 << 18
)

// DefaultScryptN is the scrypt cost written into new keystores.
var DefaultScryptN = legacyScryptN

// EncryptWallet encrypts wallet data and writes it to .cwt
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath string, network, address, qrCode string, walletData *model.WalletData, password []byte) error {
	if !strings.HasSuffix(filePath, keystoreExt) {
		return errors.New("file must have .cwt extension")
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	cwtFile, err := seal(walletData, password, DefaultScryptN)
	if err != nil {
		return err
	}
	cwtFile.Network = network
	cwtFile.Address = address
	cwtFile.QR = qrCode

	return writeKeystore(filePath, cwtFile)
}

// seal encrypts walletData with a fresh salt and nonce
func seal(walletData *model.WalletData, password []byte, n int) (*model.CWTFile, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt, n)
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	return &model.CWTFile{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
		ScryptN:    n,
	}, nil
}

// newGCM derives the file key from password and wraps it in AES-GCM
func newGCM(password, salt []byte, n int) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, n, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

// writeKeystore serializes cwtFile with a UTF-8 BOM for proper display in Windows
func writeKeystore(filePath string, cwtFile *model.CWTFile) error {
	fileData, err := json.MarshalIndent(cwtFile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cwt file: %w", err)
	}

	utf8BOM := []byte{0xEF, 0xBB, 0xBF}
	return writeFileAtomic(filePath, append(utf8BOM, fileData...))
}

// writeFileAtomic writes data to a temp file next to filePath and renames it over filePath,
// so the previous keystore survives a failed write.
func writeFileAtomic(filePath string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

// ReencryptWallet rotates the keystore password. Address, network and QR are kept,
// salt and nonce are regenerated.
func ReencryptWallet(filePath string, oldPassword, newPassword []byte) error {
	if len(newPassword) == 0 {
		return errors.New("new password cannot be empty")
	}

	cwtFile, walletData, err := DecryptWallet(filePath, oldPassword)
	if err != nil {
		return err
	}
	defer clear(walletData.Seed)

	sealed, err := seal(walletData, newPassword, DefaultScryptN)
	if err != nil {
		return err
	}
	sealed.Network = cwtFile.Network
	sealed.Address = cwtFile.Address
	sealed.QR = cwtFile.QR

	return writeKeystore(filePath, sealed)
}
