package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/stellar-donate/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// keep scrypt cheap in tests
	DefaultScryptN = 1 << 10
}

func writeTestKeystore(t *testing.T, password string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	err := EncryptWallet(path, "stellar", "GADDRESS", "qr", &model.WalletData{
		Seed:      []byte("SSEED"),
		CreatedAt: "2026-10-18T00:00:00Z",
	}, []byte(password))
	require.NoError(t, err)
	return path
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	path := writeTestKeystore(t, "hunter2")

	cwt, data, err := DecryptWallet(path, []byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, "stellar", cwt.Network)
	assert.Equal(t, "GADDRESS", cwt.Address)
	assert.Equal(t, 1<<10, cwt.ScryptN)
	assert.Equal(t, []byte("SSEED"), data.Seed)

	address, err := ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "GADDRESS", address)
}

func TestDecryptWrongPassword(t *testing.T) {
	path := writeTestKeystore(t, "hunter2")

	_, _, err := DecryptWallet(path, []byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestEncryptRefusesOverwrite(t *testing.T) {
	path := writeTestKeystore(t, "hunter2")

	err := EncryptWallet(path, "stellar", "G", "", &model.WalletData{}, []byte("x"))
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestEncryptRequiresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	err := EncryptWallet(path, "stellar", "G", "", &model.WalletData{}, []byte("x"))
	assert.Error(t, err)
}

func TestReadMissingKeystore(t *testing.T) {
	_, err := ReadWalletAddress(filepath.Join(t.TempDir(), "missing.cwt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReencryptWallet(t *testing.T) {
	path := writeTestKeystore(t, "old")

	require.NoError(t, ReencryptWallet(path, []byte("old"), []byte("new")))

	_, _, err := DecryptWallet(path, []byte("old"))
	assert.ErrorIs(t, err, ErrInvalidPassword)

	cwt, data, err := DecryptWallet(path, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, "GADDRESS", cwt.Address)
	assert.Equal(t, "qr", cwt.QR)
	assert.Equal(t, []byte("SSEED"), data.Seed)

	assert.Error(t, ReencryptWallet(path, []byte("new"), nil))
}

func TestReencryptReplacesKeystoreInPlace(t *testing.T) {
	path := writeTestKeystore(t, "old")
	require.NoError(t, ReencryptWallet(path, []byte("old"), []byte("new")))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "wallet.cwt", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFileAtomicKeepsOriginalOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallet.cwt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0600))

	// a directory at the target makes the final rename fail
	blocked := filepath.Join(dir, "blocked.cwt")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "child"), 0700))
	assert.Error(t, writeFileAtomic(blocked, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Error(t, writeFileAtomic(filepath.Join(dir, "missing", "wallet.cwt"), []byte("new")))
}
