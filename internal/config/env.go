package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the wallet password is prompted at runtime and stored in memory - use GetWalletPasswordBytes()
type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	HorizonURL        string        `envconfig:"HORIZON_URL" default:"https://horizon-testnet.stellar.org"`
	NetworkPassphrase string        `envconfig:"NETWORK_PASSPHRASE" default:"Test SDF Network ; September 2015"`
	FaucetURL         string        `envconfig:"FAUCET_URL" default:"https://friendbot.stellar.org"`
	WalletFilePath    string        `envconfig:"WALLET_FILE_PATH" default:"wallet.cwt"`
	HTTPTimeout       time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	FaucetPerMinute   int           `envconfig:"FAUCET_RATE_PER_MINUTE" default:"0"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat         string        `envconfig:"LOG_FORMAT" default:"text"`

	Donation
}

// Donation holds the demo constants of the donate flow. They are settings, not protocol rules.
type Donation struct {
	TargetAssetCode   string        `envconfig:"TARGET_ASSET_CODE" default:"USDC"`
	TargetAssetIssuer string        `envconfig:"TARGET_ASSET_ISSUER" default:"GBBD47IF6LWK7P7MDEVSCWR7DPUWV3NY3DTQEVFL4NAT4AQH3ZLLFLA5"`
	TargetAmount      string        `envconfig:"TARGET_AMOUNT" default:"10"`
	SendMax           string        `envconfig:"SEND_MAX" default:"100"`
	Memo              string        `envconfig:"MEMO" default:"Test Transaction"`
	TxTimeout         time.Duration `envconfig:"TX_TIMEOUT" default:"10m"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads an optional .env file and then configuration from environment variables.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads configuration from environment variables without touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return c, nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetWalletFilePath returns path to the .cwt keystore from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter wallet password: ")
	if err != nil {
		return err
	}
	SetPassword(raw)
	clear(raw)
	return nil
}

// ReadPassword reads one hidden line from the terminal.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// SetPassword stores a copy of password in memory.
func SetPassword(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
