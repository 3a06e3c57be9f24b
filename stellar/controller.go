// Package stellar implements the wallet-interaction controller: connecting a
// wallet, funding test accounts, quoting and sending path-payment donations,
// and establishing trustlines on the Stellar network.
package stellar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/stellar-donate/internal/common"
	"github.com/AlexZinkM/stellar-donate/internal/config"
	"github.com/AlexZinkM/stellar-donate/internal/model"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stellar/go/txnbuild"
)

// memoTextMaxLength is the ledger's limit for text memos, in bytes
const memoTextMaxLength = 28

var (
	// ErrEmptyAddress is returned when a required account address is missing.
	ErrEmptyAddress = errors.New("address is required")
	// ErrNotConnected is returned when an operation needs a connected wallet.
	ErrNotConnected = errors.New("wallet not connected")
)

// Ledger is what the controller needs from the ledger network
type Ledger interface {
	LoadAccount(ctx context.Context, address string) (*model.Account, error)
	FetchBaseFee(ctx context.Context) (int64, error)
	FindPaymentPaths(ctx context.Context, source []model.Asset, dest model.Asset, destAmount string) ([]model.PaymentPath, error)
	SubmitTransaction(ctx context.Context, envelopeXDR string) (*model.SubmitResult, error)
}

// Faucet funds test-network accounts
type Faucet interface {
	Fund(ctx context.Context, address string) error
}

// Settings are the network and donation constants of a controller.
type Settings struct {
	NetworkPassphrase string
	TargetAsset       model.Asset
	TargetAmount      string
	SendMax           string
	Memo              string
	TxTimeout         time.Duration
}

// SettingsFromConfig builds Settings from application configuration
func SettingsFromConfig(c *config.Config) (Settings, error) {
	target, err := model.NewCreditAsset(c.TargetAssetCode, c.TargetAssetIssuer)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid target asset: %w", err)
	}
	return Settings{
		NetworkPassphrase: c.NetworkPassphrase,
		TargetAsset:       target,
		TargetAmount:      c.TargetAmount,
		SendMax:           c.SendMax,
		Memo:              c.Memo,
		TxTimeout:         c.TxTimeout,
	}, nil
}

func (s Settings) validate() error {
	if s.NetworkPassphrase == "" {
		return errors.New("network passphrase is required")
	}
	if _, err := common.AmountToStroops(s.TargetAmount); err != nil {
		return fmt.Errorf("invalid target amount: %w", err)
	}
	if _, err := common.AmountToStroops(s.SendMax); err != nil {
		return fmt.Errorf("invalid send max: %w", err)
	}
	if len(s.Memo) > memoTextMaxLength {
		return fmt.Errorf("memo longer than %d bytes", memoTextMaxLength)
	}
	if s.TxTimeout <= 0 {
		return errors.New("transaction timeout must be positive")
	}
	return nil
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for operation logs
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// WithClock sets the time source used for transaction expiry
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller coordinates a user session against the ledger, the wallet and the faucet.
// Operations may overlap; shared state follows last-write-wins.
type Controller struct {
	ledger   Ledger
	wallet   wallet.Provider
	faucet   Faucet
	settings Settings
	log      logrus.FieldLogger
	now      func() time.Time

	mu                sync.Mutex
	connected         bool
	publicKey         string
	balance           string
	randomDestination string
	quote             *model.ConversionQuote

	watchMu     sync.Mutex
	unsubscribe func()
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// New creates a Controller
func New(ledger Ledger, provider wallet.Provider, faucet Faucet, settings Settings, opts ...Option) (*Controller, error) {
	if err := settings.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		ledger:   ledger,
		wallet:   provider,
		faucet:   faucet,
		settings: settings,
		log:      logrus.StandardLogger(),
		now:      time.Now,
		balance:  "0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Settings returns the controller's settings
func (c *Controller) Settings() Settings {
	return c.settings
}

// State returns a snapshot of the session state
func (c *Controller) State() model.WalletState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return model.WalletState{
		Connected:         c.connected,
		PublicKey:         c.publicKey,
		Balance:           c.balance,
		RandomDestination: c.randomDestination,
		Quote:             copyQuote(c.quote),
	}
}

// opLogger returns a logger tagged with the operation and a fresh id
func (c *Controller) opLogger(operation string) logrus.FieldLogger {
	return c.log.WithFields(logrus.Fields{
		"operation": operation,
		"op_id":     uuid.NewString(),
	})
}

// loadBalance refreshes the displayed balance of address. Failures are logged only.
func (c *Controller) loadBalance(ctx context.Context, log logrus.FieldLogger, address string) {
	acc, err := c.ledger.LoadAccount(ctx, address)
	if err != nil {
		log.WithError(err).Warn("failed to load balance")
		return
	}

	balance := acc.NativeBalance()
	c.mu.Lock()
	c.balance = balance
	c.mu.Unlock()
	log.WithField("balance", balance).Debug("balance updated")
}

// newTransaction builds a single-operation transaction on acc that expires TxTimeout from now
func (c *Controller) newTransaction(acc *model.Account, fee int64, memo txnbuild.Memo, op txnbuild.Operation) (*txnbuild.Transaction, error) {
	expiry := c.now().Add(c.settings.TxTimeout).Unix()
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: acc.ID, Sequence: acc.Sequence},
		IncrementSequenceNum: true,
		BaseFee:              fee,
		Memo:                 memo,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimebounds(0, expiry)},
		Operations:           []txnbuild.Operation{op},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}
	return tx, nil
}

// toTxnAsset converts a model asset to the SDK representation
func toTxnAsset(a model.Asset) txnbuild.Asset {
	if a.IsNative() {
		return txnbuild.NativeAsset{}
	}
	return txnbuild.CreditAsset{Code: a.Code, Issuer: a.Issuer}
}

func copyQuote(q *model.ConversionQuote) *model.ConversionQuote {
	if q == nil {
		return nil
	}
	out := *q
	if q.Path != nil {
		out.Path = append([]model.Asset{}, q.Path...)
	}
	return &out
}
