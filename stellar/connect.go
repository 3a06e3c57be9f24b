package stellar

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/stellar-donate/internal/metrics"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"
)

const connectPrompt = "Connect your wallet to this application?"

// Connect asks the user to confirm and, on acceptance, reads the wallet's public key,
// marks the session connected and refreshes the balance. A refusal leaves the state untouched.
func (c *Controller) Connect(ctx context.Context, prompter wallet.Prompter) (bool, error) {
	log := c.opLogger("connect")

	accepted, err := prompter.Confirm(ctx, connectPrompt)
	if err != nil {
		metrics.RecordOperation("connect", metrics.OutcomeFailure)
		return false, fmt.Errorf("failed to confirm connection: %w", err)
	}
	if !accepted {
		log.Info("connection refused")
		metrics.RecordOperation("connect", metrics.OutcomeSkipped)
		return false, nil
	}
	log.Info("connection accepted")

	key, err := c.wallet.GetPublicKey(ctx)
	if err != nil {
		metrics.RecordOperation("connect", metrics.OutcomeFailure)
		return false, fmt.Errorf("failed to get public key: %w", err)
	}

	c.setConnected(key)
	c.loadBalance(ctx, log.WithField("account", key), key)
	metrics.RecordOperation("connect", metrics.OutcomeSuccess)
	return true, nil
}

// Watch subscribes to source for the controller's lifetime. Each EventInjected received
// while disconnected triggers a silent connection attempt. Call Close to stop.
func (c *Controller) Watch(source wallet.EventSource) error {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	if c.unsubscribe != nil {
		return errors.New("already watching an event source")
	}

	events, unsubscribe, err := source.Subscribe()
	if err != nil {
		return fmt.Errorf("failed to subscribe to wallet events: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.unsubscribe = unsubscribe
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for ev := range events {
			if ev.Type != wallet.EventInjected || ctx.Err() != nil {
				continue
			}
			c.autoConnect(ctx)
		}
	}()
	return nil
}

// Close stops watching and waits for the listener to exit
func (c *Controller) Close() {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	if c.unsubscribe == nil {
		return
	}
	c.cancel()
	c.unsubscribe()
	c.wg.Wait()
	c.unsubscribe = nil
	c.cancel = nil
}

// autoConnect connects without prompting. Failures are logged, never surfaced.
func (c *Controller) autoConnect(ctx context.Context) {
	if c.State().Connected {
		return
	}
	log := c.opLogger("auto_connect")

	key, err := c.wallet.GetPublicKey(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.WithError(err).Error("could not connect wallet automatically")
		metrics.RecordOperation("auto_connect", metrics.OutcomeFailure)
		return
	}

	c.setConnected(key)
	c.loadBalance(ctx, log.WithField("account", key), key)
	log.WithField("account", key).Info("wallet connected automatically")
	metrics.RecordOperation("auto_connect", metrics.OutcomeSuccess)
}

func (c *Controller) setConnected(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = true
	c.publicKey = key
}
