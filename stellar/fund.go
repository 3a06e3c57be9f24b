package stellar

import (
	"context"
	"strings"

	"github.com/AlexZinkM/stellar-donate/internal/metrics"
)

// FundAccount asks the faucet to fund address with test tokens.
// Only a missing address is reported; faucet failures are logged.
func (c *Controller) FundAccount(ctx context.Context, address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrEmptyAddress
	}
	log := c.opLogger("fund").WithField("account", address)

	if err := c.faucet.Fund(ctx, address); err != nil {
		log.WithError(err).Warn("faucet request failed")
		metrics.RecordOperation("fund", metrics.OutcomeFailure)
		return nil
	}

	log.Info("faucet request sent")
	metrics.RecordOperation("fund", metrics.OutcomeSuccess)
	return nil
}
