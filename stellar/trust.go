package stellar

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/stellar-donate/internal/metrics"
	"github.com/AlexZinkM/stellar-donate/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// ChangeTrust adds a trustline for assetCode:issuer to the destination account.
// The transaction is signed locally with secret; the wallet provider is not involved.
// Every failure is logged and reported as a nil result.
func (c *Controller) ChangeTrust(ctx context.Context, destination, secret, assetCode, issuer string) *model.SubmitResult {
	log := c.opLogger("change_trust").WithFields(logrus.Fields{
		"account": destination,
		"asset":   assetCode + ":" + issuer,
	})

	res, err := c.changeTrust(ctx, destination, secret, assetCode, issuer)
	if err != nil {
		log.WithError(err).Error("trustline not changed")
		metrics.RecordOperation("change_trust", metrics.OutcomeFailure)
		return nil
	}

	log.WithField("hash", res.Hash).Info("trustline changed")
	metrics.RecordOperation("change_trust", metrics.OutcomeSuccess)
	return res
}

func (c *Controller) changeTrust(ctx context.Context, destination, secret, assetCode, issuer string) (*model.SubmitResult, error) {
	account, err := c.ledger.LoadAccount(ctx, destination)
	if err != nil {
		return nil, err
	}

	fee, err := c.ledger.FetchBaseFee(ctx)
	if err != nil {
		return nil, err
	}

	line, err := txnbuild.CreditAsset{Code: assetCode, Issuer: issuer}.ToChangeTrustAsset()
	if err != nil {
		return nil, fmt.Errorf("invalid trustline asset: %w", err)
	}

	tx, err := c.newTransaction(account, fee, nil, &txnbuild.ChangeTrust{
		Line:  line,
		Limit: txnbuild.MaxTrustlineLimit,
	})
	if err != nil {
		return nil, err
	}

	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid secret key: %w", err)
	}

	signed, err := tx.Sign(c.settings.NetworkPassphrase, kp)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	envelope, err := signed.Base64()
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}

	return c.ledger.SubmitTransaction(ctx, envelope)
}
