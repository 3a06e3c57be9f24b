package stellar

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/stellar-donate/internal/common"
	"github.com/AlexZinkM/stellar-donate/internal/metrics"
	"github.com/AlexZinkM/stellar-donate/internal/model"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"

	"github.com/sirupsen/logrus"
	"github.com/stellar/go/txnbuild"
)

// Donate sends a path payment from the connected account that delivers the target
// amount of the target asset to destination, paying with the given source asset along
// the last quoted path (an empty path if none was quoted). The transaction is signed by
// the wallet provider and, once submitted, the balance is refreshed.
//
// Every failure is logged and reported as a nil result; session state is not changed.
func (c *Controller) Donate(ctx context.Context, destination, sourceCode, sourceIssuer string) *model.SubmitResult {
	log := c.opLogger("donate").WithField("destination", destination)

	res, err := c.donate(ctx, log, destination, sourceCode, sourceIssuer)
	if err != nil {
		log.WithError(err).Error("donation failed")
		metrics.RecordOperation("donate", metrics.OutcomeFailure)
		return nil
	}

	log.WithField("hash", res.Hash).Info("donation submitted")
	metrics.RecordOperation("donate", metrics.OutcomeSuccess)
	return res
}

func (c *Controller) donate(ctx context.Context, log logrus.FieldLogger, destination, sourceCode, sourceIssuer string) (*model.SubmitResult, error) {
	state := c.State()
	if !state.Connected {
		return nil, ErrNotConnected
	}
	publicKey := state.PublicKey

	source, err := model.ResolveSourceAsset(sourceCode, sourceIssuer)
	if err != nil {
		return nil, err
	}

	account, err := c.ledger.LoadAccount(ctx, publicKey)
	if err != nil {
		return nil, err
	}

	fee, err := c.ledger.FetchBaseFee(ctx)
	if err != nil {
		return nil, err
	}

	path := []txnbuild.Asset{}
	if quote := c.currentQuote(); quote != nil {
		for _, a := range quote.Path {
			path = append(path, toTxnAsset(a))
		}
		if cmp, err := common.CompareAmounts(quote.SourceAmount, c.settings.SendMax); err == nil && cmp > 0 {
			log.WithFields(logrus.Fields{
				"quoted":   quote.SourceAmount,
				"send_max": c.settings.SendMax,
			}).Warn("quoted source amount exceeds send max")
		}
	}

	var memo txnbuild.Memo
	if c.settings.Memo != "" {
		memo = txnbuild.MemoText(c.settings.Memo)
	}

	tx, err := c.newTransaction(account, fee, memo, &txnbuild.PathPaymentStrictReceive{
		SendAsset:   toTxnAsset(source),
		SendMax:     c.settings.SendMax,
		Destination: destination,
		DestAsset:   toTxnAsset(c.settings.TargetAsset),
		DestAmount:  c.settings.TargetAmount,
		Path:        path,
	})
	if err != nil {
		return nil, err
	}

	envelope, err := tx.Base64()
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}

	granted, err := c.wallet.Connect(ctx, wallet.Permissions{CanRequestPublicKey: true, CanRequestSign: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet permissions: %w", err)
	}
	if !granted.CanRequestSign {
		return nil, wallet.ErrPermissionDenied
	}
	log.WithField("permissions", granted).Debug("permissions ok")

	signed, err := c.wallet.Sign(ctx, envelope, wallet.SignOptions{
		PublicKey: publicKey,
		Network:   c.settings.NetworkPassphrase,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	res, err := c.ledger.SubmitTransaction(ctx, signed)
	if err != nil {
		return nil, err
	}

	c.loadBalance(ctx, log, publicKey)
	return res, nil
}
