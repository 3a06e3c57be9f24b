package stellar

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/stellar-donate/internal/metrics"
	"github.com/AlexZinkM/stellar-donate/internal/model"

	"github.com/sirupsen/logrus"
)

// QueryConversion finds the cheapest path that delivers the target amount of the target
// asset from the given source asset and stores it for the next donation.
// When no path exists the stored quote has Found=false and no error is returned.
func (c *Controller) QueryConversion(ctx context.Context, sourceCode, sourceIssuer string) (*model.ConversionQuote, error) {
	source, err := model.ResolveSourceAsset(sourceCode, sourceIssuer)
	if err != nil {
		return nil, err
	}
	log := c.opLogger("conversion").WithField("source_asset", source.String())

	paths, err := c.ledger.FindPaymentPaths(ctx, []model.Asset{source}, c.settings.TargetAsset, c.settings.TargetAmount)
	if err != nil {
		metrics.RecordOperation("conversion", metrics.OutcomeFailure)
		return nil, fmt.Errorf("failed to query conversion: %w", err)
	}

	quote := &model.ConversionQuote{
		SourceAsset:       source,
		DestinationAsset:  c.settings.TargetAsset,
		DestinationAmount: c.settings.TargetAmount,
	}
	if len(paths) > 0 {
		quote.Found = true
		quote.Path = append([]model.Asset{}, paths[0].Path...)
		quote.SourceAmount = paths[0].SourceAmount
	}

	c.mu.Lock()
	c.quote = quote
	c.mu.Unlock()

	log.WithFields(logrus.Fields{
		"found":         quote.Found,
		"hops":          len(quote.Path),
		"source_amount": quote.SourceAmount,
	}).Info("conversion quoted")
	metrics.RecordOperation("conversion", metrics.OutcomeSuccess)
	return copyQuote(quote), nil
}

// currentQuote returns the last quote if it found a path
func (c *Controller) currentQuote() *model.ConversionQuote {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quote == nil || !c.quote.Found {
		return nil
	}
	return copyQuote(c.quote)
}
