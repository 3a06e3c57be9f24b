package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AlexZinkM/stellar-donate/internal/model"

	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
)

// HorizonClient is a client for working with a Horizon server.
// It is the ledger side of every operation: account loading, fee lookup,
// path finding and transaction submission.
type HorizonClient struct {
	client *horizonclient.Client
}

// NewHorizonClient creates a new Horizon client for the given server URL
func NewHorizonClient(horizonURL string, timeout time.Duration) *HorizonClient {
	return &HorizonClient{
		client: &horizonclient.Client{
			HorizonURL: strings.TrimRight(horizonURL, "/") + "/",
			HTTP:       &http.Client{Timeout: timeout},
			AppName:    "stellar-donate",
		},
	}
}

// LoadAccount loads sequence number and balances of address
func (c *HorizonClient) LoadAccount(ctx context.Context, address string) (*model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acc, err := c.client.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		return nil, wrapHorizonError("failed to load account", err)
	}

	seq, err := acc.GetSequenceNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to parse sequence number: %w", err)
	}

	balances := make([]model.Balance, 0, len(acc.Balances))
	for _, b := range acc.Balances {
		balances = append(balances, model.Balance{
			AssetType:   b.Type,
			AssetCode:   b.Code,
			AssetIssuer: b.Issuer,
			Balance:     b.Balance,
		})
	}

	return &model.Account{
		ID:       acc.AccountID,
		Sequence: seq,
		Balances: balances,
	}, nil
}

// FetchBaseFee returns the base fee of the last closed ledger in stroops.
// Never less than the network minimum.
func (c *HorizonClient) FetchBaseFee(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	stats, err := c.client.FeeStats()
	if err != nil {
		return 0, wrapHorizonError("failed to fetch fee stats", err)
	}

	if stats.LastLedgerBaseFee < txnbuild.MinBaseFee {
		return txnbuild.MinBaseFee, nil
	}
	return stats.LastLedgerBaseFee, nil
}

// FindPaymentPaths asks for strict-receive paths that deliver destAmount of dest
// using one of the source assets. Records are returned in Horizon's order (cheapest first).
func (c *HorizonClient) FindPaymentPaths(ctx context.Context, source []model.Asset, dest model.Asset, destAmount string) ([]model.PaymentPath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sourceAssets := make([]string, 0, len(source))
	for _, a := range source {
		sourceAssets = append(sourceAssets, a.String())
	}

	req := horizonclient.PathsRequest{
		DestinationAssetType:   horizonclient.AssetType(dest.Type),
		DestinationAssetCode:   dest.Code,
		DestinationAssetIssuer: dest.Issuer,
		DestinationAmount:      destAmount,
		SourceAssets:           strings.Join(sourceAssets, ","),
	}

	page, err := c.client.StrictReceivePaths(req)
	if err != nil {
		return nil, wrapHorizonError("failed to find payment paths", err)
	}

	paths := make([]model.PaymentPath, 0, len(page.Embedded.Records))
	for _, rec := range page.Embedded.Records {
		paths = append(paths, model.PaymentPath{
			Path:              convertPath(rec.Path),
			SourceAmount:      rec.SourceAmount,
			DestinationAmount: rec.DestinationAmount,
		})
	}
	return paths, nil
}

// SubmitTransaction submits a signed transaction envelope (base64 XDR)
func (c *HorizonClient) SubmitTransaction(ctx context.Context, envelopeXDR string) (*model.SubmitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx, err := c.client.SubmitTransactionXDR(envelopeXDR)
	if err != nil {
		return nil, wrapHorizonError("failed to submit transaction", err)
	}

	return &model.SubmitResult{
		Hash:       tx.Hash,
		Ledger:     tx.Ledger,
		Successful: tx.Successful,
	}, nil
}

// convertPath maps Horizon path assets to model assets
func convertPath(path []hProtocol.Asset) []model.Asset {
	out := make([]model.Asset, 0, len(path))
	for _, a := range path {
		if a.Type == model.AssetTypeNative {
			out = append(out, model.NativeAsset())
			continue
		}
		out = append(out, model.Asset{Type: a.Type, Code: a.Code, Issuer: a.Issuer})
	}
	return out
}

// wrapHorizonError adds Horizon problem details and result codes to err
func wrapHorizonError(msg string, err error) error {
	hErr := horizonclient.GetError(err)
	if hErr == nil {
		return fmt.Errorf("%s: %w", msg, err)
	}

	detail := hErr.Problem.Title
	if hErr.Problem.Detail != "" {
		detail += ": " + hErr.Problem.Detail
	}
	if codes, cErr := hErr.ResultCodes(); cErr == nil && codes != nil {
		detail += fmt.Sprintf(" (tx=%s ops=%v)", codes.TransactionCode, codes.OperationCodes)
	}
	return fmt.Errorf("%s: %s: %w", msg, detail, err)
}
