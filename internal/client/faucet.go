package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	friendbotURL = "https://friendbot.stellar.org"
)

// FaucetClient client for the test network faucet (friendbot)
type FaucetClient struct {
	baseURL string
	client  *http.Client
}

// NewFaucetClient creates a new faucet client. Empty baseURL means friendbot.
func NewFaucetClient(baseURL string, timeout time.Duration) *FaucetClient {
	if baseURL == "" {
		baseURL = friendbotURL
	}
	return &FaucetClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fund asks the faucet to fund address. The response body is discarded;
// only transport failures are reported.
func (c *FaucetClient) Fund(ctx context.Context, address string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid faucet url: %w", err)
	}
	q := u.Query()
	q.Set("addr", address)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build faucet request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call faucet: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
