package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexZinkM/stellar-donate/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccount = "GBBD47IF6LWK7P7MDEVSCWR7DPUWV3NY3DTQEVFL4NAT4AQH3ZLLFLA5"
	usdcIssuer  = "GBBD47IF6LWK7P7MDEVSCWR7DPUWV3NY3DTQEVFL4NAT4AQH3ZLLFLA5"
)

func newTestHorizon(t *testing.T, handler http.HandlerFunc) *HorizonClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHorizonClient(srv.URL, 5*time.Second)
}

func TestLoadAccount(t *testing.T) {
	c := newTestHorizon(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/"+testAccount, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "` + testAccount + `",
			"account_id": "` + testAccount + `",
			"sequence": "4294967296",
			"balances": [
				{"balance": "5.0000000", "asset_type": "credit_alphanum4", "asset_code": "USDC", "asset_issuer": "` + usdcIssuer + `"},
				{"balance": "9999.9999900", "asset_type": "native"}
			]
		}`))
	})

	acc, err := c.LoadAccount(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, testAccount, acc.ID)
	assert.Equal(t, int64(4294967296), acc.Sequence)
	require.Len(t, acc.Balances, 2)
	assert.Equal(t, "USDC", acc.Balances[0].AssetCode)
	assert.Equal(t, "9999.9999900", acc.NativeBalance())
}

func TestFetchBaseFee(t *testing.T) {
	cases := map[string]int64{
		`"250"`: 250,
		`"0"`:   100, // floored at the network minimum
	}
	for body, want := range cases {
		c := newTestHorizon(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/fee_stats", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"last_ledger_base_fee": ` + body + `}`))
		})

		got, err := c.FetchBaseFee(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFindPaymentPaths(t *testing.T) {
	c := newTestHorizon(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/paths/strict-receive", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "native", q.Get("source_assets"))
		assert.Equal(t, "USDC", q.Get("destination_asset_code"))
		assert.Equal(t, "10", q.Get("destination_amount"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_embedded": {"records": [
			{
				"source_asset_type": "native",
				"source_amount": "20.0000000",
				"destination_asset_type": "credit_alphanum4",
				"destination_asset_code": "USDC",
				"destination_asset_issuer": "` + usdcIssuer + `",
				"destination_amount": "10.0000000",
				"path": [
					{"asset_type": "credit_alphanum4", "asset_code": "EURT", "asset_issuer": "` + usdcIssuer + `"},
					{"asset_type": "native"}
				]
			}
		]}}`))
	})

	usdc, err := model.NewCreditAsset("USDC", usdcIssuer)
	require.NoError(t, err)

	paths, err := c.FindPaymentPaths(context.Background(), []model.Asset{model.NativeAsset()}, usdc, "10")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "20.0000000", paths[0].SourceAmount)
	require.Len(t, paths[0].Path, 2)
	assert.Equal(t, "EURT", paths[0].Path[0].Code)
	assert.True(t, paths[0].Path[1].IsNative())
}

func TestFindPaymentPathsEmpty(t *testing.T) {
	c := newTestHorizon(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_embedded": {"records": []}}`))
	})

	usdc, err := model.NewCreditAsset("USDC", usdcIssuer)
	require.NoError(t, err)

	paths, err := c.FindPaymentPaths(context.Background(), []model.Asset{model.NativeAsset()}, usdc, "10")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSubmitTransaction(t *testing.T) {
	c := newTestHorizon(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "AAAAenvelope", r.PostForm.Get("tx"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hash": "abc123", "ledger": 42, "successful": true}`))
	})

	res, err := c.SubmitTransaction(context.Background(), "AAAAenvelope")
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.Hash)
	assert.Equal(t, int32(42), res.Ledger)
	assert.True(t, res.Successful)
}

func TestSubmitTransactionProblem(t *testing.T) {
	c := newTestHorizon(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type": "https://stellar.org/horizon-errors/transaction_failed", "title": "Transaction Failed", "status": 400}`))
	})

	_, err := c.SubmitTransaction(context.Background(), "AAAAenvelope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transaction Failed")
}

func TestCanceledContext(t *testing.T) {
	c := newTestHorizon(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.LoadAccount(ctx, testAccount)
	assert.ErrorIs(t, err, context.Canceled)
}
