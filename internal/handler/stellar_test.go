package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/stellar-donate/internal/model"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"
	"github.com/AlexZinkM/stellar-donate/stellar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	state      model.WalletState
	connectErr error
	fundErr    error
	quote      *model.ConversionQuote
	quoteErr   error
	result     *model.SubmitResult

	accepted   *bool
	funded     []string
	trustCalls int
}

func (f *fakeController) State() model.WalletState { return f.state }

func (f *fakeController) Connect(ctx context.Context, p wallet.Prompter) (bool, error) {
	ok, _ := p.Confirm(ctx, "connect?")
	f.accepted = &ok
	if f.connectErr != nil {
		return false, f.connectErr
	}
	if ok {
		f.state.Connected = true
	}
	return ok, nil
}

func (f *fakeController) FundAccount(_ context.Context, address string) error {
	if address == "" {
		return stellar.ErrEmptyAddress
	}
	f.funded = append(f.funded, address)
	return f.fundErr
}

func (f *fakeController) GenerateKeypair() (*model.Keypair, error) {
	return &model.Keypair{PublicKey: "GPUB", SecretKey: "SSEC", QR: "qr"}, nil
}

func (f *fakeController) QueryConversion(context.Context, string, string) (*model.ConversionQuote, error) {
	return f.quote, f.quoteErr
}

func (f *fakeController) Donate(context.Context, string, string, string) *model.SubmitResult {
	return f.result
}

func (f *fakeController) ChangeTrust(context.Context, string, string, string, string) *model.SubmitResult {
	f.trustCalls++
	return f.result
}

func serve(t *testing.T, fn http.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWalletState(t *testing.T) {
	ctrl := &fakeController{state: model.WalletState{Connected: true, PublicKey: "GPUB", Balance: "12.5000000"}}
	h := NewStellarHandler(ctrl)

	rec := serve(t, h.WalletState, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var state model.WalletState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	assert.Equal(t, ctrl.state, state)
}

func TestConnect(t *testing.T) {
	ctrl := &fakeController{}
	h := NewStellarHandler(ctrl)

	rec := serve(t, h.Connect, http.MethodPost, `{"accept":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, ctrl.accepted)
	assert.True(t, *ctrl.accepted)
	assert.Contains(t, rec.Body.String(), `"connected":true`)
}

func TestConnectWalletUnavailable(t *testing.T) {
	ctrl := &fakeController{connectErr: fmt.Errorf("failed to get public key: %w", wallet.ErrWalletUnavailable)}
	h := NewStellarHandler(ctrl)

	rec := serve(t, h.Connect, http.MethodPost, `{"accept":true}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, CodeWalletUnavailable, decodeError(t, rec).Code)
}

func TestConnectBadBody(t *testing.T) {
	h := NewStellarHandler(&fakeController{})

	rec := serve(t, h.Connect, http.MethodPost, `{`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeBadRequest, decodeError(t, rec).Code)
}

func TestFund(t *testing.T) {
	ctrl := &fakeController{}
	h := NewStellarHandler(ctrl)

	rec := serve(t, h.Fund, http.MethodPost, `{"address":"GABC"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"GABC"}, ctrl.funded)

	rec = serve(t, h.Fund, http.MethodPost, `{"address":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, stellar.ErrEmptyAddress.Error(), decodeError(t, rec).Error)
}

func TestKeypair(t *testing.T) {
	h := NewStellarHandler(&fakeController{})

	rec := serve(t, h.Keypair, http.MethodPost, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var kp model.Keypair
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&kp))
	assert.Equal(t, "GPUB", kp.PublicKey)
	assert.Equal(t, "SSEC", kp.SecretKey)
}

func TestConversion(t *testing.T) {
	ctrl := &fakeController{quote: &model.ConversionQuote{
		SourceAsset:       model.NativeAsset(),
		DestinationAsset:  model.Asset{Type: model.AssetTypeCredit4, Code: "USDC", Issuer: "GISSUER"},
		Found:             true,
		SourceAmount:      "20.0000000",
		DestinationAmount: "10.0000000",
	}}
	h := NewStellarHandler(ctrl)

	rec := serve(t, h.Conversion, http.MethodPost, `{"sourceAsset":"XLM"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ConversionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ctrl.quote.RateDisplay(), resp.Rate)
	assert.Equal(t, ctrl.quote.DeductionDisplay(), resp.Deduction)
	assert.True(t, resp.Quote.Found)
}

func TestConversionErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid asset", fmt.Errorf("bad issuer: %w", model.ErrInvalidAsset), http.StatusBadRequest, CodeBadRequest},
		{"ledger", errors.New("horizon unavailable"), http.StatusBadGateway, CodeLedgerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewStellarHandler(&fakeController{quoteErr: tc.err})

			rec := serve(t, h.Conversion, http.MethodPost, `{"sourceAsset":"USDC","sourceIssuer":"x"}`)
			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Code)
		})
	}
}

func TestDonate(t *testing.T) {
	ctrl := &fakeController{result: &model.SubmitResult{Hash: "abc", Ledger: 3, Successful: true}}
	h := NewStellarHandler(ctrl)

	rec := serve(t, h.Donate, http.MethodPost, `{"destination":"GDEST"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Submitted)
	assert.Equal(t, "abc", resp.Result.Hash)
}

func TestDonateFailureIsReportedAsNotSubmitted(t *testing.T) {
	h := NewStellarHandler(&fakeController{})

	rec := serve(t, h.Donate, http.MethodPost, `{"destination":"GDEST"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"submitted":false}`, rec.Body.String())
}

func TestChangeTrust(t *testing.T) {
	ctrl := &fakeController{result: &model.SubmitResult{Hash: "abc"}}
	h := NewStellarHandler(ctrl)

	rec := serve(t, h.ChangeTrust, http.MethodPost, `{"destination":" ","secret":"S","asset":"USDC","issuer":"G"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, ctrl.trustCalls)

	rec = serve(t, h.ChangeTrust, http.MethodPost, `{"destination":"GDEST","secret":"S","asset":"USDC","issuer":"G"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ctrl.trustCalls)
	assert.Contains(t, rec.Body.String(), `"submitted":true`)
}

func TestBodyTooLarge(t *testing.T) {
	ctrl := &fakeController{}
	h := NewStellarHandler(ctrl)

	body := `{"address":"` + strings.Repeat("G", maxBodyBytes) + `"}`
	rec := serve(t, h.Fund, http.MethodPost, body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, CodeBadRequest, decodeError(t, rec).Code)
	assert.Empty(t, ctrl.funded)
}
