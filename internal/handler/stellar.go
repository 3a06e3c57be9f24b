package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/AlexZinkM/stellar-donate/internal/model"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"
	"github.com/AlexZinkM/stellar-donate/stellar"
)

// Controller is the part of stellar.Controller served over HTTP
type Controller interface {
	State() model.WalletState
	Connect(ctx context.Context, prompter wallet.Prompter) (bool, error)
	FundAccount(ctx context.Context, address string) error
	GenerateKeypair() (*model.Keypair, error)
	QueryConversion(ctx context.Context, sourceCode, sourceIssuer string) (*model.ConversionQuote, error)
	Donate(ctx context.Context, destination, sourceCode, sourceIssuer string) *model.SubmitResult
	ChangeTrust(ctx context.Context, destination, secret, assetCode, issuer string) *model.SubmitResult
}

// Error codes returned in model.ErrorResponse
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeWalletUnavailable = "WALLET_UNAVAILABLE"
	CodeLedgerError       = "LEDGER_ERROR"
	CodeInternal          = "INTERNAL"
	CodeRateLimited       = "RATE_LIMITED"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 4 << 10

// StellarHandler serves the donation page actions
type StellarHandler struct {
	ctrl Controller
}

// NewStellarHandler creates a new StellarHandler around ctrl
func NewStellarHandler(ctrl Controller) *StellarHandler {
	return &StellarHandler{ctrl: ctrl}
}

// WalletState handles GET /wallet
// @Summary      Get session state
// @Description  Returns connection status, public key, native balance, the last random destination and the last conversion quote
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletState
// @Router       /wallet [get]
func (h *StellarHandler) WalletState(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.ctrl.State())
}

// Connect handles POST /wallet/connect
// @Summary      Connect wallet
// @Description  Applies the outcome of the connect prompt. On accept the wallet public key and balance are loaded.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ConnectRequest  true  "Prompt outcome"
// @Success      200      {object}  model.WalletState
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallet/connect [post]
func (h *StellarHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req model.ConnectRequest
	if !decode(w, r, &req) {
		return
	}

	if _, err := h.ctrl.Connect(r.Context(), wallet.StaticPrompter(req.Accept)); err != nil {
		if errors.Is(err, wallet.ErrWalletUnavailable) {
			WriteError(w, http.StatusBadGateway, CodeWalletUnavailable, err)
			return
		}
		WriteError(w, http.StatusInternalServerError, CodeInternal, err)
		return
	}

	WriteJSON(w, http.StatusOK, h.ctrl.State())
}

// Fund handles POST /faucet
// @Summary      Fund test account
// @Description  Asks the test network faucet to fund the address. Faucet failures are only logged.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.FundRequest  true  "Account to fund"
// @Success      202
// @Failure      400      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Router       /faucet [post]
func (h *StellarHandler) Fund(w http.ResponseWriter, r *http.Request) {
	var req model.FundRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.ctrl.FundAccount(r.Context(), req.Address); err != nil {
		if errors.Is(err, stellar.ErrEmptyAddress) {
			WriteError(w, http.StatusBadRequest, CodeBadRequest, err)
			return
		}
		WriteError(w, http.StatusInternalServerError, CodeInternal, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Keypair handles POST /keypair
// @Summary      Generate random destination
// @Description  Generates a throwaway keypair, remembers its public key as the random destination and returns both keys with a QR code
// @Tags         account
// @Produce      json
// @Success      200  {object}  model.Keypair
// @Failure      500  {object}  model.ErrorResponse
// @Router       /keypair [post]
func (h *StellarHandler) Keypair(w http.ResponseWriter, r *http.Request) {
	kp, err := h.ctrl.GenerateKeypair()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, CodeInternal, err)
		return
	}
	WriteJSON(w, http.StatusOK, kp)
}

// Conversion handles POST /conversion
// @Summary      Check conversion
// @Description  Finds the cheapest path paying the donation amount from the source asset. Empty source asset or XLM means native.
// @Tags         donation
// @Accept       json
// @Produce      json
// @Param        request  body      model.ConversionRequest  true  "Source asset"
// @Success      200      {object}  model.ConversionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /conversion [post]
func (h *StellarHandler) Conversion(w http.ResponseWriter, r *http.Request) {
	var req model.ConversionRequest
	if !decode(w, r, &req) {
		return
	}

	quote, err := h.ctrl.QueryConversion(r.Context(), req.SourceAsset, req.SourceIssuer)
	if err != nil {
		if errors.Is(err, model.ErrInvalidAsset) {
			WriteError(w, http.StatusBadRequest, CodeBadRequest, err)
			return
		}
		WriteError(w, http.StatusBadGateway, CodeLedgerError, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.ConversionResponse{
		Quote:     quote,
		Rate:      quote.RateDisplay(),
		Deduction: quote.DeductionDisplay(),
	})
}

// Donate handles POST /donate
// @Summary      Donate
// @Description  Sends the donation as a path payment signed by the connected wallet. submitted=false means the transaction failed; the reason is in the server log.
// @Tags         donation
// @Accept       json
// @Produce      json
// @Param        request  body      model.DonateRequest  true  "Destination and source asset"
// @Success      200      {object}  model.SubmitResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /donate [post]
func (h *StellarHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req model.DonateRequest
	if !decode(w, r, &req) {
		return
	}

	res := h.ctrl.Donate(r.Context(), req.Destination, req.SourceAsset, req.SourceIssuer)
	WriteJSON(w, http.StatusOK, model.SubmitResponse{Submitted: res != nil, Result: res})
}

// ChangeTrust handles POST /trustline
// @Summary      Add trustline
// @Description  Adds a trustline to the destination account, signed locally with the given secret key. submitted=false means the transaction failed.
// @Tags         donation
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChangeTrustRequest  true  "Account, secret and asset"
// @Success      200      {object}  model.SubmitResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /trustline [post]
func (h *StellarHandler) ChangeTrust(w http.ResponseWriter, r *http.Request) {
	var req model.ChangeTrustRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Destination) == "" {
		WriteError(w, http.StatusBadRequest, CodeBadRequest, stellar.ErrEmptyAddress)
		return
	}

	res := h.ctrl.ChangeTrust(r.Context(), req.Destination, req.Secret, req.Asset, req.Issuer)
	WriteJSON(w, http.StatusOK, model.SubmitResponse{Submitted: res != nil, Result: res})
}

// WriteJSON writes v as a JSON body with status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a model.ErrorResponse
func WriteError(w http.ResponseWriter, status int, code string, err error) {
	WriteJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, CodeBadRequest, err)
			return false
		}
		WriteError(w, http.StatusBadRequest, CodeBadRequest, err)
		return false
	}
	return true
}
