package model

// SubmitResult is what the ledger reports for an accepted transaction.
type SubmitResult struct {
	Hash       string `json:"hash"`
	Ledger     int32  `json:"ledger"`
	Successful bool   `json:"successful"`
}

// FundRequest represents request for POST /faucet
type FundRequest struct {
	Address string `json:"address"`
}

// ConnectRequest represents the connect modal outcome for POST /wallet/connect
type ConnectRequest struct {
	Accept bool `json:"accept"`
}

// ConversionRequest represents request for POST /conversion
type ConversionRequest struct {
	SourceAsset  string `json:"sourceAsset"`
	SourceIssuer string `json:"sourceIssuer"`
}

// ConversionResponse represents response for POST /conversion
type ConversionResponse struct {
	Quote     *ConversionQuote `json:"quote"`
	Rate      string           `json:"rate"`
	Deduction string           `json:"deduction"`
}

// DonateRequest represents request for POST /donate
type DonateRequest struct {
	Destination  string `json:"destination"`
	SourceAsset  string `json:"sourceAsset"`
	SourceIssuer string `json:"sourceIssuer"`
}

// ChangeTrustRequest represents request for POST /trustline
type ChangeTrustRequest struct {
	Destination string `json:"destination"`
	Secret      string `json:"secret"`
	Asset       string `json:"asset"`
	Issuer      string `json:"issuer"`
}

// SubmitResponse represents response for POST /donate and POST /trustline.
// Submitted is false when the transaction failed anywhere along the way; details are only logged.
type SubmitResponse struct {
	Submitted bool          `json:"submitted"`
	Result    *SubmitResult `json:"result,omitempty"`
}
