package model

import (
	"fmt"
	"math/big"
)

// NotComputed is displayed while no conversion path is known.
const NotComputed = "not yet computed"

// PaymentPath is one record returned by a strict-receive path query.
type PaymentPath struct {
	Path              []Asset `json:"path"`
	SourceAmount      string  `json:"source_amount"`
	DestinationAmount string  `json:"destination_amount"`
}

// ConversionQuote is the outcome of the last conversion query.
// Found is false when the ledger returned no path; Path is then nil.
type ConversionQuote struct {
	SourceAsset       Asset   `json:"sourceAsset"`
	DestinationAsset  Asset   `json:"destinationAsset"`
	Found             bool    `json:"found"`
	Path              []Asset `json:"path"`
	SourceAmount      string  `json:"sourceAmount,omitempty"`
	DestinationAmount string  `json:"destinationAmount"`
}

// Rate returns how many destination units one source unit buys, with 7 decimals.
// ok is false when no path was found or the amounts do not parse.
func (q *ConversionQuote) Rate() (rate string, ok bool) {
	if q == nil || !q.Found {
		return "", false
	}
	src, okSrc := new(big.Rat).SetString(q.SourceAmount)
	dst, okDst := new(big.Rat).SetString(q.DestinationAmount)
	if !okSrc || !okDst || src.Sign() == 0 {
		return "", false
	}
	return new(big.Rat).Quo(dst, src).FloatString(7), true
}

// RateDisplay renders "1 XLM = 0.5000000 USDC" or NotComputed.
func (q *ConversionQuote) RateDisplay() string {
	rate, ok := q.Rate()
	if !ok {
		return NotComputed
	}
	return fmt.Sprintf("1 %s = %s %s", q.SourceAsset.DisplayCode(), rate, q.DestinationAsset.DisplayCode())
}

// DeductionDisplay renders the approximate amount deducted from the sender.
func (q *ConversionQuote) DeductionDisplay() string {
	if q == nil || !q.Found {
		return NotComputed
	}
	return fmt.Sprintf("%s %s", q.SourceAmount, q.SourceAsset.DisplayCode())
}
