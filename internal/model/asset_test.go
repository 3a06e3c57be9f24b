package model

import (
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "GBBD47IF6LWK7P7MDEVSCWR7DPUWV3NY3DTQEVFL4NAT4AQH3ZLLFLA5"

func TestResolveSourceAsset(t *testing.T) {
	a, err := ResolveSourceAsset("XLM", "")
	require.NoError(t, err)
	assert.True(t, a.IsNative())
	assert.Equal(t, "native", a.String())

	a, err = ResolveSourceAsset("", "ignored")
	require.NoError(t, err)
	assert.True(t, a.IsNative())

	a, err = ResolveSourceAsset("USDC", testIssuer)
	require.NoError(t, err)
	assert.Equal(t, AssetTypeCredit4, a.Type)
	assert.Equal(t, "USDC:"+testIssuer, a.String())

	a, err = ResolveSourceAsset("LONGERCODE", keypair.MustRandom().Address())
	require.NoError(t, err)
	assert.Equal(t, AssetTypeCredit12, a.Type)
}

func TestResolveSourceAssetInvalid(t *testing.T) {
	_, err := ResolveSourceAsset("USDC", "")
	assert.ErrorIs(t, err, ErrInvalidAsset)

	_, err = ResolveSourceAsset("WAYTOOLONGCODE", testIssuer)
	assert.ErrorIs(t, err, ErrInvalidAsset)
}

func TestNativeBalance(t *testing.T) {
	acc := &Account{Balances: []Balance{
		{AssetType: AssetTypeCredit4, AssetCode: "USDC", Balance: "3.0000000"},
		{AssetType: AssetTypeNative, Balance: "9999.9999900"},
	}}
	assert.Equal(t, "9999.9999900", acc.NativeBalance())
	assert.Equal(t, "0", (&Account{}).NativeBalance())
}

func TestQuoteDisplay(t *testing.T) {
	var missing *ConversionQuote
	assert.Equal(t, NotComputed, missing.RateDisplay())
	assert.Equal(t, NotComputed, (&ConversionQuote{Found: false}).DeductionDisplay())

	usdc, err := NewCreditAsset("USDC", testIssuer)
	require.NoError(t, err)
	q := &ConversionQuote{
		SourceAsset:       NativeAsset(),
		DestinationAsset:  usdc,
		Found:             true,
		SourceAmount:      "20.0000000",
		DestinationAmount: "10",
	}
	assert.Equal(t, "1 XLM = 0.5000000 USDC", q.RateDisplay())
	assert.Equal(t, "20.0000000 XLM", q.DeductionDisplay())

	q.SourceAmount = "0"
	assert.Equal(t, NotComputed, q.RateDisplay())
}
