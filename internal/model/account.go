package model

// Balance is one line of an account's balances
type Balance struct {
	AssetType   string `json:"asset_type"`
	AssetCode   string `json:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty"`
	Balance     string `json:"balance"`
}

// Account is a ledger account as loaded before building a transaction.
type Account struct {
	ID       string    `json:"id"`
	Sequence int64     `json:"sequence"`
	Balances []Balance `json:"balances"`
}

// NativeBalance returns the native balance, or "0" when the account holds none.
func (a *Account) NativeBalance() string {
	for _, b := range a.Balances {
		if b.AssetType == AssetTypeNative {
			return b.Balance
		}
	}
	return "0"
}
