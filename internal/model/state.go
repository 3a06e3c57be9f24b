package model

// WalletState is a snapshot of the controller's session state
type WalletState struct {
	Connected         bool             `json:"connected"`
	PublicKey         string           `json:"publicKey,omitempty"`
	Balance           string           `json:"balance"`
	RandomDestination string           `json:"randomDestination,omitempty"`
	Quote             *ConversionQuote `json:"quote,omitempty"`
}
