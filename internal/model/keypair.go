package model

// Keypair represents a freshly generated demonstration keypair.
// It is never persisted.
type Keypair struct {
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
	QR        string `json:"qr"` // base64 PNG of PublicKey
}

// GenerateWalletResponse represents response for wallet init
type GenerateWalletResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}
