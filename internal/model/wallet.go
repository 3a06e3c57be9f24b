package model

// CWTFile represents .cwt keystore file structure
type CWTFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
	ScryptN    int    `json:"scryptN,omitempty"` // 0 means the default cost
}

// WalletData represents decrypted wallet data
type WalletData struct {
	Seed      []byte `json:"seed"` // secret seed (S...), stored as base64 in JSON
	CreatedAt string `json:"createdAt"`
}
