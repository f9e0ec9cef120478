package model

// KeystoreFile represents the encrypted keystore file structure
type KeystoreFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// KeystoreData represents decrypted keystore data
type KeystoreData struct {
	PrivateKey []byte `json:"privateKey"` // 32-byte secp256k1 scalar (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}

// WalletInfoResponse represents response for GET /tron/wallet
type WalletInfoResponse struct {
	Address     string `json:"address"`
	TRXBalance  string `json:"trx_balance"`
	USDTBalance string `json:"usdt_balance"`
	QR          string `json:"qr,omitempty"` // base64 PNG of the address
	Summary     string `json:"summary"`
}
