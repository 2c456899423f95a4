package model

// GenerateResponse represents response for POST /wallet/generate
type GenerateResponse struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	CreatedAt  string `json:"createdAt"`
}

// AddressResponse represents response for GET /wallet/address
type AddressResponse struct {
	Address string `json:"address"`
}
