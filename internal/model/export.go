package model

// ExportRequest represents request for POST /wallet/export
type ExportRequest struct {
	PrivateKey string `json:"privateKey" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// ExportResponse represents response for POST /wallet/export.
// Key is only set for fernet exports.
type ExportResponse struct {
	Bundle *ExportBundle `json:"bundle"`
	Key    string        `json:"key,omitempty"`
}

// DecryptRequest represents request for POST /wallet/decrypt.
// Password opens scrypt bundles, Key opens fernet bundles.
type DecryptRequest struct {
	Bundle   *ExportBundle `json:"bundle" binding:"required"`
	Password string        `json:"password,omitempty"`
	Key      string        `json:"key,omitempty"`
}

// DecryptResponse represents response for POST /wallet/decrypt
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}
