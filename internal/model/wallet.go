package model

import (
	"encoding/hex"
	"fmt"
	"time"
)

// ExportMode selects how an exported wallet is encrypted
type ExportMode string

const (
	// ExportModeScrypt derives the key from the password (scrypt + AES-GCM)
	ExportModeScrypt ExportMode = "scrypt"
	// ExportModeFernet uses a random key unrelated to the password (legacy files)
	ExportModeFernet ExportMode = "fernet"
)

// Valid reports whether m is a known export mode
func (m ExportMode) Valid() bool {
	return m == ExportModeScrypt || m == ExportModeFernet
}

// Wallet is a generated keypair with its derived address
type Wallet struct {
	PrivateKey []byte // 32-byte secp256k1 scalar
	PublicKey  []byte // 65-byte uncompressed point
	Address    string // 40 hex chars
	QR         string // base64 PNG of Address
	CreatedAt  time.Time
}

// Summary renders the plaintext that gets encrypted on export
func (w *Wallet) Summary() string {
	return fmt.Sprintf("Private Key: %s\nPublic Key: %s\nWallet Address: %s\n",
		hex.EncodeToString(w.PrivateKey),
		hex.EncodeToString(w.PublicKey),
		w.Address,
	)
}

// Wipe zeroes the private key in place
func (w *Wallet) Wipe() {
	clear(w.PrivateKey)
}

// ExportBundle represents .cwt file structure
type ExportBundle struct {
	ID         string     `json:"id"`
	Version    int        `json:"version"`
	Mode       ExportMode `json:"mode"`
	Address    string     `json:"address,omitempty"`
	QR         string     `json:"QR,omitempty"`
	Salt       string     `json:"salt,omitempty"`
	Nonce      string     `json:"nonce,omitempty"`
	ScryptN    int        `json:"scrypt_N,omitempty"`
	ScryptR    int        `json:"scrypt_r,omitempty"`
	ScryptP    int        `json:"scrypt_p,omitempty"`
	CipherText string     `json:"cipherText"`
	CreatedAt  string     `json:"createdAt"`

	// Key is the legacy Fernet key. It is handed to the caller once and never
	// written to disk.
	Key []byte `json:"-"`
}
