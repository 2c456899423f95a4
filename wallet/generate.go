package wallet

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"

	"github.com/AlexZinkM/secp-wallet/internal/crypto"
	"github.com/AlexZinkM/secp-wallet/internal/model"
)

// maxKeyAttempts bounds regeneration after an out-of-range scalar.
// A uniformly random 32-byte value is invalid with probability ~2^-128.
const maxKeyAttempts = 8

// GenerateOptions configures GenerateWallet
type GenerateOptions struct {
	// QRSize is the PNG edge in pixels; 0 skips the QR code
	QRSize int
	// Rand overrides the entropy source; nil means crypto/rand
	Rand io.Reader
}

// GenerateWallet creates a new secp256k1 keypair and derives its address.
// Out-of-range scalars are regenerated transparently; an entropy failure is
// returned immediately and must not be retried.
func GenerateWallet(opts GenerateOptions) (*model.Wallet, error) {
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}

	for attempt := 1; attempt <= maxKeyAttempts; attempt++ {
		priv, err := crypto.GeneratePrivateKeyFrom(r)
		if err != nil {
			return nil, err
		}

		w, err := WalletFromPrivateKey(priv, opts.QRSize)
		if errors.Is(err, crypto.ErrInvalidScalar) {
			clear(priv)
			log.Warn().Int("attempt", attempt).Msg("generated scalar out of range, regenerating")
			continue
		}
		if err != nil {
			clear(priv)
			return nil, err
		}

		log.Debug().Str("address", w.Address).Msg("wallet generated")
		return w, nil
	}

	return nil, fmt.Errorf("%w: no valid scalar after %d attempts", crypto.ErrInvalidScalar, maxKeyAttempts)
}

// WalletFromPrivateKey derives the public key, address and QR code for priv.
// The returned wallet keeps a reference to priv (caller wipes it via Wallet.Wipe).
func WalletFromPrivateKey(priv []byte, qrSize int) (*model.Wallet, error) {
	pub, err := crypto.DerivePublicKey(priv)
	if err != nil {
		return nil, err
	}

	address, err := crypto.DeriveAddress(pub)
	if err != nil {
		return nil, err
	}

	w := &model.Wallet{
		PrivateKey: priv,
		PublicKey:  pub,
		Address:    address,
		CreatedAt:  time.Now().UTC(),
	}

	if qrSize > 0 {
		png, err := GenerateQRCode(address, qrSize)
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
		w.QR = base64.StdEncoding.EncodeToString(png)
	}

	return w, nil
}

// GenerateQRCode renders text as a PNG QR code
func GenerateQRCode(text string, size int) ([]byte, error) {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}
