package wallet

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AlexZinkM/secp-wallet/internal/crypto"
	"github.com/AlexZinkM/secp-wallet/internal/model"
)

// bundleVersion is the current .cwt format version
const bundleVersion = 1

// ErrEmptyPassword is returned when an export is requested without a password
var ErrEmptyPassword = errors.New("password cannot be empty")

// ExportOptions configures ExportWallet
type ExportOptions struct {
	Mode model.ExportMode
	KDF  crypto.KDFParams
	// Address and QR are copied into the bundle in clear text so the file
	// can be identified without decrypting it.
	Address string
	QR      string
}

// ExportWallet encrypts plaintext for download.
//
// In scrypt mode the key is derived from password and only salt, nonce and
// KDF parameters are stored. In fernet mode a random key encrypts the data and
// is returned in bundle.Key; password is required but does not protect the file.
// password must be []byte for security (caller should zero it after use)
func ExportWallet(plaintext string, password []byte, opts ExportOptions) (*model.ExportBundle, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	data := []byte(plaintext)
	defer clear(data)

	bundle := &model.ExportBundle{
		ID:        uuid.NewString(),
		Version:   bundleVersion,
		Mode:      opts.Mode,
		Address:   opts.Address,
		QR:        opts.QR,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	switch opts.Mode {
	case model.ExportModeScrypt:
		sealed, err := crypto.EncryptWithPassword(data, password, opts.KDF)
		if err != nil {
			return nil, err
		}
		bundle.Salt = base64.StdEncoding.EncodeToString(sealed.Salt)
		bundle.Nonce = base64.StdEncoding.EncodeToString(sealed.Nonce)
		bundle.ScryptN = sealed.Params.N
		bundle.ScryptR = sealed.Params.R
		bundle.ScryptP = sealed.Params.P
		bundle.CipherText = base64.StdEncoding.EncodeToString(sealed.CipherText)

	case model.ExportModeFernet:
		token, key, err := crypto.EncryptWithRandomKey(data)
		if err != nil {
			return nil, err
		}
		log.Warn().Str("id", bundle.ID).Msg("fernet export: file is protected by a random key, not by the password")
		bundle.CipherText = string(token)
		bundle.Key = key

	default:
		return nil, fmt.Errorf("%w: unknown export mode %q", crypto.ErrEncryptionFailure, opts.Mode)
	}

	return bundle, nil
}

// ExportGenerated exports the summary of w, tagging the bundle with its address and QR code
func ExportGenerated(w *model.Wallet, password []byte, opts ExportOptions) (*model.ExportBundle, error) {
	opts.Address = w.Address
	opts.QR = w.QR
	return ExportWallet(w.Summary(), password, opts)
}

// OpenExport decrypts a bundle. secret is the password for scrypt bundles and
// the returned key for fernet bundles.
func OpenExport(b *model.ExportBundle, secret []byte) (string, error) {
	if b == nil {
		return "", fmt.Errorf("%w: bundle is nil", crypto.ErrMalformedBundle)
	}
	if b.Version > bundleVersion {
		return "", fmt.Errorf("%w: unsupported bundle version %d", crypto.ErrMalformedBundle, b.Version)
	}

	var (
		plaintext []byte
		err       error
	)
	switch b.Mode {
	case model.ExportModeScrypt:
		sealed, decodeErr := decodeSealed(b)
		if decodeErr != nil {
			return "", decodeErr
		}
		plaintext, err = crypto.DecryptWithPassword(sealed, secret)

	case model.ExportModeFernet:
		plaintext, err = crypto.DecryptWithKey([]byte(b.CipherText), secret)

	default:
		return "", fmt.Errorf("%w: unknown export mode %q", crypto.ErrMalformedBundle, b.Mode)
	}
	if err != nil {
		return "", err
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	return string(plaintext), nil
}

// Reencrypt opens a legacy fernet bundle with its key and seals the same
// plaintext under password, keeping the bundle's address and QR code.
func Reencrypt(b *model.ExportBundle, fernetKey, password []byte, kdf crypto.KDFParams) (*model.ExportBundle, error) {
	if b == nil || b.Mode != model.ExportModeFernet {
		return nil, fmt.Errorf("%w: only fernet bundles can be re-encrypted", crypto.ErrMalformedBundle)
	}

	plaintext, err := OpenExport(b, fernetKey)
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy bundle: %w", err)
	}

	return ExportWallet(plaintext, password, ExportOptions{
		Mode:    model.ExportModeScrypt,
		KDF:     kdf,
		Address: b.Address,
		QR:      b.QR,
	})
}

func decodeSealed(b *model.ExportBundle) (*crypto.Sealed, error) {
	salt, err := base64.StdEncoding.DecodeString(b.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode salt: %v", crypto.ErrMalformedBundle, err)
	}

	nonce, err := base64.StdEncoding.DecodeString(b.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode nonce: %v", crypto.ErrMalformedBundle, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(b.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode ciphertext: %v", crypto.ErrMalformedBundle, err)
	}

	return &crypto.Sealed{
		Salt:       salt,
		Nonce:      nonce,
		CipherText: ciphertext,
		Params:     crypto.KDFParams{N: b.ScryptN, R: b.ScryptR, P: b.ScryptP},
	}, nil
}
