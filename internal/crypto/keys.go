package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	PrivateKeyLen = 32
	PublicKeyLen  = 65

	// uncompressedPrefix marks an uncompressed SEC1 point encoding
	uncompressedPrefix = 0x04
)

// GeneratePrivateKey returns 32 bytes from the OS CSPRNG.
func GeneratePrivateKey() ([]byte, error) {
	return GeneratePrivateKeyFrom(rand.Reader)
}

// GeneratePrivateKeyFrom reads a private key from r.
// Any read failure is reported as ErrEntropyUnavailable.
func GeneratePrivateKeyFrom(r io.Reader) ([]byte, error) {
	priv := make([]byte, PrivateKeyLen)
	if _, err := io.ReadFull(r, priv); err != nil {
		clear(priv)
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return priv, nil
}

// ValidatePrivateKey checks that priv is a big-endian scalar in [1, n-1].
func ValidatePrivateKey(priv []byte) error {
	if len(priv) != PrivateKeyLen {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidScalar, PrivateKeyLen, len(priv))
	}

	var s btcec.ModNScalar
	defer s.Zero()
	if overflow := s.SetByteSlice(priv); overflow {
		return fmt.Errorf("%w: scalar is not below the curve order", ErrInvalidScalar)
	}
	if s.IsZero() {
		return fmt.Errorf("%w: scalar is zero", ErrInvalidScalar)
	}
	return nil
}

// DerivePublicKey computes priv*G and returns it as 0x04 || X || Y.
func DerivePublicKey(priv []byte) ([]byte, error) {
	if err := ValidatePrivateKey(priv); err != nil {
		return nil, err
	}

	privKey, pubKey := btcec.PrivKeyFromBytes(priv)
	defer privKey.Zero()

	return pubKey.SerializeUncompressed(), nil
}
