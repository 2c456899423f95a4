package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // address format is defined over RIPEMD-160
)

// AddressLen is the length of a hex-encoded address.
const AddressLen = ripemd160.Size * 2

// DeriveAddress returns hex(RIPEMD160(SHA256(pub))).
// There is no version byte and no checksum.
func DeriveAddress(pub []byte) (string, error) {
	if len(pub) != PublicKeyLen || pub[0] != uncompressedPrefix {
		return "", fmt.Errorf("%w: expected %d bytes with 0x04 prefix", ErrInvalidPublicKey, PublicKeyLen)
	}

	sum := sha256.Sum256(pub)

	h := ripemd160.New()
	h.Write(sum[:])

	return hex.EncodeToString(h.Sum(nil)), nil
}
