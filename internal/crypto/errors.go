package crypto

import "errors"

var (
	// ErrEntropyUnavailable is returned when the OS random source cannot be read.
	// It is fatal: callers must not retry or substitute another source.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrInvalidScalar is returned for a private key that is not a 32-byte scalar in [1, n-1].
	ErrInvalidScalar = errors.New("invalid private key scalar")

	// ErrInvalidPublicKey is returned for anything other than a 65-byte uncompressed point.
	ErrInvalidPublicKey = errors.New("invalid uncompressed public key")

	// ErrMalformedBundle is returned for a sealed payload whose fields or KDF
	// parameters cannot be used, before any key derivation is attempted.
	ErrMalformedBundle = errors.New("malformed encrypted bundle")

	// ErrEncryptionFailure is returned when sealing a plaintext fails.
	ErrEncryptionFailure = errors.New("encryption failed")

	// ErrDecryptionFailure is returned for a wrong password/key or a modified ciphertext.
	ErrDecryptionFailure = errors.New("invalid password or corrupted ciphertext")
)
