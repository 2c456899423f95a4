package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for exported wallets
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) keeps brute force expensive while
	// still running on phones. N=2^20 (~1GB) fails on mobile due to
	// per-app memory limits.
	DefaultScryptN = 1 << 18
	DefaultScryptR = 8
	DefaultScryptP = 1

	// Upper bounds for parameters read back from a bundle. scrypt needs
	// 128*r*N bytes of memory, which must stay under maxScryptMemory.
	maxScryptN      = 1 << 20
	maxScryptR      = 32
	maxScryptP      = 16
	maxScryptMemory = 1 << 30

	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// KDFParams are the scrypt cost parameters stored next to the ciphertext.
type KDFParams struct {
	N int
	R int
	P int
}

// DefaultKDFParams returns the production scrypt parameters.
func DefaultKDFParams() KDFParams {
	return KDFParams{N: DefaultScryptN, R: DefaultScryptR, P: DefaultScryptP}
}

// Validate checks that the parameters are accepted by scrypt and that
// deriving a key with them stays within the memory budget.
func (p KDFParams) Validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return errors.New("scrypt N must be a power of two greater than 1")
	}
	if p.N > maxScryptN {
		return fmt.Errorf("scrypt N must not exceed %d", maxScryptN)
	}
	if p.R <= 0 || p.P <= 0 {
		return errors.New("scrypt r and p must be positive")
	}
	if p.R > maxScryptR || p.P > maxScryptP {
		return fmt.Errorf("scrypt r must not exceed %d and p must not exceed %d", maxScryptR, maxScryptP)
	}
	if 128*int64(p.R)*int64(p.N) > maxScryptMemory {
		return fmt.Errorf("scrypt parameters need more than %d bytes of memory", maxScryptMemory)
	}
	return nil
}

// Sealed is a password-encrypted payload together with everything needed to open it
// except the password.
type Sealed struct {
	Salt       []byte
	Nonce      []byte
	CipherText []byte
	Params     KDFParams
}

// EncryptWithPassword derives an AES-256 key from password with scrypt and a fresh
// random salt, then seals plaintext with AES-GCM.
// password must be []byte for security (caller should zero it after use)
func EncryptWithPassword(plaintext, password []byte, params KDFParams) (*Sealed, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: failed to generate salt: %v", ErrEntropyUnavailable, err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: failed to generate nonce: %v", ErrEntropyUnavailable, err)
	}

	aesGCM, err := newPasswordAEAD(password, salt, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	return &Sealed{
		Salt:       salt,
		Nonce:      nonce,
		CipherText: aesGCM.Seal(nil, nonce, plaintext, salt),
		Params:     params,
	}, nil
}

// newPasswordAEAD derives the key and wraps it in AES-GCM. The derived key is wiped
// once the cipher has been keyed.
func newPasswordAEAD(password, salt []byte, params KDFParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
