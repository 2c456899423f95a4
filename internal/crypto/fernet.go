package crypto

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// noTTL disables the Fernet timestamp check; exported wallets do not expire.
const noTTL = -1

// EncryptWithRandomKey seals plaintext under a freshly generated Fernet key and
// returns the token together with the URL-safe base64 key.
//
// The key does not depend on any password. This reproduces the behavior of
// existing legacy exports; new exports should use EncryptWithPassword.
func EncryptWithRandomKey(plaintext []byte) (token, key []byte, err error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to generate key: %v", ErrEntropyUnavailable, err)
	}

	token, err = fernet.EncryptAndSign(plaintext, &k)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncryptionFailure, err)
	}

	return token, []byte(k.Encode()), nil
}

// DecryptWithKey opens a Fernet token with the key returned by EncryptWithRandomKey.
func DecryptWithKey(token, key []byte) ([]byte, error) {
	k, err := fernet.DecodeKey(string(key))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed key", ErrDecryptionFailure)
	}

	plaintext := fernet.VerifyAndDecrypt(token, noTTL, []*fernet.Key{k})
	if plaintext == nil {
		return nil, ErrDecryptionFailure
	}
	return plaintext, nil
}
