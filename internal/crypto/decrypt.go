package crypto

import "fmt"

// DecryptWithPassword opens a payload produced by EncryptWithPassword.
// password must be []byte for security (caller should zero it after use)
func DecryptWithPassword(s *Sealed, password []byte) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: sealed payload is nil", ErrMalformedBundle)
	}
	if len(s.Salt) == 0 {
		return nil, fmt.Errorf("%w: salt is missing", ErrMalformedBundle)
	}
	if len(s.Nonce) != nonceLen {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", ErrMalformedBundle, nonceLen)
	}
	if err := s.Params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBundle, err)
	}

	aesGCM, err := newPasswordAEAD(password, s.Salt, s.Params)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, s.Nonce, s.CipherText, s.Salt)
	if err != nil {
		return nil, ErrDecryptionFailure
	}
	return plaintext, nil
}
