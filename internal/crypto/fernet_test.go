package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptWithRandomKeyRoundTrip(t *testing.T) {
	tokA, keyA, err := EncryptWithRandomKey([]byte("hello wallet"))
	require.NoError(t, err)
	tokB, keyB, err := EncryptWithRandomKey([]byte("hello wallet"))
	require.NoError(t, err)

	assert.NotEqual(t, tokA, tokB)
	assert.NotEqual(t, keyA, keyB)
	assert.Len(t, keyA, 44) // URL-safe base64 of 32 bytes

	pt, err := DecryptWithKey(tokA, keyA)
	require.NoError(t, err)
	assert.Equal(t, "hello wallet", string(pt))

	pt, err = DecryptWithKey(tokB, keyB)
	require.NoError(t, err)
	assert.Equal(t, "hello wallet", string(pt))
}

func TestEncryptWithRandomKeyEmptyPlaintext(t *testing.T) {
	tok, key, err := EncryptWithRandomKey([]byte{})
	require.NoError(t, err)

	pt, err := DecryptWithKey(tok, key)
	require.NoError(t, err)
	assert.Empty(t, pt)
}

func TestDecryptWithKeyWrongKey(t *testing.T) {
	tok, _, err := EncryptWithRandomKey([]byte("secret"))
	require.NoError(t, err)
	_, other, err := EncryptWithRandomKey([]byte("other"))
	require.NoError(t, err)

	_, err = DecryptWithKey(tok, other)
	assert.ErrorIs(t, err, ErrDecryptionFailure)

	_, err = DecryptWithKey(tok, []byte("not a key"))
	assert.ErrorIs(t, err, ErrDecryptionFailure)
}

func TestDecryptWithKeyTampered(t *testing.T) {
	tok, key, err := EncryptWithRandomKey([]byte("secret"))
	require.NoError(t, err)

	// flip a character inside the base64 payload
	i := len(tok) / 2
	if tok[i] == 'A' {
		tok[i] = 'B'
	} else {
		tok[i] = 'A'
	}

	_, err = DecryptWithKey(tok, key)
	assert.ErrorIs(t, err, ErrDecryptionFailure)
}
