package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// secp256k1 base point G, uncompressed
	generatorHex = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	// 2G, uncompressed
	doubleGeneratorHex = "04c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5" +
		"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"
	// (n-1)G = -G
	negGeneratorHex = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"b7c52588d95c3b9aa25b0403f1eef75702e84bb7597aabe663b82f6f04ef2777"

	curveOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func scalar(v byte) []byte {
	b := make([]byte, PrivateKeyLen)
	b[PrivateKeyLen-1] = v
	return b
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device not ready") }

func TestGeneratePrivateKey(t *testing.T) {
	a, err := GeneratePrivateKey()
	require.NoError(t, err)
	b, err := GeneratePrivateKey()
	require.NoError(t, err)

	assert.Len(t, a, PrivateKeyLen)
	assert.Len(t, b, PrivateKeyLen)
	assert.NotEqual(t, a, b)
}

func TestGeneratePrivateKeyFromBrokenSource(t *testing.T) {
	_, err := GeneratePrivateKeyFrom(failingReader{})
	assert.ErrorIs(t, err, ErrEntropyUnavailable)

	// a source that runs dry is just as fatal
	_, err = GeneratePrivateKeyFrom(bytes.NewReader(make([]byte, 10)))
	assert.ErrorIs(t, err, ErrEntropyUnavailable)
}

func TestDerivePublicKeyGoldenVectors(t *testing.T) {
	order := mustHex(t, curveOrderHex)
	orderMinusOne := append([]byte{}, order...)
	orderMinusOne[PrivateKeyLen-1]--

	cases := []struct {
		name string
		priv []byte
		want string
	}{
		{"one", scalar(1), generatorHex},
		{"two", scalar(2), doubleGeneratorHex},
		{"order minus one", orderMinusOne, negGeneratorHex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pub, err := DerivePublicKey(tc.priv)
			require.NoError(t, err)
			assert.Equal(t, tc.want, hex.EncodeToString(pub))
		})
	}
}

func TestDerivePublicKeyDeterministic(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)

	a, err := DerivePublicKey(priv)
	require.NoError(t, err)
	b, err := DerivePublicKey(priv)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, PublicKeyLen)
	assert.Equal(t, byte(0x04), a[0])
}

func TestDerivePublicKeyRejectsInvalidScalar(t *testing.T) {
	order := mustHex(t, curveOrderHex)
	orderPlusOne := append([]byte{}, order...)
	orderPlusOne[PrivateKeyLen-1]++

	cases := map[string][]byte{
		"zero":           make([]byte, PrivateKeyLen),
		"curve order":    order,
		"order plus one": orderPlusOne,
		"all ones":       bytes.Repeat([]byte{0xff}, PrivateKeyLen),
		"too short":      scalar(1)[1:],
		"too long":       append(scalar(1), 0x01),
		"nil":            nil,
	}
	for name, priv := range cases {
		t.Run(name, func(t *testing.T) {
			pub, err := DerivePublicKey(priv)
			assert.ErrorIs(t, err, ErrInvalidScalar)
			assert.Nil(t, pub)
		})
	}
}
