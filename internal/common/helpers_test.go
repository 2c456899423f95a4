package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	b, err := DecodeHex("  0x0001ff  ", 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xff}, b)

	b, err = DecodeHex("0XABCD", 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, b)
}

func TestDecodeHexErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"short":     "00ff",
		"not hex":   "zz0011",
		"odd chars": "0x00112",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeHex(in, 3)
			assert.Error(t, err)
		})
	}
}

func TestIsHexAddress(t *testing.T) {
	assert.True(t, IsHexAddress("91b24bf9f5288532960ac687abb035127b1d28a5"))
	assert.False(t, IsHexAddress("91B24BF9F5288532960AC687ABB035127B1D28A5"))
	assert.False(t, IsHexAddress("91b24bf9"))
	assert.False(t, IsHexAddress("g1b24bf9f5288532960ac687abb035127b1d28a5"))
}
