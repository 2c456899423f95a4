package common

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHex parses a hex string of exactly size bytes.
// Surrounding whitespace and an optional 0x prefix are ignored.
// Example: DecodeHex("0x00..01", 32) = [0 0 ... 1]
func DecodeHex(s string, size int) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("empty string")
	}

	if len(s) != size*2 {
		return nil, fmt.Errorf("expected %d hex characters, got %d", size*2, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// IsHexAddress reports whether s looks like a 40-char lowercase hex address
func IsHexAddress(s string) bool {
	if len(s) != 40 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
