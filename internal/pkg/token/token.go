// Package token generates the opaque random identifiers used as booth
// hashcodes and visitor cookie tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewHashcode returns a 16-character hex token for a booth QR code.
func NewHashcode() (string, error) {
	return random(8)
}

// NewCookieID returns a 32-character hex token identifying a visitor
// session.
func NewCookieID() (string, error) {
	return random(16)
}

func random(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("rand.Read -> %w", err)
	}

	return hex.EncodeToString(buf), nil
}
