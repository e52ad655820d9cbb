package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

var errTokenLength = errors.New("token length must be positive")

// newSessionToken returns a URL-safe random token of exactly length characters.
func newSessionToken(length int) (string, error) {
	if length <= 0 {
		return "", errTokenLength
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf)[:length], nil
}
