package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

var (
	// ErrMissingSignature is returned when the signature header is absent.
	ErrMissingSignature = errors.New("missing X-Line-Signature header")
	// ErrInvalidSignature is returned when the signature does not match
	// the request body.
	ErrInvalidSignature = errors.New("invalid request signature")
)

// ValidateSignature verifies that signature is the base64-encoded
// HMAC-SHA256 of body keyed by the channel secret.
func ValidateSignature(secret string, body []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(decoded, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}
