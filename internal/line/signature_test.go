package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	secret := "channel-secret"
	body := []byte(`{"events":[]}`)

	if err := ValidateSignature(secret, body, sign(secret, body)); err != nil {
		t.Errorf("valid signature rejected: %v", err)
	}
}

func TestValidateSignatureMissing(t *testing.T) {
	err := ValidateSignature("secret", []byte("body"), "")
	if !errors.Is(err, ErrMissingSignature) {
		t.Errorf("expected ErrMissingSignature, got %v", err)
	}
}

func TestValidateSignatureMismatch(t *testing.T) {
	body := []byte(`{"events":[]}`)
	err := ValidateSignature("secret", body, sign("other-secret", body))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidateSignatureNotBase64(t *testing.T) {
	err := ValidateSignature("secret", []byte("body"), "!!not base64!!")
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidateSignatureTamperedBody(t *testing.T) {
	secret := "secret"
	signature := sign(secret, []byte(`{"events":[]}`))
	err := ValidateSignature(secret, []byte(`{"events":[{}]}`), signature)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}
