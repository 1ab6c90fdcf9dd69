package fernet

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidSecretEncoding", ErrInvalidSecretEncoding},
		{"ErrInvalidSecretLength", ErrInvalidSecretLength},
		{"ErrInvalidTokenEncoding", ErrInvalidTokenEncoding},
		{"ErrInvalidTokenLength", ErrInvalidTokenLength},
		{"ErrInvalidTokenSignature", ErrInvalidTokenSignature},
		{"ErrDecryptionFailed", ErrDecryptionFailed},
		{"ErrTokenExpired", ErrTokenExpired},
		{"ErrNoKeys", ErrNoKeys},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidSecretEncoding,
		ErrInvalidSecretLength,
		ErrInvalidTokenEncoding,
		ErrInvalidTokenLength,
		ErrInvalidTokenSignature,
		ErrDecryptionFailed,
		ErrTokenExpired,
		ErrNoKeys,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d matches sentinel %d", i, j)
			}
		}
	}
}

func TestSentinelErrors_MatchWrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: got 31", ErrInvalidSecretLength)
	if !errors.Is(wrapped, ErrInvalidSecretLength) {
		t.Error("wrapped error does not match its sentinel")
	}
}
