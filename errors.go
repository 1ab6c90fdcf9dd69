package fernet

import (
	"errors"

	"github.com/zoran-php/fernet-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks. These are the same values the
// internal packages return, so wrapped errors match as well.
var (
	// ErrInvalidSecretEncoding is returned when a secret is not valid base64url.
	ErrInvalidSecretEncoding = crypto.ErrInvalidSecretEncoding

	// ErrInvalidSecretLength is returned when a secret does not decode to 32 bytes.
	ErrInvalidSecretLength = crypto.ErrInvalidSecretLength

	// ErrInvalidTokenEncoding is returned when a token is not valid base64url.
	ErrInvalidTokenEncoding = crypto.ErrInvalidTokenEncoding

	// ErrInvalidTokenLength is returned when a decoded token is too short or
	// its ciphertext is not a multiple of the block size.
	ErrInvalidTokenLength = crypto.ErrInvalidTokenLength

	// ErrInvalidTokenSignature is returned when HMAC verification fails.
	ErrInvalidTokenSignature = crypto.ErrInvalidTokenSignature

	// ErrDecryptionFailed is returned when the ciphertext cannot be decrypted,
	// including PKCS#7 padding violations.
	ErrDecryptionFailed = crypto.ErrDecryptionFailed

	// ErrTokenExpired is returned by DecryptWithTTL when the token is older
	// than the given TTL or its timestamp is too far in the future.
	ErrTokenExpired = crypto.ErrTokenExpired

	// ErrNoKeys is returned when a MultiFernet is constructed without any keys.
	ErrNoKeys = errors.New("at least one Fernet instance is required")
)
