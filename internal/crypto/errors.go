package crypto

import "errors"

var (
	// ErrInvalidSecretEncoding is returned when a secret is not valid
	// base64url text.
	ErrInvalidSecretEncoding = errors.New("secret is not valid base64url")

	// ErrInvalidSecretLength is returned when a secret does not decode
	// to exactly 32 bytes.
	ErrInvalidSecretLength = errors.New("secret must decode to 32 bytes")

	// ErrInvalidTokenEncoding is returned when a token is not valid
	// base64url text.
	ErrInvalidTokenEncoding = errors.New("token is not valid base64url")

	// ErrInvalidTokenLength is returned when a decoded token is shorter
	// than the minimum size or its ciphertext is not block-aligned.
	ErrInvalidTokenLength = errors.New("token has invalid length")

	// ErrInvalidTokenSignature is returned when the HMAC trailer does
	// not match the recomputed signature.
	ErrInvalidTokenSignature = errors.New("token signature mismatch")

	// ErrDecryptionFailed is returned when the ciphertext cannot be
	// decrypted, including PKCS#7 padding violations.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrTokenExpired is returned when a token's timestamp fails a
	// TTL or clock-skew check.
	ErrTokenExpired = errors.New("token has expired")
)
