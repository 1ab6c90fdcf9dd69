package crypto

import (
	"fmt"
)

// KeyPair holds the two 128-bit halves of a Fernet secret: the HMAC
// signing key and the AES encryption key. A KeyPair is immutable after
// construction and safe to share across concurrent encode and decode
// calls.
type KeyPair struct {
	// SigningKey is the HMAC-SHA256 key (bytes 0–15 of the secret).
	SigningKey []byte
	// EncryptionKey is the AES-128-CBC key (bytes 16–31 of the secret).
	EncryptionKey []byte
}

// ParseSecret decodes a base64url secret and splits it into a KeyPair.
// The secret must decode to exactly 32 bytes; the first half becomes
// the signing key and the second half the encryption key.
func ParseSecret(secret string) (*KeyPair, error) {
	raw, err := FromBase64URL(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretEncoding, err)
	}
	return NewKeyPairFromBytes(raw)
}

// NewKeyPairFromBytes splits 32 raw secret bytes into a KeyPair.
// The input is copied, so callers may reuse or zero their buffer.
func NewKeyPairFromBytes(raw []byte) (*KeyPair, error) {
	if len(raw) != SecretSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSecretLength, len(raw))
	}
	buf := make([]byte, SecretSize)
	copy(buf, raw)
	return &KeyPair{
		SigningKey:    buf[:KeySize],
		EncryptionKey: buf[KeySize:],
	}, nil
}

// GenerateSecret returns a fresh random secret encoded as base64url.
func GenerateSecret() (string, error) {
	raw, err := RandomBytes(SecretSize)
	if err != nil {
		return "", err
	}
	return ToBase64URL(raw), nil
}
