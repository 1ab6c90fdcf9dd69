package crypto

import (
	"encoding/base64"
)

// ToBase64URL encodes bytes to URL-safe base64 with padding.
// Fernet transports both secrets and tokens in this form (RFC 4648 §5,
// padded variant).
func ToBase64URL(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64, accepting both padded and
// unpadded input. Other implementations sometimes strip the trailing
// padding, so decoding is lenient about it.
func FromBase64URL(s string) ([]byte, error) {
	data, err := base64.URLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}
	return base64.RawURLEncoding.DecodeString(s)
}
