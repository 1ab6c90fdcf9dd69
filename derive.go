package fernet

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/zoran-php/fernet-go/internal/crypto"
)

// DefaultIterations is the PBKDF2 iteration count used when
// DeriveSecret is called with a non-positive count. It follows the
// recommendation of the reference implementation's documentation.
const DefaultIterations = 480_000

// DeriveSecret derives a Fernet secret from a password using
// PBKDF2-HMAC-SHA256. The salt must be random, at least 16 bytes, and
// stored alongside the ciphertext; the same password and salt always
// yield the same secret. Deriving is deliberately slow, so reuse the
// result rather than re-deriving per message.
func DeriveSecret(password, salt []byte, iterations int) string {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	key := pbkdf2.Key(password, salt, iterations, crypto.SecretSize, sha256.New)
	return crypto.ToBase64URL(key)
}
