package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Encode assembles a Fernet token from a message and a key pair.
//
// The token is built in a single buffer: version byte, big-endian
// creation timestamp, a fresh IV from rng, the PKCS#7-padded message
// encrypted in place with AES-128-CBC, and finally the HMAC-SHA256 of
// everything before it. The result is base64url-encoded with padding.
//
// rng supplies the IV bytes; a nil rng uses the package random source.
func Encode(msg []byte, kp *KeyPair, now time.Time, rng io.Reader) (string, error) {
	padded := Pad(msg)
	tok := make([]byte, CiphertextOffset+len(padded)+HMACSize)

	tok[0] = Version
	binary.BigEndian.PutUint64(tok[TimestampOffset:], uint64(now.Unix()))

	iv := tok[IVOffset:CiphertextOffset]
	if rng == nil {
		rng = reader()
	}
	if _, err := io.ReadFull(rng, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	block, err := aes.NewCipher(kp.EncryptionKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	ciphertext := tok[CiphertextOffset : CiphertextOffset+len(padded)]
	copy(ciphertext, padded)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, ciphertext)

	macOffset := len(tok) - HMACSize
	mac := hmac.New(sha256.New, kp.SigningKey)
	mac.Write(tok[:macOffset])
	mac.Sum(tok[macOffset:macOffset])

	return ToBase64URL(tok), nil
}
