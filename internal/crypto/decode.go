package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"
)

// Decode validates a Fernet token and recovers the original message.
//
// Validation is strictly ordered and each step short-circuits:
//
//  1. base64url decode → ErrInvalidTokenEncoding
//  2. length check (≥ 73 bytes, block-aligned ciphertext) → ErrInvalidTokenLength
//  3. AES-128-CBC decrypt and PKCS#7 unpad → ErrDecryptionFailed
//  4. constant-time HMAC comparison → ErrInvalidTokenSignature
//
// Decryption is attempted before the signature is verified. Reordering
// the two would change which error a corrupted token reports and
// diverge from the reference implementation.
func Decode(token string, kp *KeyPair) ([]byte, error) {
	msg, _, err := DecodeWithTimestamp(token, kp)
	return msg, err
}

// DecodeWithTimestamp is Decode, additionally returning the token's
// embedded creation time. The timestamp is only meaningful once the
// whole token has been validated, so it is never returned alongside an
// error.
func DecodeWithTimestamp(token string, kp *KeyPair) ([]byte, time.Time, error) {
	raw, err := FromBase64URL(token)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTokenEncoding, err)
	}

	if len(raw) < MinTokenSize || (len(raw)-OverheadSize)%BlockSize != 0 {
		return nil, time.Time{}, fmt.Errorf("%w: got %d bytes", ErrInvalidTokenLength, len(raw))
	}

	var (
		n          = len(raw)
		iv         = raw[IVOffset:CiphertextOffset]
		ciphertext = raw[CiphertextOffset : n-HMACSize]
		macOffset  = n - HMACSize
		tokenMAC   = raw[macOffset:]
	)

	block, err := aes.NewCipher(kp.EncryptionKey)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("create cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	msg, err := Unpad(plaintext)
	if err != nil {
		return nil, time.Time{}, err
	}

	mac := hmac.New(sha256.New, kp.SigningKey)
	mac.Write(raw[:macOffset])
	expectedMAC := mac.Sum(nil)
	if !hmac.Equal(tokenMAC, expectedMAC) {
		return nil, time.Time{}, ErrInvalidTokenSignature
	}

	ts := binary.BigEndian.Uint64(raw[TimestampOffset:IVOffset])
	return msg, time.Unix(int64(ts), 0).UTC(), nil
}
