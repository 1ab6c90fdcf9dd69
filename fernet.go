package fernet

import (
	"fmt"
	"io"
	"time"

	"github.com/zoran-php/fernet-go/internal/crypto"
)

// MaxClockSkew is how far in the future a token's timestamp may lie
// before DecryptWithTTL rejects it. Matches the reference
// implementation's 60-second allowance.
const MaxClockSkew = 60 * time.Second

// Fernet encrypts and decrypts tokens with a fixed secret. The key
// pair is parsed once at construction and never mutated, so a single
// instance is safe for concurrent use.
type Fernet struct {
	keys *crypto.KeyPair
	rand io.Reader
	now  func() time.Time
}

// New parses a base64url secret and returns a Fernet instance bound to
// it. The secret must decode to exactly 32 bytes.
func New(secret string, opts ...Option) (*Fernet, error) {
	cfg := fernetConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	keys, err := crypto.ParseSecret(secret)
	if err != nil {
		return nil, err
	}

	return &Fernet{keys: keys, rand: cfg.rand, now: cfg.now}, nil
}

// Encrypt produces a token carrying msg, stamped with the current time.
func (f *Fernet) Encrypt(msg []byte) (string, error) {
	return crypto.Encode(msg, f.keys, f.now(), f.rand)
}

// Decrypt validates token and returns the original message. The error
// identifies the first validation step that failed; see the package
// documentation for the taxonomy.
func (f *Fernet) Decrypt(token string) ([]byte, error) {
	return crypto.Decode(token, f.keys)
}

// DecryptWithTTL is Decrypt with an additional age check: the token is
// rejected with ErrTokenExpired when it was created more than ttl ago,
// or when its timestamp lies more than MaxClockSkew in the future.
// A ttl of zero or less disables the check entirely.
func (f *Fernet) DecryptWithTTL(token string, ttl time.Duration) ([]byte, error) {
	msg, ts, err := crypto.DecodeWithTimestamp(token, f.keys)
	if err != nil {
		return nil, err
	}
	if ttl > 0 {
		now := f.now()
		if now.Sub(ts) > ttl {
			return nil, fmt.Errorf("%w: created %s ago", ErrTokenExpired, now.Sub(ts))
		}
		if ts.Sub(now) > MaxClockSkew {
			return nil, fmt.Errorf("%w: timestamp is in the future", ErrTokenExpired)
		}
	}
	return msg, nil
}

// ExtractTimestamp returns the creation time embedded in token. The
// token is fully validated first; the timestamp of a forged or
// corrupted token is never returned.
func (f *Fernet) ExtractTimestamp(token string) (time.Time, error) {
	_, ts, err := crypto.DecodeWithTimestamp(token, f.keys)
	return ts, err
}

// EncryptMessage is a stateless variant of Encrypt: it parses secret,
// encrypts msg, and discards the key material.
func EncryptMessage(msg []byte, secret string) (string, error) {
	f, err := New(secret)
	if err != nil {
		return "", err
	}
	return f.Encrypt(msg)
}

// DecryptMessage is a stateless variant of Decrypt.
func DecryptMessage(token, secret string) ([]byte, error) {
	f, err := New(secret)
	if err != nil {
		return nil, err
	}
	return f.Decrypt(token)
}

// GenerateSecret returns a fresh random 32-byte secret, base64url
// encoded, suitable for New. No Fernet instance is required.
func GenerateSecret() (string, error) {
	return crypto.GenerateSecret()
}
