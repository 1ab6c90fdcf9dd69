package fernet

import (
	"time"

	"github.com/zoran-php/fernet-go/internal/crypto"
)

// MultiFernet performs encryption and decryption over a list of Fernet
// instances, enabling key rotation: new tokens are issued with the
// first key while tokens issued under any key in the list still
// decrypt. To retire a secret, re-issue outstanding tokens with Rotate
// and then drop the old instance from the list.
type MultiFernet struct {
	fernets []*Fernet
}

// NewMultiFernet returns a MultiFernet over the given instances, in
// priority order. At least one instance is required.
func NewMultiFernet(fernets ...*Fernet) (*MultiFernet, error) {
	if len(fernets) == 0 {
		return nil, ErrNoKeys
	}
	list := make([]*Fernet, len(fernets))
	copy(list, fernets)
	return &MultiFernet{fernets: list}, nil
}

// Encrypt produces a token with the first (primary) key.
func (m *MultiFernet) Encrypt(msg []byte) (string, error) {
	return m.fernets[0].Encrypt(msg)
}

// Decrypt tries each key in order and returns the first successful
// result. When no key accepts the token, the error from the last
// attempt is returned.
func (m *MultiFernet) Decrypt(token string) ([]byte, error) {
	var err error
	for _, f := range m.fernets {
		var msg []byte
		if msg, err = f.Decrypt(token); err == nil {
			return msg, nil
		}
	}
	return nil, err
}

// DecryptWithTTL is Decrypt with the TTL semantics of
// [Fernet.DecryptWithTTL] applied per attempt.
func (m *MultiFernet) DecryptWithTTL(token string, ttl time.Duration) ([]byte, error) {
	var err error
	for _, f := range m.fernets {
		var msg []byte
		if msg, err = f.DecryptWithTTL(token, ttl); err == nil {
			return msg, nil
		}
	}
	return nil, err
}

// Rotate re-encrypts a token under the primary key, preserving the
// original creation timestamp so TTL checks keep their meaning. The
// token may have been issued under any key in the list.
func (m *MultiFernet) Rotate(token string) (string, error) {
	var (
		msg []byte
		ts  time.Time
		err error
	)
	for _, f := range m.fernets {
		if msg, ts, err = crypto.DecodeWithTimestamp(token, f.keys); err == nil {
			primary := m.fernets[0]
			return crypto.Encode(msg, primary.keys, ts, primary.rand)
		}
	}
	return "", err
}
