package fernet

import (
	"io"
	"time"
)

// fernetConfig holds construction-time collaborators. Both default to
// the real ones; tests substitute deterministic versions.
type fernetConfig struct {
	rand io.Reader
	now  func() time.Time
}

// Option configures a Fernet instance.
type Option func(*fernetConfig)

// WithRandReader sets the random source used for IV generation.
// The default is crypto/rand. Intended for deterministic tests; never
// substitute a non-cryptographic source in production.
func WithRandReader(r io.Reader) Option {
	return func(c *fernetConfig) {
		c.rand = r
	}
}

// WithClock sets the function used to read the current time for token
// timestamps and TTL checks. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *fernetConfig) {
		c.now = now
	}
}
