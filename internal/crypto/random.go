package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for secrets and IVs.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// reader returns the active random source.
func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// RandomBytes returns n bytes from the cryptographically secure random
// source. A failure of the underlying source is fatal and is propagated
// to the caller unchanged.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(reader(), b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}
