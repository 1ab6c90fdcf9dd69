package crypto

// Pad applies PKCS#7 block padding (RFC 5652 §6.3): k bytes each
// holding the value k are appended, where k = 16 − (len(p) mod 16).
// An already-aligned message receives a full padding block, so k is
// always in [1,16] and unpadding is unambiguous.
func Pad(p []byte) []byte {
	k := BlockSize - len(p)%BlockSize
	padded := make([]byte, len(p)+k)
	copy(padded, p)
	for i := len(p); i < len(padded); i++ {
		padded[i] = byte(k)
	}
	return padded
}

// Unpad reverses Pad. It returns ErrDecryptionFailed if the final byte
// does not encode a plausible padding length or any padding byte holds
// the wrong value.
func Unpad(p []byte) ([]byte, error) {
	if len(p) == 0 || len(p)%BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}
	k := int(p[len(p)-1])
	if k < 1 || k > BlockSize {
		return nil, ErrDecryptionFailed
	}
	for i := len(p) - k; i < len(p); i++ {
		if p[i] != byte(k) {
			return nil, ErrDecryptionFailed
		}
	}
	return p[:len(p)-k], nil
}
