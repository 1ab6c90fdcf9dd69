// Package crypto implements the Fernet token format: key parsing,
// token assembly, and strictly ordered token validation.
//
// # Token Layout
//
// A decoded token is the concatenation of five fields:
//
//	Version    1 byte    always 0x80
//	Timestamp  8 bytes   big-endian seconds since the Unix epoch
//	IV         16 bytes  unique per token, from the CSPRNG
//	Ciphertext 16·k      PKCS#7-padded message, AES-128-CBC encrypted
//	HMAC       32 bytes  HMAC-SHA256 over everything before it
//
// The total length is therefore at least 73 bytes and satisfies
// (length − 57) mod 16 == 0. Tokens and secrets travel as padded
// URL-safe base64 text (RFC 4648 §5); decoding also accepts the
// unpadded variant produced by some implementations.
//
// # Keys
//
// A secret is 32 bytes. [ParseSecret] splits it into a 128-bit HMAC
// signing key (first half) and a 128-bit AES encryption key (second
// half). The resulting [KeyPair] is immutable and may be shared across
// goroutines.
//
// # Validation Order
//
// [Decode] validates in a fixed order: base64 decode, length check,
// decrypt and unpad, then HMAC verification with a constant-time
// comparison. Decrypting before verifying matches the observable
// behavior of the reference implementation; see the Decode docs before
// changing it. The version byte is authenticated by the HMAC rather
// than checked separately, matching the reference implementation.
//
// # Errors
//
// Every validation failure maps to a distinct sentinel error so callers
// can branch on the cause, e.g. distinguish a malformed token from a
// wrong key. Failures of the underlying primitives (cipher creation,
// random source) are unexpected and propagate wrapped but otherwise
// unchanged.
package crypto
