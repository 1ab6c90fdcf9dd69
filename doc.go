// Package fernet encrypts and decrypts Fernet tokens: self-contained,
// authenticated, base64url-encoded envelopes interoperable with the
// reference Python implementation at https://github.com/fernet/spec.
//
// A 256-bit secret is split into a 128-bit HMAC-SHA256 signing key and
// a 128-bit AES-128-CBC encryption key. Encrypting a message produces a
// token carrying a version byte, a creation timestamp, a random IV, the
// padded and encrypted message, and an HMAC over everything before it.
// Decrypting validates the token and recovers the message, or fails
// with a sentinel error identifying the exact cause.
//
// Basic usage:
//
//	secret, err := fernet.GenerateSecret()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := fernet.New(secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := f.Encrypt([]byte("hello world"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg, err := f.Decrypt(token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(msg)) // hello world
//
// For one-shot calls that should not retain key material, use the
// stateless [EncryptMessage] and [DecryptMessage] variants. For key
// rotation across a fleet of secrets, use [MultiFernet]. To derive a
// secret from a password instead of generating one, use [DeriveSecret].
//
// All operations are safe for concurrent use: a Fernet instance holds
// only an immutable key pair.
//
// # Errors
//
// Validation failures are reported through sentinel errors
// ([ErrInvalidTokenEncoding], [ErrInvalidTokenSignature],
// [ErrDecryptionFailed], ...) that callers can branch on with
// errors.Is, e.g. to distinguish a malformed token from a wrong key.
package fernet
