package crypto

const (
	// Version is the Fernet format version byte. Every token starts
	// with it; 0x80 is the only version defined by the format.
	Version = 0x80

	// SecretSize is the size of a decoded Fernet secret in bytes.
	SecretSize = 32
	// KeySize is the size of each of the two sub-keys (signing and
	// encryption) split from a secret.
	KeySize = 16

	// BlockSize is the AES block size. The IV and every ciphertext
	// block are this long, and PKCS#7 padding aligns to it.
	BlockSize = 16

	// TimestampSize is the size of the big-endian creation timestamp.
	TimestampSize = 8
	// IVSize is the size of the CBC initialization vector.
	IVSize = BlockSize
	// HMACSize is the size of the SHA-256 HMAC trailer.
	HMACSize = 32

	// TimestampOffset is the byte offset of the timestamp field.
	TimestampOffset = 1
	// IVOffset is the byte offset of the IV field.
	IVOffset = TimestampOffset + TimestampSize
	// CiphertextOffset is the byte offset of the ciphertext field.
	CiphertextOffset = IVOffset + IVSize

	// OverheadSize is the number of non-ciphertext bytes in a token:
	// version (1) + timestamp (8) + IV (16) + HMAC (32).
	OverheadSize = 1 + TimestampSize + IVSize + HMACSize

	// MinTokenSize is the smallest valid decoded token: the fixed
	// overhead plus one ciphertext block (even an empty message pads
	// to a full block).
	MinTokenSize = OverheadSize + BlockSize
)
