package crypto

import "errors"

var (
	// ErrDecode is returned when base64url text is malformed or decodes to
	// the wrong number of bytes.
	ErrDecode = errors.New("invalid base64url encoding")

	// ErrInvalidKey is returned when a public or private key is not a valid
	// P-256 key: wrong length, not on the curve, or the point at infinity.
	ErrInvalidKey = errors.New("invalid P-256 key")

	// ErrLength is returned when more HKDF output is requested than
	// HKDF-SHA-256 can produce.
	ErrLength = errors.New("invalid HKDF output length")

	// ErrRange is returned when a header field does not fit its encoding.
	ErrRange = errors.New("header field out of range")

	// ErrCryptoUnavailable is returned when a primitive or the random source
	// cannot be used. It is not recoverable.
	ErrCryptoUnavailable = errors.New("cryptographic primitive unavailable")

	// ErrInvalidInput is returned when caller-supplied keys, secrets or salts
	// are unusable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRecordTooLarge is returned when the padded plaintext and tag do not
	// fit in the chosen record size.
	ErrRecordTooLarge = errors.New("plaintext does not fit in a single record")

	// ErrInvalidRecord is returned when an encrypted body is structurally
	// invalid: short header, bad record size, bad key id or bad padding.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrDecryptionFailed is returned when the AEAD tag does not verify.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
)
