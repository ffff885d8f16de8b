package crypto

import (
	"crypto/sha256"
	"math"
)

const (
	// SaltSize is the size of the per-message salt carried in the record header.
	SaltSize = 16
	// AuthSecretSize is the size of the subscription authentication secret.
	AuthSecretSize = 16

	// PublicKeySize is the size of an uncompressed P-256 point (0x04 || X || Y).
	PublicKeySize = 65
	// PrivateKeySize is the size of a P-256 private scalar.
	PrivateKeySize = 32
	// SharedSecretSize is the size of the P-256 ECDH output.
	SharedSecretSize = 32

	// HashSize is the SHA-256 output size, one HKDF block.
	HashSize = sha256.Size
	// MaxHKDFLength is the largest output HKDF-SHA-256 can produce (RFC 5869).
	MaxHKDFLength = 255 * HashSize
	// IKMSize is the size of the intermediate key produced from the ECDH secret.
	IKMSize = 32

	// AESKeySize is the size of an AES-128 content-encryption key in bytes.
	AESKeySize = 16
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// DefaultRecordSize is the record size written when none is chosen. It
	// matches the largest body push services accept.
	DefaultRecordSize = 4096
	// MinRecordSize is the smallest record size a receiver accepts (RFC 8188).
	MinRecordSize = AESTagSize + 2
	// MaxRecordSize is the largest value the four-byte rs field can carry.
	MaxRecordSize = math.MaxUint32
	// MaxRecordPadding is the most padding a record of MaxRecordSize can hold
	// after the delimiter and the tag.
	MaxRecordPadding = MaxRecordSize - AESTagSize - 1
	// MaxKeyIDSize is the largest key id the one-byte length prefix can carry.
	MaxKeyIDSize = 255

	// HeaderSize is the fixed part of the header: salt, rs and idlen.
	HeaderSize = SaltSize + 4 + 1
	// RecordHeaderSize is the header size when the key id is a P-256 public key.
	RecordHeaderSize = HeaderSize + PublicKeySize
)

// Labels mixed into the HKDF info strings. Each is followed by LabelSeparator.
const (
	KeyInfoLabel   = "WebPush: info"
	CEKInfoLabel   = "Content-Encoding: aes128gcm"
	NonceInfoLabel = "Content-Encoding: nonce"
)

const (
	// LabelSeparator terminates every HKDF info label.
	LabelSeparator byte = 0x00
	// LastRecordDelimiter follows the plaintext of the final record.
	LastRecordDelimiter byte = 0x02
	// RecordDelimiter follows the plaintext of a non-final record.
	RecordDelimiter byte = 0x01
	// PaddingByte fills the record after the delimiter.
	PaddingByte byte = 0x00
)

// ContentEncoding is the HTTP Content-Encoding value for the produced body.
const ContentEncoding = "aes128gcm"
