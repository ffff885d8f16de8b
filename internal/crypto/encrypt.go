package crypto

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
)

// RecordOptions control how the single record is framed.
type RecordOptions struct {
	// RecordSize is the rs header value. Zero selects the exact fit: the
	// padded plaintext plus the tag, raised to MinRecordSize if needed.
	RecordSize uint32
	// Padding is the number of zero bytes appended after the delimiter.
	Padding int
}

// Pad returns plaintext || 0x02 || padding zero bytes in a new buffer.
func Pad(plaintext []byte, padding int) []byte {
	padded := make([]byte, len(plaintext)+1+padding)
	copy(padded, plaintext)
	padded[len(plaintext)] = LastRecordDelimiter
	// make already zeroed the padding; PaddingByte is 0x00.
	return padded
}

// RecordLength returns the length of the sealed record (padded plaintext
// plus tag) and the rs value CreateCipherText writes for a plaintext of n
// bytes. The body is the header followed by sealedLen bytes.
func RecordLength(n int, opts RecordOptions) (sealedLen, recordSize int64, err error) {
	if opts.Padding < 0 {
		return 0, 0, fmt.Errorf("%w: negative padding %d", ErrInvalidInput, opts.Padding)
	}
	if int64(opts.Padding) > MaxRecordPadding {
		return 0, 0, fmt.Errorf("%w: padding %d exceeds %d", ErrRecordTooLarge, opts.Padding, int64(MaxRecordPadding))
	}

	// Padding is capped below 2^32, so the sum cannot overflow.
	sealedLen = int64(n) + 1 + int64(opts.Padding) + AESTagSize

	switch {
	case opts.RecordSize == 0:
		if sealedLen < MinRecordSize {
			sealedLen = MinRecordSize
		}
		if sealedLen > MaxRecordSize {
			return 0, 0, fmt.Errorf("%w: %d bytes sealed, record size limit %d", ErrRecordTooLarge, sealedLen, int64(MaxRecordSize))
		}
		return sealedLen, sealedLen, nil
	case opts.RecordSize < MinRecordSize:
		return 0, 0, fmt.Errorf("%w: record size %d below minimum %d", ErrInvalidInput, opts.RecordSize, MinRecordSize)
	default:
		recordSize = int64(opts.RecordSize)
		if sealedLen > recordSize {
			return 0, 0, fmt.Errorf("%w: %d bytes sealed, record size %d", ErrRecordTooLarge, sealedLen, recordSize)
		}
		return sealedLen, recordSize, nil
	}
}

// CreateCipherText pads and seals plaintext with kn and prepends the header
// built from keyID, the record size and salt.
//
// The result is header || ciphertext || tag. The plaintext must fit in a
// single record.
func CreateCipherText(keyID, salt, plaintext []byte, kn *KeyAndNonce, opts RecordOptions) ([]byte, error) {
	if kn == nil {
		return nil, fmt.Errorf("%w: missing key and nonce", ErrInvalidInput)
	}

	sealedLen, recordSize, err := RecordLength(len(plaintext), opts)
	if err != nil {
		return nil, err
	}
	// Exact-fit records below the minimum are topped up with padding.
	padding := int(sealedLen - int64(len(plaintext)) - 1 - AESTagSize)

	header, err := WriteHeader(keyID, recordSize, salt)
	if err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	padded := Pad(plaintext, padding)
	defer Wipe(padded)

	ciphertext, err := EncryptAES(kn.Key, kn.Nonce, padded)
	if err != nil {
		return nil, fmt.Errorf("encrypt record: %w", err)
	}

	body := make([]byte, 0, len(header)+len(ciphertext))
	body = append(body, header...)
	body = append(body, ciphertext...)
	return body, nil
}

// SealRecord encrypts plaintext for the receiver key uaPublic using an
// explicit sender key pair and salt. It is deterministic; EncryptContent
// supplies fresh values for every message.
func SealRecord(local *KeyPair, salt, uaPublic, authSecret, plaintext []byte, opts RecordOptions) ([]byte, error) {
	kn, err := DeriveKeyAndNonce(DeriveParams{
		Salt:            salt,
		LocalKeyPair:    local,
		RemotePublicKey: uaPublic,
		AuthSecret:      authSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("derive key and nonce: %w", err)
	}
	defer kn.Wipe()

	return CreateCipherText(local.PublicKey, salt, plaintext, kn, opts)
}

// EncryptContent encrypts plaintext for the subscription keys dh (p256dh)
// and authSecret (auth), both unpadded base64url.
//
// The encryption process:
//  1. Decode and validate the receiver public key and auth secret
//  2. Draw a 16-byte salt and an ephemeral P-256 key pair from rand
//  3. Derive the key and nonce (see DeriveKeyAndNonce)
//  4. Pad, seal with AES-128-GCM and prepend the header
//
// A nil rand uses crypto/rand.
func EncryptContent(rand io.Reader, dh, authSecret string, plaintext []byte, opts RecordOptions) ([]byte, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	uaPublic, err := DecodeBase64URLSize("p256dh", dh, PublicKeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := ParsePublicKey(uaPublic); err != nil {
		return nil, fmt.Errorf("%w: p256dh: %w", ErrInvalidInput, err)
	}

	auth, err := DecodeBase64URLSize("auth", authSecret, AuthSecretSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	defer Wipe(auth)

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand, salt); err != nil {
		return nil, fmt.Errorf("%w: read salt: %v", ErrCryptoUnavailable, err)
	}

	local, err := GenerateKeyPair(rand)
	if err != nil {
		return nil, err
	}
	defer local.Destroy()

	return SealRecord(local, salt, uaPublic, auth, plaintext, opts)
}
