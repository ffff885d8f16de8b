package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Extract computes the HKDF-SHA-256 pseudo-random key HMAC(salt, ikm).
func Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(sha256.New, ikm, salt)
}

// Expand produces length bytes of HKDF-SHA-256 output keyed by prk.
//
// Block i is HMAC(prk, T(i-1) || info || i) with T(0) empty and the counter
// starting at 1; the last block is truncated. Output is prefix-stable: a
// shorter request returns a prefix of a longer one.
func Expand(prk, info []byte, length int) ([]byte, error) {
	if length < 0 || length > MaxHKDFLength {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrLength, length, MaxHKDFLength)
	}

	reader := hkdf.Expand(sha256.New, prk, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLength, err)
	}

	return out, nil
}

// DeriveKey derives a key using HKDF-SHA-256 (extract then expand).
//
// Parameters:
//   - secret: the input key material (e.g., an ECDH shared secret)
//   - salt: the extract salt; an empty salt is treated as HashSize zero bytes
//   - info: context/application-specific info for domain separation
//   - length: desired output key length in bytes
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	prk := Extract(salt, secret)
	defer Wipe(prk)

	key, err := Expand(prk, info, length)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
