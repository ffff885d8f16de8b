package crypto

import (
	"encoding/base64"
	"fmt"
)

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
// Padding characters and the standard alphabet's '+' and '/' are rejected.
func FromBase64URL(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}

// DecodeBase64URLSize decodes s and requires exactly size bytes.
// The field name is only used in error messages.
func DecodeBase64URLSize(field, s string, size int) ([]byte, error) {
	data, err := FromBase64URL(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	if len(data) != size {
		return nil, fmt.Errorf("decode %s: %w: got %d bytes, want %d", field, ErrDecode, len(data), size)
	}
	return data, nil
}
