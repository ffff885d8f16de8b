package crypto

import (
	"fmt"
	"math"

	"golang.org/x/crypto/cryptobyte"
)

// Header is the aes128gcm content-coding header that precedes the record.
type Header struct {
	// Salt is the 16-byte per-message salt.
	Salt []byte
	// RecordSize is the rs field: the largest sealed record, tag included.
	RecordSize uint32
	// KeyID is the sender's public key in Web Push.
	KeyID []byte
}

// WriteHeader serializes salt || rs (uint32 BE) || len(keyID) (uint8) || keyID.
func WriteHeader(keyID []byte, recordSize int64, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrInvalidInput, len(salt), SaltSize)
	}
	if recordSize < 0 || recordSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: record size %d does not fit in 4 bytes", ErrRange, recordSize)
	}
	if len(keyID) > MaxKeyIDSize {
		return nil, fmt.Errorf("%w: key id is %d bytes, max %d", ErrRange, len(keyID), MaxKeyIDSize)
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, HeaderSize+len(keyID)))
	b.AddBytes(salt)
	b.AddUint32(uint32(recordSize))
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(keyID)
	})

	header, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRange, err)
	}
	return header, nil
}

// ParseHeader reads the header from the start of body and returns it along
// with the remaining bytes (the sealed record).
func ParseHeader(body []byte) (*Header, []byte, error) {
	s := cryptobyte.String(body)

	var (
		salt  []byte
		rs    uint32
		keyID cryptobyte.String
	)
	if !s.ReadBytes(&salt, SaltSize) || !s.ReadUint32(&rs) || !s.ReadUint8LengthPrefixed(&keyID) {
		return nil, nil, fmt.Errorf("%w: truncated header", ErrInvalidRecord)
	}
	if rs < MinRecordSize {
		return nil, nil, fmt.Errorf("%w: record size %d below minimum %d", ErrInvalidRecord, rs, MinRecordSize)
	}

	return &Header{
		Salt:       salt,
		RecordSize: rs,
		KeyID:      []byte(keyID),
	}, []byte(s), nil
}
