package crypto

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestWriteHeader_Fixture(t *testing.T) {
	salt := make([]byte, SaltSize)
	copy(salt, []byte{13, 234, 34, 234, 54, 34, 98, 5})

	got, err := WriteHeader([]byte("Hallo"), 4096, salt)
	if err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	want := []byte{
		13, 234, 34, 234, 54, 34, 98, 5, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 16, 0,
		5,
		72, 97, 108, 108, 111,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("WriteHeader() = %v, want %v", got, want)
	}
}

func TestWriteHeader_Length(t *testing.T) {
	salt := make([]byte, SaltSize)

	for _, n := range []int{0, 1, 5, PublicKeySize, MaxKeyIDSize} {
		header, err := WriteHeader(make([]byte, n), DefaultRecordSize, salt)
		if err != nil {
			t.Fatalf("WriteHeader(keyID %d bytes) error = %v", n, err)
		}
		if len(header) != SaltSize+4+1+n {
			t.Errorf("len = %d, want %d", len(header), SaltSize+4+1+n)
		}
	}
}

func TestWriteHeader_Errors(t *testing.T) {
	salt := make([]byte, SaltSize)

	tests := []struct {
		name       string
		keyID      []byte
		recordSize int64
		salt       []byte
		want       error
	}{
		{"record size too large", []byte("k"), math.MaxUint32 + 1, salt, ErrRange},
		{"negative record size", []byte("k"), -1, salt, ErrRange},
		{"key id too long", make([]byte, MaxKeyIDSize+1), 4096, salt, ErrRange},
		{"short salt", []byte("k"), 4096, salt[:8], ErrInvalidInput},
		{"long salt", []byte("k"), 4096, make([]byte, SaltSize+1), ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WriteHeader(tt.keyID, tt.recordSize, tt.salt)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestWriteHeader_MaxRecordSize(t *testing.T) {
	header, err := WriteHeader(nil, math.MaxUint32, make([]byte, SaltSize))
	if err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	if !bytes.Equal(header[SaltSize:SaltSize+4], []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("rs = %x, want ffffffff", header[SaltSize:SaltSize+4])
	}
}

func TestParseHeader_RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0x5a}, SaltSize)
	keyID := fixturePublicKey
	record := []byte("sealed record bytes")

	header, err := WriteHeader(keyID, 4096, salt)
	if err != nil {
		t.Fatal(err)
	}

	parsed, rest, err := ParseHeader(append(header, record...))
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if !bytes.Equal(parsed.Salt, salt) {
		t.Errorf("Salt = %x, want %x", parsed.Salt, salt)
	}
	if parsed.RecordSize != 4096 {
		t.Errorf("RecordSize = %d, want 4096", parsed.RecordSize)
	}
	if !bytes.Equal(parsed.KeyID, keyID) {
		t.Errorf("KeyID = %x, want %x", parsed.KeyID, keyID)
	}
	if !bytes.Equal(rest, record) {
		t.Errorf("rest = %q, want %q", rest, record)
	}
}

func TestParseHeader_Invalid(t *testing.T) {
	salt := make([]byte, SaltSize)
	valid, err := WriteHeader(fixturePublicKey, 4096, salt)
	if err != nil {
		t.Fatal(err)
	}
	smallRS, err := WriteHeader(fixturePublicKey, MinRecordSize-1, salt)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		body []byte
	}{
		{"empty", nil},
		{"salt only", valid[:SaltSize]},
		{"no key id length", valid[:SaltSize+4]},
		{"truncated key id", valid[:len(valid)-1]},
		{"record size below minimum", smallRS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseHeader(tt.body)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}
