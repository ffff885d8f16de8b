package crypto

import (
	"fmt"
)

// OpenRecord decrypts a single-record aes128gcm body addressed to recipient.
//
// The decryption process:
//  1. Parse the header and take the sender public key from the key id
//  2. ECDH between the recipient private key and the sender public key
//  3. Derive the key and nonce with the recipient key listed first
//  4. AES-128-GCM open, then strip padding up to the final delimiter
func OpenRecord(body []byte, recipient *KeyPair, authSecret []byte) ([]byte, error) {
	if recipient == nil {
		return nil, fmt.Errorf("%w: missing recipient key pair", ErrInvalidInput)
	}

	header, record, err := ParseHeader(body)
	if err != nil {
		return nil, err
	}
	if len(header.KeyID) != PublicKeySize {
		return nil, fmt.Errorf("%w: key id is %d bytes, want a %d-byte public key", ErrInvalidRecord, len(header.KeyID), PublicKeySize)
	}
	if len(record) < AESTagSize+1 {
		return nil, fmt.Errorf("%w: record too short", ErrInvalidRecord)
	}
	if uint64(len(record)) > uint64(header.RecordSize) {
		return nil, fmt.Errorf("%w: record of %d bytes exceeds record size %d", ErrInvalidRecord, len(record), header.RecordSize)
	}

	kn, err := deriveKeyAndNonce(recipient, header.KeyID, recipient.PublicKey, header.KeyID, authSecret, header.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive key and nonce: %w", err)
	}
	defer kn.Wipe()

	padded, err := DecryptAES(kn.Key, kn.Nonce, record)
	if err != nil {
		return nil, fmt.Errorf("decrypt record: %w", err)
	}

	plaintext, err := Unpad(padded)
	if err != nil {
		Wipe(padded)
		return nil, err
	}
	return plaintext, nil
}

// Unpad strips trailing padding and the final-record delimiter.
func Unpad(padded []byte) ([]byte, error) {
	i := len(padded) - 1
	for i >= 0 && padded[i] == PaddingByte {
		i--
	}
	if i < 0 {
		return nil, fmt.Errorf("%w: missing record delimiter", ErrInvalidRecord)
	}

	switch padded[i] {
	case LastRecordDelimiter:
		return padded[:i], nil
	case RecordDelimiter:
		return nil, fmt.Errorf("%w: multi-record bodies are not supported", ErrInvalidRecord)
	default:
		return nil, fmt.Errorf("%w: invalid record delimiter 0x%02x", ErrInvalidRecord, padded[i])
	}
}
