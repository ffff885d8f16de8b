package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

func newAESGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create cipher: %v", ErrCryptoUnavailable, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GCM: %v", ErrCryptoUnavailable, err)
	}

	return gcm, nil
}

// EncryptAES encrypts data using AES-128-GCM with no additional data.
// Returns: ciphertext || tag (16 bytes)
func EncryptAES(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newAESGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// DecryptAES decrypts ciphertext || tag using AES-128-GCM with no
// additional data.
func DecryptAES(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newAESGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < AESTagSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
