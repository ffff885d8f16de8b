package crypto

import (
	"crypto/ecdh"
	"fmt"
	"io"
)

// KeyPair is a P-256 key pair used for ECDH key agreement.
//
// Sender key pairs are ephemeral: one is generated per message and
// destroyed before the encrypt call returns.
type KeyPair struct {
	private *ecdh.PrivateKey
	// PublicKey is the 65-byte uncompressed public point (0x04 || X || Y).
	PublicKey []byte
}

// GenerateKeyPair creates a new P-256 key pair from the given random source.
func GenerateKeyPair(rand io.Reader) (*KeyPair, error) {
	priv, err := ecdh.P256().GenerateKey(rand)
	if err != nil {
		return nil, fmt.Errorf("%w: generate key pair: %v", ErrCryptoUnavailable, err)
	}

	return newKeyPair(priv), nil
}

// NewKeyPair rebuilds a key pair from a 32-byte big-endian private scalar.
func NewKeyPair(privateKey []byte) (*KeyPair, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key is %d bytes, want %d", ErrInvalidKey, len(privateKey), PrivateKeySize)
	}

	priv, err := ecdh.P256().NewPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return newKeyPair(priv), nil
}

func newKeyPair(priv *ecdh.PrivateKey) *KeyPair {
	return &KeyPair{
		private:   priv,
		PublicKey: priv.PublicKey().Bytes(),
	}
}

// ParsePublicKey validates an uncompressed P-256 point.
// Compressed points, off-curve points and the identity are rejected.
func ParsePublicKey(publicKey []byte) (*ecdh.PublicKey, error) {
	if len(publicKey) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidKey, len(publicKey), PublicKeySize)
	}
	if publicKey[0] != 0x04 {
		return nil, fmt.Errorf("%w: public key is not in uncompressed form", ErrInvalidKey)
	}

	pub, err := ecdh.P256().NewPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return pub, nil
}

// SharedSecret computes the 32-byte ECDH secret with a remote public key.
// The caller owns the result and should Wipe it once derived from.
func (k *KeyPair) SharedSecret(remotePublicKey []byte) ([]byte, error) {
	if k == nil || k.private == nil {
		return nil, fmt.Errorf("%w: key pair has been destroyed", ErrInvalidKey)
	}

	remote, err := ParsePublicKey(remotePublicKey)
	if err != nil {
		return nil, err
	}

	secret, err := k.private.ECDH(remote)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return secret, nil
}

// PrivateKeyBytes returns a copy of the private scalar. Only recipient key
// pairs, which must be persisted by their owner, should be exported.
func (k *KeyPair) PrivateKeyBytes() []byte {
	if k == nil || k.private == nil {
		return nil
	}
	return k.private.Bytes()
}

// Destroy drops the private key. The key pair can no longer agree on secrets.
func (k *KeyPair) Destroy() {
	if k == nil {
		return
	}
	k.private = nil
}
