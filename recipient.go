package webpush

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vaultsandbox/webpush-go/internal/crypto"
)

// Recipient holds the receiving side of a push subscription: a P-256 key
// pair and an authentication secret. It decrypts bodies produced by Encrypt.
//
// Browsers play this role in production. Recipient exists for test
// harnesses and for services that receive their own push messages.
type Recipient struct {
	keyPair *crypto.KeyPair
	auth    []byte
}

// GenerateRecipient creates a recipient with a fresh key pair and auth
// secret drawn from r. A nil r uses crypto/rand.
func GenerateRecipient(r io.Reader) (*Recipient, error) {
	if r == nil {
		r = rand.Reader
	}

	auth := make([]byte, crypto.AuthSecretSize)
	if _, err := io.ReadFull(r, auth); err != nil {
		return nil, fmt.Errorf("%w: read auth secret: %v", ErrCryptoUnavailable, err)
	}

	kp, err := crypto.GenerateKeyPair(r)
	if err != nil {
		return nil, err
	}

	return &Recipient{keyPair: kp, auth: auth}, nil
}

// NewRecipient restores a recipient from its base64url private key and
// auth secret.
func NewRecipient(privateKey, auth string) (*Recipient, error) {
	priv, err := crypto.DecodeBase64URLSize("private key", privateKey, crypto.PrivateKeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	defer crypto.Wipe(priv)

	kp, err := crypto.NewKeyPair(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	authSecret, err := crypto.DecodeBase64URLSize("auth", auth, crypto.AuthSecretSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return &Recipient{keyPair: kp, auth: authSecret}, nil
}

// Keys returns the subscription keys a sender needs to encrypt for r.
// A Recipient not built by GenerateRecipient or NewRecipient has no keys.
func (r *Recipient) Keys() Keys {
	if r == nil || r.keyPair == nil {
		return Keys{}
	}
	return Keys{
		P256dh: crypto.ToBase64URL(r.keyPair.PublicKey),
		Auth:   crypto.ToBase64URL(r.auth),
	}
}

// Subscription returns a subscription for endpoint carrying r's keys.
func (r *Recipient) Subscription(endpoint string) *Subscription {
	return &Subscription{
		Endpoint: endpoint,
		Keys:     r.Keys(),
	}
}

// PrivateKeyB64 exports the private key as base64url so the recipient can
// be restored with NewRecipient. Treat the result as a secret.
func (r *Recipient) PrivateKeyB64() string {
	if r == nil || r.keyPair == nil {
		return ""
	}
	priv := r.keyPair.PrivateKeyBytes()
	defer crypto.Wipe(priv)
	return crypto.ToBase64URL(priv)
}

// Decrypt opens an aes128gcm body addressed to r and returns the plaintext.
func (r *Recipient) Decrypt(body []byte) ([]byte, error) {
	if r == nil || r.keyPair == nil {
		return nil, &DecryptionError{Stage: "key", Err: fmt.Errorf("%w: recipient has no key pair", ErrInvalidInput)}
	}

	plaintext, err := crypto.OpenRecord(body, r.keyPair, r.auth)
	if err != nil {
		return nil, &DecryptionError{Stage: decryptionStage(err), Err: err}
	}
	return plaintext, nil
}
