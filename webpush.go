package webpush

import (
	"fmt"

	"github.com/vaultsandbox/webpush-go/internal/crypto"
)

// Encrypter encrypts push message payloads for subscription keys.
//
// An Encrypter holds only configuration and is safe for concurrent use.
// Every call draws a fresh salt and ephemeral key pair from the configured
// random source.
type Encrypter struct {
	cfg *encrypterConfig
	err error
}

// NewEncrypter creates an Encrypter with the given options.
// Invalid options are reported as a *ValidationError by every Encrypt call.
func NewEncrypter(opts ...Option) *Encrypter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Encrypter{
		cfg: cfg,
		err: cfg.validate(),
	}
}

// Encrypt encrypts plaintext for the receiver whose subscription carries the
// given p256dh public key and auth secret, both unpadded base64url.
//
// The result is a complete aes128gcm body: the header followed by a single
// sealed record. Send it with the Content-Encoding header set to
// ContentEncoding.
func (e *Encrypter) Encrypt(p256dh, auth string, plaintext []byte) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}

	opts := e.cfg.recordOptions()

	// Size the body before any buffer is allocated.
	sealedLen, _, err := crypto.RecordLength(len(plaintext), opts)
	if err != nil {
		return nil, &EncryptionError{Stage: encryptionStage(err), Err: err}
	}
	bodyLen := crypto.RecordHeaderSize + sealedLen
	if e.cfg.maxMessageSize > 0 && bodyLen > int64(e.cfg.maxMessageSize) {
		return nil, &EncryptionError{
			Stage: "size",
			Err:   fmt.Errorf("%w: %d bytes, limit %d", ErrMessageTooLarge, bodyLen, e.cfg.maxMessageSize),
		}
	}

	body, err := crypto.EncryptContent(e.cfg.rand, p256dh, auth, plaintext, opts)
	if err != nil {
		return nil, &EncryptionError{Stage: encryptionStage(err), Err: err}
	}

	return body, nil
}

// EncryptFor validates sub and encrypts plaintext for its keys.
func (e *Encrypter) EncryptFor(sub *Subscription, plaintext []byte) ([]byte, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	return e.Encrypt(sub.Keys.P256dh, sub.Keys.Auth, plaintext)
}

// Encrypt encrypts plaintext for the given subscription keys using an
// Encrypter built from opts.
func Encrypt(p256dh, auth string, plaintext []byte, opts ...Option) ([]byte, error) {
	return NewEncrypter(opts...).Encrypt(p256dh, auth, plaintext)
}
