package webpush

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vaultsandbox/webpush-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrDecode is returned when base64url input is malformed or decodes to
	// the wrong number of bytes.
	ErrDecode = crypto.ErrDecode

	// ErrInvalidKey is returned when a key is not a valid P-256 key.
	ErrInvalidKey = crypto.ErrInvalidKey

	// ErrLength is returned when more key material is requested than
	// HKDF-SHA-256 can produce.
	ErrLength = crypto.ErrLength

	// ErrRange is returned when a header field does not fit its encoding.
	ErrRange = crypto.ErrRange

	// ErrCryptoUnavailable is returned when the random source or a primitive
	// fails. It is not recoverable by retrying with the same inputs.
	ErrCryptoUnavailable = crypto.ErrCryptoUnavailable

	// ErrInvalidInput is returned when subscription keys are unusable.
	ErrInvalidInput = crypto.ErrInvalidInput

	// ErrRecordTooLarge is returned when the plaintext and padding do not
	// fit in the configured record size.
	ErrRecordTooLarge = crypto.ErrRecordTooLarge

	// ErrInvalidRecord is returned when an encrypted body is malformed.
	ErrInvalidRecord = crypto.ErrInvalidRecord

	// ErrDecryptionFailed is returned when a body cannot be decrypted.
	ErrDecryptionFailed = crypto.ErrDecryptionFailed

	// ErrEncryptionFailed is returned when a message cannot be encrypted.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrMessageTooLarge is returned when the encrypted body exceeds the
	// configured maximum message size.
	ErrMessageTooLarge = errors.New("encrypted message too large")

	// ErrInvalidSubscription is returned when a push subscription cannot be
	// parsed or fails validation.
	ErrInvalidSubscription = errors.New("invalid push subscription")
)

// WebPushError is implemented by all typed errors in this package.
type WebPushError interface {
	error
	WebPushError() // marker method
}

// EncryptionError reports the stage at which encrypting a message failed.
type EncryptionError struct {
	Stage string // "input", "random", "record", "seal", "size"
	Err   error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// WebPushError implements the WebPushError interface.
func (e *EncryptionError) WebPushError() {}

// DecryptionError reports the stage at which decrypting a body failed.
type DecryptionError struct {
	Stage string // "record", "key", "aes"
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// WebPushError implements the WebPushError interface.
func (e *DecryptionError) WebPushError() {}

// ValidationError contains multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// WebPushError implements the WebPushError interface.
func (e *ValidationError) WebPushError() {}

func encryptionStage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "input"
	case errors.Is(err, ErrCryptoUnavailable):
		return "random"
	case errors.Is(err, ErrRecordTooLarge), errors.Is(err, ErrRange):
		return "record"
	default:
		return "seal"
	}
}

func decryptionStage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRecord):
		return "record"
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidKey):
		return "key"
	default:
		return "aes"
	}
}
