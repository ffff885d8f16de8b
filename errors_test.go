package webpush

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrDecode", ErrDecode},
		{"ErrInvalidKey", ErrInvalidKey},
		{"ErrLength", ErrLength},
		{"ErrRange", ErrRange},
		{"ErrCryptoUnavailable", ErrCryptoUnavailable},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrRecordTooLarge", ErrRecordTooLarge},
		{"ErrInvalidRecord", ErrInvalidRecord},
		{"ErrDecryptionFailed", ErrDecryptionFailed},
		{"ErrEncryptionFailed", ErrEncryptionFailed},
		{"ErrMessageTooLarge", ErrMessageTooLarge},
		{"ErrInvalidSubscription", ErrInvalidSubscription},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Fatal("sentinel is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel has an empty message")
			}
		})
	}
}

func TestEncryptionError(t *testing.T) {
	inner := fmt.Errorf("%w: decode p256dh: %w", ErrInvalidInput, ErrDecode)
	err := &EncryptionError{Stage: "input", Err: inner}

	if want := "encryption failed at input: " + inner.Error(); err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	for _, target := range []error{ErrEncryptionFailed, ErrInvalidInput, ErrDecode} {
		if !errors.Is(err, target) {
			t.Errorf("errors.Is(err, %v) = false, want true", target)
		}
	}
	if errors.Is(err, ErrDecryptionFailed) {
		t.Error("EncryptionError should not match ErrDecryptionFailed")
	}
	if errors.Unwrap(err) != inner {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), inner)
	}
}

func TestDecryptionError(t *testing.T) {
	err := &DecryptionError{Stage: "record", Err: ErrInvalidRecord}

	if want := "decryption failed at record: invalid record"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Error("DecryptionError should match ErrDecryptionFailed")
	}
	if !errors.Is(err, ErrInvalidRecord) {
		t.Error("DecryptionError should match its cause")
	}
	if errors.Is(err, ErrEncryptionFailed) {
		t.Error("DecryptionError should not match ErrEncryptionFailed")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Errors: []string{"endpoint is required", "keys.auth is required"}}
	if want := "validation failed: endpoint is required; keys.auth is required"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWebPushErrorInterface(t *testing.T) {
	errs := []WebPushError{
		&EncryptionError{Stage: "seal", Err: errors.New("x")},
		&DecryptionError{Stage: "aes", Err: errors.New("x")},
		&ValidationError{},
	}

	for _, err := range errs {
		var target WebPushError
		if !errors.As(fmt.Errorf("wrapped: %w", err), &target) {
			t.Errorf("%T does not unwrap to WebPushError", err)
		}
	}
}

func TestEncryptionStage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: bad key", ErrInvalidInput), "input"},
		{fmt.Errorf("%w: read salt", ErrCryptoUnavailable), "random"},
		{fmt.Errorf("%w: 5000 bytes", ErrRecordTooLarge), "record"},
		{ErrRange, "record"},
		{errors.New("other"), "seal"},
	}

	for _, tt := range tests {
		if got := encryptionStage(tt.err); got != tt.want {
			t.Errorf("encryptionStage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestDecryptionStage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidRecord, "record"},
		{ErrInvalidInput, "key"},
		{ErrInvalidKey, "key"},
		{ErrDecryptionFailed, "aes"},
	}

	for _, tt := range tests {
		if got := decryptionStage(tt.err); got != tt.want {
			t.Errorf("decryptionStage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
