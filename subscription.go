package webpush

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/vaultsandbox/webpush-go/internal/crypto"
)

// Keys holds the encryption keys of a push subscription.
type Keys struct {
	// P256dh is the receiver's uncompressed P-256 public key, base64url.
	P256dh string `json:"p256dh"`
	// Auth is the receiver's 16-byte authentication secret, base64url.
	Auth string `json:"auth"`
}

// Subscription is the JSON form of a browser push subscription.
type Subscription struct {
	Endpoint string `json:"endpoint"`
	// ExpirationTime is milliseconds since the Unix epoch, or nil.
	ExpirationTime *int64 `json:"expirationTime"`
	Keys           Keys   `json:"keys"`
}

// ParseSubscription decodes and validates a push subscription.
func ParseSubscription(data []byte) (*Subscription, error) {
	var sub Subscription
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Validate checks that the subscription has an absolute https endpoint and
// usable keys. All problems are reported together in a *ValidationError
// that also matches ErrInvalidSubscription.
func (s *Subscription) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: missing subscription", ErrInvalidSubscription)
	}

	var errs []string

	if s.Endpoint == "" {
		errs = append(errs, "endpoint is required")
	} else if u, err := url.Parse(s.Endpoint); err != nil || u.Scheme != "https" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("endpoint %q is not an absolute https URL", s.Endpoint))
	}

	if s.Keys.P256dh == "" {
		errs = append(errs, "keys.p256dh is required")
	} else if pub, err := crypto.DecodeBase64URLSize("keys.p256dh", s.Keys.P256dh, crypto.PublicKeySize); err != nil {
		errs = append(errs, err.Error())
	} else if _, err := crypto.ParsePublicKey(pub); err != nil {
		errs = append(errs, fmt.Sprintf("keys.p256dh: %v", err))
	}

	if s.Keys.Auth == "" {
		errs = append(errs, "keys.auth is required")
	} else if _, err := crypto.DecodeBase64URLSize("keys.auth", s.Keys.Auth, crypto.AuthSecretSize); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSubscription, &ValidationError{Errors: errs})
	}
	return nil
}

// Expired reports whether the subscription's expiration time has passed.
// A subscription without an expiration time never expires.
func (s *Subscription) Expired(now time.Time) bool {
	if s.ExpirationTime == nil {
		return false
	}
	return !now.Before(time.UnixMilli(*s.ExpirationTime))
}
