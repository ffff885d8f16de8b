package webpush

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/vaultsandbox/webpush-go/internal/crypto"
)

const (
	// DefaultRecordSize is the rs value written to the header by default.
	DefaultRecordSize = crypto.DefaultRecordSize

	// DefaultMaxMessageSize is the largest encrypted body push services are
	// required to accept.
	DefaultMaxMessageSize = 4096

	// ContentEncoding is the HTTP Content-Encoding of an encrypted body.
	ContentEncoding = crypto.ContentEncoding
)

// encrypterConfig holds configuration for an Encrypter.
type encrypterConfig struct {
	rand           io.Reader
	recordSize     uint32
	padding        int
	maxMessageSize int
}

// Option configures an Encrypter.
type Option func(*encrypterConfig)

func defaultConfig() *encrypterConfig {
	return &encrypterConfig{
		rand:           rand.Reader,
		recordSize:     DefaultRecordSize,
		maxMessageSize: DefaultMaxMessageSize,
	}
}

// WithRandReader sets the source of salts and ephemeral keys.
// A nil reader restores the default, crypto/rand.Reader.
func WithRandReader(r io.Reader) Option {
	return func(c *encrypterConfig) {
		if r == nil {
			r = rand.Reader
		}
		c.rand = r
	}
}

// WithRecordSize sets the record size written to the header.
// Zero sizes the record to fit the padded plaintext exactly.
// Default: 4096
func WithRecordSize(size uint32) Option {
	return func(c *encrypterConfig) {
		c.recordSize = size
	}
}

// WithPadding appends n zero bytes after the plaintext delimiter to hide the
// plaintext length.
func WithPadding(n int) Option {
	return func(c *encrypterConfig) {
		c.padding = n
	}
}

// WithMaxMessageSize sets the largest encrypted body Encrypt will return.
// Zero disables the check.
// Default: 4096
func WithMaxMessageSize(n int) Option {
	return func(c *encrypterConfig) {
		c.maxMessageSize = n
	}
}

// validate reports every invalid setting at once.
func (c *encrypterConfig) validate() error {
	var errs []string

	if c.recordSize != 0 && c.recordSize < crypto.MinRecordSize {
		errs = append(errs, fmt.Sprintf("record size %d is below the minimum of %d", c.recordSize, crypto.MinRecordSize))
	}
	if c.padding < 0 {
		errs = append(errs, fmt.Sprintf("padding %d must not be negative", c.padding))
	} else if int64(c.padding) > crypto.MaxRecordPadding {
		errs = append(errs, fmt.Sprintf("padding %d exceeds the largest record's %d", c.padding, int64(crypto.MaxRecordPadding)))
	}
	if c.maxMessageSize < 0 {
		errs = append(errs, fmt.Sprintf("max message size %d must not be negative", c.maxMessageSize))
	} else if c.maxMessageSize > 0 && c.maxMessageSize < crypto.RecordHeaderSize+crypto.MinRecordSize {
		errs = append(errs, fmt.Sprintf("max message size %d cannot hold a %d-byte header and the smallest record",
			c.maxMessageSize, crypto.RecordHeaderSize))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func (c *encrypterConfig) recordOptions() crypto.RecordOptions {
	return crypto.RecordOptions{
		RecordSize: c.recordSize,
		Padding:    c.padding,
	}
}
