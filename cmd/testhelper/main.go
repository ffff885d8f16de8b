package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	webpush "github.com/vaultsandbox/webpush-go"
)

// Config holds the I/O streams used by the helper.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// exitFunc is replaced in tests.
var exitFunc = os.Exit

// KeysOutput is written by generate-keys. It carries everything needed to
// encrypt for and decrypt as the generated recipient.
type KeysOutput struct {
	PrivateKey string `json:"privateKey"`
	P256dh     string `json:"p256dh"`
	Auth       string `json:"auth"`
}

// EncryptInput is read by encrypt. Plaintext is base64url.
type EncryptInput struct {
	P256dh     string  `json:"p256dh"`
	Auth       string  `json:"auth"`
	Plaintext  string  `json:"plaintext"`
	RecordSize *uint32 `json:"recordSize,omitempty"`
	Padding    int     `json:"padding,omitempty"`
}

// EncryptOutput is written by encrypt. Body is base64url.
type EncryptOutput struct {
	Body            string `json:"body"`
	ContentEncoding string `json:"contentEncoding"`
}

// DecryptInput is read by decrypt. Body is base64url.
type DecryptInput struct {
	PrivateKey string `json:"privateKey"`
	Auth       string `json:"auth"`
	Body       string `json:"body"`
}

// DecryptOutput is written by decrypt. Plaintext is base64url.
type DecryptOutput struct {
	Plaintext string `json:"plaintext"`
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <generate-keys|encrypt|decrypt>")
	}

	switch args[1] {
	case "generate-keys":
		return runGenerateKeys(cfg)
	case "encrypt":
		return runEncrypt(cfg)
	case "decrypt":
		return runDecrypt(cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func runGenerateKeys(cfg *Config) error {
	recipient, err := webpush.GenerateRecipient(nil)
	if err != nil {
		return fmt.Errorf("generate keys: %w", err)
	}

	keys := recipient.Keys()
	return writeJSON(cfg, KeysOutput{
		PrivateKey: recipient.PrivateKeyB64(),
		P256dh:     keys.P256dh,
		Auth:       keys.Auth,
	})
}

func runEncrypt(cfg *Config) error {
	var in EncryptInput
	if err := readJSON(cfg, &in); err != nil {
		return err
	}

	plaintext, err := base64.RawURLEncoding.DecodeString(in.Plaintext)
	if err != nil {
		return fmt.Errorf("decode plaintext: %w", err)
	}

	opts := []webpush.Option{
		webpush.WithPadding(in.Padding),
		// Peers may send bodies larger than a push service would accept.
		webpush.WithMaxMessageSize(0),
	}
	if in.RecordSize != nil {
		opts = append(opts, webpush.WithRecordSize(*in.RecordSize))
	}

	body, err := webpush.Encrypt(in.P256dh, in.Auth, plaintext, opts...)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	return writeJSON(cfg, EncryptOutput{
		Body:            base64.RawURLEncoding.EncodeToString(body),
		ContentEncoding: webpush.ContentEncoding,
	})
}

func runDecrypt(cfg *Config) error {
	var in DecryptInput
	if err := readJSON(cfg, &in); err != nil {
		return err
	}

	recipient, err := webpush.NewRecipient(in.PrivateKey, in.Auth)
	if err != nil {
		return fmt.Errorf("load recipient: %w", err)
	}

	body, err := base64.RawURLEncoding.DecodeString(in.Body)
	if err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	plaintext, err := recipient.Decrypt(body)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	return writeJSON(cfg, DecryptOutput{
		Plaintext: base64.RawURLEncoding.EncodeToString(plaintext),
	})
}

func readJSON(cfg *Config, v any) error {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	return nil
}

func writeJSON(cfg *Config, v any) error {
	if err := json.NewEncoder(cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	exitFunc(1)
}
