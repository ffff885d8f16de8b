package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HMACSHA256 returns HMAC-SHA-256(key, message). The result is always
// HashSize bytes.
func HMACSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
