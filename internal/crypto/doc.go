// Package crypto implements Web Push message encryption (RFC 8291) on top of
// the aes128gcm content coding (RFC 8188), restricted to single-record bodies.
//
// # Algorithm Suite
//
//   - ECDH on P-256: an ephemeral sender key pair per message agrees on a
//     32-byte secret with the subscription's p256dh key.
//
//   - HKDF-SHA-256 (RFC 5869): two chained passes. The first mixes the
//     subscription auth secret and both public keys into a 32-byte IKM; the
//     second mixes the per-message salt into the content-encryption key and
//     nonce.
//
//   - AES-128-GCM: authenticated encryption of the padded plaintext with a
//     16-byte tag and no additional data.
//
// # Wire Format
//
// Every body is one record:
//
//	salt (16) || rs (4, big-endian) || idlen (1) || keyid (idlen) || ciphertext || tag
//
// The key id is the sender's 65-byte uncompressed public key. The plaintext
// is followed by the 0x02 delimiter and optional zero padding before it is
// sealed.
//
// # Key Derivation
//
// The info strings are built from [KeyInfoLabel], [CEKInfoLabel] and
// [NonceInfoLabel], each terminated by [LabelSeparator]. Any deviation in
// these bytes or in the order of the public keys in [KeyInfo] produces a
// body no browser can decrypt, so each stage ([DeriveIKM],
// [DeriveKeyAndNonceFromIKM]) is exported and tested on its own.
//
// # Randomness and Secrets
//
// Salts and ephemeral keys come from an io.Reader passed by the caller.
// Shared secrets, pseudo-random keys, derived keys and padded plaintexts are
// wiped with [Wipe] once consumed, and ephemeral key pairs are destroyed
// before [EncryptContent] returns.
//
// # Base64 Encoding
//
// Subscription keys travel as URL-safe base64 without padding (RFC 4648 §5):
// [ToBase64URL]/[FromBase64URL].
package crypto
