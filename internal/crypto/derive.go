package crypto

import (
	"fmt"
)

// KeyAndNonce is the content-encryption key and nonce for one record.
type KeyAndNonce struct {
	// Key is the 16-byte AES-128-GCM key.
	Key []byte
	// Nonce is the 12-byte AES-GCM nonce.
	Nonce []byte
}

// Wipe zeroes the key and nonce. Call it once the record is sealed or opened.
func (kn *KeyAndNonce) Wipe() {
	if kn == nil {
		return
	}
	Wipe(kn.Key)
	Wipe(kn.Nonce)
}

// DeriveParams are the sender-side inputs to DeriveKeyAndNonce.
type DeriveParams struct {
	// Salt is the 16-byte per-message salt.
	Salt []byte
	// LocalKeyPair is the sender's ephemeral key pair.
	LocalKeyPair *KeyPair
	// RemotePublicKey is the recipient's 65-byte public key (p256dh).
	RemotePublicKey []byte
	// AuthSecret is the recipient's 16-byte authentication secret.
	AuthSecret []byte
}

// KeyInfo builds "WebPush: info" || 0x00 || ua_public || as_public, where
// uaPublic is the receiver's key and asPublic the sender's.
func KeyInfo(uaPublic, asPublic []byte) []byte {
	info := make([]byte, 0, len(KeyInfoLabel)+1+len(uaPublic)+len(asPublic))
	info = append(info, KeyInfoLabel...)
	info = append(info, LabelSeparator)
	info = append(info, uaPublic...)
	info = append(info, asPublic...)
	return info
}

// CEKInfo builds "Content-Encoding: aes128gcm" || 0x00.
func CEKInfo() []byte {
	return append([]byte(CEKInfoLabel), LabelSeparator)
}

// NonceInfo builds "Content-Encoding: nonce" || 0x00.
func NonceInfo() []byte {
	return append([]byte(NonceInfoLabel), LabelSeparator)
}

// DeriveIKM runs the first HKDF pass: the authentication secret salts the
// ECDH secret and keyInfo binds both public keys into the 32-byte result.
func DeriveIKM(sharedSecret, authSecret, keyInfo []byte) ([]byte, error) {
	ikm, err := DeriveKey(sharedSecret, authSecret, keyInfo, IKMSize)
	if err != nil {
		return nil, fmt.Errorf("derive ikm: %w", err)
	}
	return ikm, nil
}

// DeriveKeyAndNonceFromIKM runs the second HKDF pass: the message salt
// extracts a PRK from ikm, which is expanded into the key and the nonce.
func DeriveKeyAndNonceFromIKM(ikm, salt []byte) (*KeyAndNonce, error) {
	prk := Extract(salt, ikm)
	defer Wipe(prk)

	key, err := Expand(prk, CEKInfo(), AESKeySize)
	if err != nil {
		return nil, fmt.Errorf("derive content-encryption key: %w", err)
	}

	nonce, err := Expand(prk, NonceInfo(), AESNonceSize)
	if err != nil {
		Wipe(key)
		return nil, fmt.Errorf("derive nonce: %w", err)
	}

	return &KeyAndNonce{Key: key, Nonce: nonce}, nil
}

// DeriveKeyAndNonce derives the sender's record key and nonce.
//
// The derivation:
//  1. ECDH between the local private key and the remote public key
//  2. ikm = HKDF(salt=authSecret, ikm=ecdh, info=KeyInfo(remote, local), 32)
//  3. key = HKDF(salt=salt, ikm=ikm, info=CEKInfo(), 16)
//  4. nonce = HKDF(salt=salt, ikm=ikm, info=NonceInfo(), 12)
func DeriveKeyAndNonce(p DeriveParams) (*KeyAndNonce, error) {
	if p.LocalKeyPair == nil {
		return nil, fmt.Errorf("%w: missing local key pair", ErrInvalidInput)
	}
	return deriveKeyAndNonce(p.LocalKeyPair, p.RemotePublicKey, p.RemotePublicKey, p.LocalKeyPair.PublicKey, p.AuthSecret, p.Salt)
}

// deriveKeyAndNonce is shared by both roles; only the order of the public
// keys in the key info differs, and it always lists the receiver first.
func deriveKeyAndNonce(local *KeyPair, remotePublic, uaPublic, asPublic, authSecret, salt []byte) (*KeyAndNonce, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrInvalidInput, len(salt), SaltSize)
	}
	if len(authSecret) != AuthSecretSize {
		return nil, fmt.Errorf("%w: auth secret is %d bytes, want %d", ErrInvalidInput, len(authSecret), AuthSecretSize)
	}

	sharedSecret, err := local.SharedSecret(remotePublic)
	if err != nil {
		return nil, fmt.Errorf("compute shared secret: %w", err)
	}
	defer Wipe(sharedSecret)

	ikm, err := DeriveIKM(sharedSecret, authSecret, KeyInfo(uaPublic, asPublic))
	if err != nil {
		return nil, err
	}
	defer Wipe(ikm)

	return DeriveKeyAndNonceFromIKM(ikm, salt)
}
