// Package webpush encrypts push message payloads for delivery through an
// untrusted push service, following RFC 8291 and the aes128gcm content
// encoding of RFC 8188.
//
// A sender holds the p256dh public key and auth secret from a browser push
// subscription. Each call to Encrypt generates a fresh ephemeral P-256 key
// pair and salt, agrees on a shared secret with the subscription key, and
// seals the payload into a single AES-128-GCM record that only the
// subscription's private key can open.
//
// Basic usage:
//
//	sub, err := webpush.ParseSubscription(subscriptionJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	body, err := webpush.NewEncrypter().EncryptFor(sub, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// POST body to sub.Endpoint with "Content-Encoding: aes128gcm".
//
// Delivery to the push service, VAPID authentication and subscription
// storage are left to the caller.
package webpush
