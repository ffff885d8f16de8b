package crypto

// Wipe zeroes b in place. Secret buffers are wiped with a deferred call as
// soon as the value that owns them is consumed.
func Wipe(b []byte) {
	clear(b)
}
