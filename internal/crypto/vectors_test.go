package crypto

import (
	"encoding/hex"
	"testing"
)

// RFC 8291 section 5 example.
const (
	rfcPlaintext       = "When I grow up, I want to be a watermelon"
	rfcSenderPrivate   = "yfWPiYE-n46HLnH0KqZOF1fJJU3MYrct3AELtAQ-oRw"
	rfcSenderPublic    = "BP4z9KsN6nGRTbVYI_c7VJSPQTBtkgcy27mlmlMoZIIgDll6e3vCYLocInmYWAmS6TlzAC8wEqKK6PBru3jl7A8"
	rfcReceiverPrivate = "q1dXpw3UpT5VOmu_cf_v6ih07Aems3njxI-JWgLcM94"
	rfcReceiverPublic  = "BCVxsr7N_eNgVRqvHtD0zTZsEc6-VV-JvLexhqUzORcxaOzi6-AYWXvTBHm4bjyPjs7Vd8pZGH6SRpkNtoIAiw4"
	rfcAuthSecret      = "BTBZMqHH6r4Tts7J_aSIgg"
	rfcSalt            = "DGv6ra1nlYgDCS1FRnbzlw"

	rfcSharedSecret = "932acbd63208387133837b0cd995911c3441eb66000998614a592727aef6912b"
	rfcPRKKey       = "4a7af724cc5a1d50d71d6267e70742e765a3a42b5dd84204181ca40dc656df69"
	rfcKeyInfo      = "576562507573683a20696e666f00" +
		"042571b2becdfde360551aaf1ed0f4cd366c11cebe555f89bcb7b186a53339173168ece2ebe018597bd30479b86e3c8f8eced577ca59187e9246990db682008b0e" +
		"04fe33f4ab0dea71914db55823f73b54948f41306d920732dbb9a59a53286482200e597a7b7bc260ba1c227998580992e93973002f3012a28ae8f06bbb78e5ec0f"
	rfcIKM   = "4b895831bfcbd05c427aad16843c7cd772a0498a94dba90ecb359476c5d8cab8"
	rfcPRK   = "d3dfde5191abb2fc428430864427642e20d7ad178638455e48274270f0522527"
	rfcCEK   = "a088555b4e0c45dcb65cdf4288a2f14e"
	rfcNonce = "e21ffde6495727913faa7a0d"

	rfcBody = "DGv6ra1nlYgDCS1FRnbzlwAAEABBBP4z9KsN6nGRTbVYI_c7VJSPQTBtkgcy27mlmlMoZIIgDll6e3vCYLocInmYWAmS6TlzAC8wEqKK6PBru3jl7A_yl95bQpu6cVPTpK4Mqgkf1CXztLVBSt2Ks3oZwbuwXPXLWyouBWLVWGNWQexSgSxsj_Qulcy4a-fN"
)

// Fixed inputs and outputs for the lower-level helpers.
var (
	fixtureSalt = []byte("3208123h08dsf9pnsadf")
	fixtureData = []byte("this is some data")

	fixtureAuthSecret = "ZFO3cPjB3ehHtfmB3Tdv7Q"
	fixtureDH         = "BI4D-BjQz3_y_zHW4EWD90DZRe9W1hiSrlaKIRpUzlhzyVZOH9OHowPju78y424Cdwz2hJ5qNTxEzZBVsVbduYI"

	fixtureKeyAndNonce = KeyAndNonce{
		Key:   []byte{250, 13, 71, 104, 127, 97, 86, 238, 51, 137, 76, 33, 207, 208, 201, 190},
		Nonce: []byte{90, 84, 77, 229, 216, 154, 30, 104, 88, 243, 51, 68},
	}

	fixturePublicKey = []byte{
		4, 8, 20, 141, 180, 101, 141, 238, 108, 162, 141, 227, 138, 164, 158, 27, 0,
		237, 185, 41, 207, 192, 9, 235, 225, 215, 140, 165, 109, 52, 199, 185, 202,
		86, 81, 48, 83, 187, 141, 196, 243, 232, 241, 239, 155, 93, 230, 44, 235,
		117, 113, 115, 183, 205, 68, 234, 248, 116, 34, 206, 201, 198, 169, 68, 47,
	}
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q) error = %v", s, err)
	}
	return b
}

func mustB64(t testing.TB, s string) []byte {
	t.Helper()
	b, err := FromBase64URL(s)
	if err != nil {
		t.Fatalf("FromBase64URL(%q) error = %v", s, err)
	}
	return b
}

func mustKeyPair(t testing.TB, privateB64 string) *KeyPair {
	t.Helper()
	kp, err := NewKeyPair(mustB64(t, privateB64))
	if err != nil {
		t.Fatalf("NewKeyPair() error = %v", err)
	}
	return kp
}
