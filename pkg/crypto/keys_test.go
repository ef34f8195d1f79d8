package crypto

import (
	"testing"
)

func TestDerivePrivateKey_Deterministic(t *testing.T) {
	seed := []byte("test seed phrase")

	a := DerivePrivateKey(seed, 0)
	b := DerivePrivateKey(seed, 0)
	if a != b {
		t.Error("same seed and nonce should derive the same private key")
	}
}

func TestDerivePrivateKey_NonceChangesKey(t *testing.T) {
	seed := []byte("test seed phrase")

	a := DerivePrivateKey(seed, 0)
	b := DerivePrivateKey(seed, 1)
	if a == b {
		t.Error("different nonces should derive different private keys")
	}
}

func TestDerivePrivateKey_Clamping(t *testing.T) {
	seeds := []string{"test seed phrase", "another seed", "x"}
	for _, seed := range seeds {
		for nonce := uint32(0); nonce < 4; nonce++ {
			k := DerivePrivateKey([]byte(seed), nonce)
			if k[0]&0b111 != 0 {
				t.Errorf("seed %q nonce %d: low 3 bits of byte 0 not cleared: %08b", seed, nonce, k[0])
			}
			if k[31]&0x80 != 0 {
				t.Errorf("seed %q nonce %d: top bit of byte 31 not cleared: %08b", seed, nonce, k[31])
			}
			if k[31]&0x40 == 0 {
				t.Errorf("seed %q nonce %d: bit 6 of byte 31 not set: %08b", seed, nonce, k[31])
			}
		}
	}
}

func TestPublicKey_Deterministic(t *testing.T) {
	priv := DerivePrivateKey([]byte("test seed phrase"), 0)

	a := priv.PublicKey()
	b := priv.PublicKey()
	if a != b {
		t.Error("public key derivation should be deterministic")
	}
	if a == (PublicKey{}) {
		t.Error("public key should not be zero")
	}
}

func TestNewKeyPair(t *testing.T) {
	seed := []byte("test seed phrase")
	kp := NewKeyPair(seed, 7)

	if kp.Nonce != 7 {
		t.Errorf("Nonce = %d, want 7", kp.Nonce)
	}
	if kp.Private != DerivePrivateKey(seed, 7) {
		t.Error("key pair private key mismatch")
	}
	if kp.Public != kp.Private.PublicKey() {
		t.Error("key pair public key mismatch")
	}
}

func TestPrivateKey_StringRoundTrip(t *testing.T) {
	priv := DerivePrivateKey([]byte("round trip seed"), 0)

	decoded, err := PrivateKeyFromString(priv.String())
	if err != nil {
		t.Fatalf("PrivateKeyFromString error: %v", err)
	}
	if decoded != priv {
		t.Error("private key String round-trip mismatch")
	}
}

func TestPublicKey_StringRoundTrip(t *testing.T) {
	pub := DerivePrivateKey([]byte("round trip seed"), 0).PublicKey()

	decoded, err := PublicKeyFromString(pub.String())
	if err != nil {
		t.Fatalf("PublicKeyFromString error: %v", err)
	}
	if decoded != pub {
		t.Error("public key String round-trip mismatch")
	}
}

func TestPublicKeyFromString_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not base58", "0OIl+/"},
		{"wrong length", "3QJmV3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PublicKeyFromString(tt.input); err == nil {
				t.Errorf("PublicKeyFromString(%q) should fail", tt.input)
			}
		})
	}
}
