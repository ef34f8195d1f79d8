package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/curve25519"
)

// Key sizes in bytes.
const (
	PrivateKeySize = 32
	PublicKeySize  = 32
)

// PrivateKey is a clamped Curve25519 scalar.
type PrivateKey [PrivateKeySize]byte

// PublicKey is a Curve25519 public key (Montgomery u-coordinate).
type PublicKey [PublicKeySize]byte

// DerivePrivateKey derives the account private key for a seed and nonce:
// SecureHash(nonce_be4 ‖ seed) → SHA-256 → Curve25519 clamp.
// The derivation is deterministic; it is how wallets reconstruct keys.
func DerivePrivateKey(seed []byte, nonce uint32) PrivateKey {
	input := make([]byte, 4+len(seed))
	binary.BigEndian.PutUint32(input, nonce)
	copy(input[4:], seed)

	digest := SecureHash(input)
	raw := sha256.Sum256(digest[:])
	return clampPrivateKey(raw)
}

// clampPrivateKey applies the standard Curve25519 scalar clamping.
func clampPrivateKey(raw [32]byte) PrivateKey {
	raw[0] &= 248
	raw[31] &= 127
	raw[31] |= 64
	return PrivateKey(raw)
}

// PublicKey returns the Curve25519 public key for this private key
// (base-point scalar multiplication).
func (k PrivateKey) PublicKey() PublicKey {
	pub, err := curve25519.X25519(k[:], curve25519.Basepoint)
	if err != nil {
		// Only possible for the all-zero point, which clamping rules out.
		panic("crypto: curve25519 scalar multiplication failed: " + err.Error())
	}
	var out PublicKey
	copy(out[:], pub)
	return out
}

// String returns the base58 text form of the private key.
func (k PrivateKey) String() string {
	return base58.Encode(k[:])
}

// String returns the base58 text form of the public key.
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// PrivateKeyFromString decodes a base58-encoded private key.
func PrivateKeyFromString(s string) (PrivateKey, error) {
	var k PrivateKey
	b, err := base58.Decode(s)
	if err != nil {
		return k, fmt.Errorf("decode private key: %w", err)
	}
	if len(b) != PrivateKeySize {
		return k, fmt.Errorf("private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// PublicKeyFromString decodes a base58-encoded public key.
func PublicKeyFromString(s string) (PublicKey, error) {
	var k PublicKey
	b, err := base58.Decode(s)
	if err != nil {
		return k, fmt.Errorf("decode public key: %w", err)
	}
	if len(b) != PublicKeySize {
		return k, fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// KeyPair holds a matching private and public key. When the pair was
// derived rather than supplied, Seed and Nonce record the origin.
type KeyPair struct {
	Private PrivateKey
	Public  PublicKey
	Seed    []byte
	Nonce   uint32
}

// NewKeyPair derives a key pair from seed bytes and a nonce.
func NewKeyPair(seed []byte, nonce uint32) KeyPair {
	priv := DerivePrivateKey(seed, nonce)
	return KeyPair{
		Private: priv,
		Public:  priv.PublicKey(),
		Seed:    append([]byte(nil), seed...),
		Nonce:   nonce,
	}
}

// KeyPairFromPrivateKey builds a key pair from an existing private key.
func KeyPairFromPrivateKey(priv PrivateKey) KeyPair {
	return KeyPair{Private: priv, Public: priv.PublicKey()}
}
