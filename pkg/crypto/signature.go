package crypto

import (
	"bytes"
	"crypto/rand"
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"github.com/mr-tron/base58"
)

// SignatureSize is the length of a detached signature in bytes.
const SignatureSize = 64

// Signature is a detached Curve25519 signature (R ‖ s, with the sign bit
// of the Edwards public key carried in the top bit of byte 63).
type Signature [SignatureSize]byte

// Sign produces a detached signature over msg with the given private key.
// Sixty-four bytes of fresh CSPRNG output are mixed into the nonce hash,
// so two signatures over the same message differ but both verify.
func Sign(priv PrivateKey, msg []byte) (Signature, error) {
	var random [64]byte
	if _, err := rand.Read(random[:]); err != nil {
		return Signature{}, fmt.Errorf("read signature entropy: %w", err)
	}
	return sign(priv, msg, random)
}

// sign is the deterministic core of Sign, split out so tests can pin the
// random input. Scheme: r = SHA-512(0xFE ‖ 0xFF×31 ‖ key ‖ msg ‖ random)
// mod L, R = rB, h = SHA-512(R ‖ A ‖ msg) mod L, s = r + h·a.
func sign(priv PrivateKey, msg []byte, random [64]byte) (Signature, error) {
	a, err := edwards25519.NewScalar().SetBytesWithClamping(priv[:])
	if err != nil {
		return Signature{}, fmt.Errorf("load private scalar: %w", err)
	}
	edPub := new(edwards25519.Point).ScalarBaseMult(a).Bytes()
	signBit := edPub[31] & 0x80

	nonceHash := sha512.New()
	prefix := [32]byte{0: 0xFE}
	for i := 1; i < 32; i++ {
		prefix[i] = 0xFF
	}
	nonceHash.Write(prefix[:])
	nonceHash.Write(priv[:])
	nonceHash.Write(msg)
	nonceHash.Write(random[:])

	r, err := edwards25519.NewScalar().SetUniformBytes(nonceHash.Sum(nil))
	if err != nil {
		return Signature{}, fmt.Errorf("reduce nonce scalar: %w", err)
	}
	rPoint := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	challenge := sha512.New()
	challenge.Write(rPoint)
	challenge.Write(edPub)
	challenge.Write(msg)
	h, err := edwards25519.NewScalar().SetUniformBytes(challenge.Sum(nil))
	if err != nil {
		return Signature{}, fmt.Errorf("reduce challenge scalar: %w", err)
	}

	s := edwards25519.NewScalar().MultiplyAdd(h, a, r)

	var sig Signature
	copy(sig[:32], rPoint)
	copy(sig[32:], s.Bytes())
	sig[63] |= signBit
	return sig, nil
}

// Verify reports whether sig is a valid signature over msg for pub.
// The Montgomery public key is converted to its Edwards form, taking the
// sign bit from the signature, then the standard double-scalar equation
// R == sB - hA is checked.
func Verify(pub PublicKey, sig Signature, msg []byte) bool {
	edPub, ok := montgomeryToEdwards(pub, sig[63]&0x80)
	if !ok {
		return false
	}
	point, err := new(edwards25519.Point).SetBytes(edPub)
	if err != nil {
		return false
	}

	var sBytes [32]byte
	copy(sBytes[:], sig[32:])
	sBytes[31] &= 0x7F
	s, err := edwards25519.NewScalar().SetCanonicalBytes(sBytes[:])
	if err != nil {
		return false
	}

	challenge := sha512.New()
	challenge.Write(sig[:32])
	challenge.Write(edPub)
	challenge.Write(msg)
	h, err := edwards25519.NewScalar().SetUniformBytes(challenge.Sum(nil))
	if err != nil {
		return false
	}

	minusA := new(edwards25519.Point).Negate(point)
	check := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(h, minusA, s)
	return bytes.Equal(check.Bytes(), sig[:32])
}

// montgomeryToEdwards maps a Montgomery u-coordinate to the Edwards
// y-coordinate, y = (u-1)/(u+1), with the given sign bit.
func montgomeryToEdwards(pub PublicKey, signBit byte) ([]byte, bool) {
	u := new(field.Element)
	if _, err := u.SetBytes(pub[:]); err != nil {
		return nil, false
	}
	one := new(field.Element).One()
	num := new(field.Element).Subtract(u, one)
	den := new(field.Element).Add(u, one)
	if den.Equal(new(field.Element).Zero()) == 1 {
		return nil, false
	}
	y := num.Multiply(num, den.Invert(den))

	edPub := y.Bytes()
	edPub[31] |= signBit
	return edPub, true
}

// SignatureFromString decodes a base58-encoded signature.
func SignatureFromString(s string) (Signature, error) {
	var sig Signature
	b, err := base58.Decode(s)
	if err != nil {
		return sig, fmt.Errorf("decode signature: %w", err)
	}
	if len(b) != SignatureSize {
		return sig, fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// String returns the base58 text form of the signature.
func (s Signature) String() string {
	return base58.Encode(s[:])
}
