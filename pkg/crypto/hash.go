// Package crypto provides the cryptographic primitives for Acryl:
// the BLAKE2b/Keccak hash pipeline, Curve25519 account keys and
// detached signatures, and address derivation.
package crypto

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the output length of the hash pipeline in bytes.
const DigestSize = 32

// SecureHash computes the chained digest used everywhere on the wire:
// BLAKE2b-256 of the input, then legacy Keccak-256 of that digest.
// Address payload hashes and checksums are truncations of this value.
func SecureHash(data []byte) [DigestSize]byte {
	blake := blake2b.Sum256(data)
	return keccak256(blake[:])
}

// keccak256 computes the pre-standard Keccak-256 digest (not SHA3-256;
// the chain predates the FIPS 202 padding change).
func keccak256(data []byte) [DigestSize]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var digest [DigestSize]byte
	h.Sum(digest[:0])
	return digest
}
