// Package types defines the wire-level value types shared across the
// client: addresses, chain identifiers and text encodings.
package types

import (
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
)

// Address wire layout sizes in bytes.
const (
	AddressVersion      = 1
	AddressHashSize     = 20
	AddressChecksumSize = 4
	// AddressSize is the full decoded length:
	// version(1) + chain id(1) + public key hash(20) + checksum(4).
	AddressSize = 2 + AddressHashSize + AddressChecksumSize
)

// Address is the fixed-layout account address. The text form is the
// base58 encoding of the 26 raw bytes and is the de facto wire format.
type Address struct {
	version  byte
	chainID  byte
	hash     [AddressHashSize]byte
	checksum [AddressChecksumSize]byte
	text     string
}

// NewAddress assembles an address from its decoded parts. The checksum is
// stored as given; use crypto.VerifyAddress to check it.
func NewAddress(version, chainID byte, hash [AddressHashSize]byte, checksum [AddressChecksumSize]byte) Address {
	a := Address{version: version, chainID: chainID, hash: hash, checksum: checksum}
	a.text = base58.Encode(a.Bytes())
	return a
}

// DecodeAddress parses a base58 address string, performing structural
// checks only (length and version). Checksum verification needs the hash
// pipeline and lives in the crypto package.
func DecodeAddress(text string) (Address, error) {
	raw, err := base58.Decode(text)
	if err != nil {
		return Address{}, fmt.Errorf("decode address: %w", err)
	}
	if len(raw) != AddressSize {
		return Address{}, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(raw))
	}
	if raw[0] != AddressVersion {
		return Address{}, fmt.Errorf("unsupported address version %d", raw[0])
	}
	a := Address{version: raw[0], chainID: raw[1], text: text}
	copy(a.hash[:], raw[2:2+AddressHashSize])
	copy(a.checksum[:], raw[2+AddressHashSize:])
	return a, nil
}

// ChainIDFromAddress extracts the chain id byte from an address string
// without fully decoding it into an Address.
func ChainIDFromAddress(text string) (byte, error) {
	raw, err := base58.Decode(text)
	if err != nil {
		return 0, fmt.Errorf("decode address: %w", err)
	}
	if len(raw) < 2 {
		return 0, fmt.Errorf("address too short: %d bytes", len(raw))
	}
	return raw[1], nil
}

// Version returns the address version byte.
func (a Address) Version() byte { return a.version }

// ChainID returns the network tag byte.
func (a Address) ChainID() byte { return a.chainID }

// PublicKeyHash returns the truncated public key hash.
func (a Address) PublicKeyHash() [AddressHashSize]byte { return a.hash }

// Checksum returns the stored checksum bytes.
func (a Address) Checksum() [AddressChecksumSize]byte { return a.checksum }

// Bytes returns the raw 26-byte wire form.
func (a Address) Bytes() []byte {
	raw := make([]byte, 0, AddressSize)
	raw = append(raw, a.version, a.chainID)
	raw = append(raw, a.hash[:]...)
	raw = append(raw, a.checksum[:]...)
	return raw
}

// String returns the base58 text form.
func (a Address) String() string { return a.text }

// IsZero reports whether the address is the zero value.
func (a Address) IsZero() bool { return a == Address{} }

// MarshalJSON encodes the address as its base58 string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.text)
}

// UnmarshalJSON decodes a base58 address string.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*a = Address{}
		return nil
	}
	parsed, err := DecodeAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
