package crypto

import (
	"github.com/acryl-tech/acryl-go/pkg/types"
)

// NewAddress derives an address from a public key:
// raw = version ‖ chain id ‖ SecureHash(pub)[:20], checksum = SecureHash(raw)[:4].
func NewAddress(pub PublicKey, chainID byte, version byte) types.Address {
	digest := SecureHash(pub[:])
	var hash [types.AddressHashSize]byte
	copy(hash[:], digest[:types.AddressHashSize])

	raw := make([]byte, 0, types.AddressSize-types.AddressChecksumSize)
	raw = append(raw, version, chainID)
	raw = append(raw, hash[:]...)

	sum := SecureHash(raw)
	var checksum [types.AddressChecksumSize]byte
	copy(checksum[:], sum[:types.AddressChecksumSize])

	return types.NewAddress(version, chainID, hash, checksum)
}

// AddressFromPublicKey derives the default-version address for a public key.
func AddressFromPublicKey(pub PublicKey, chainID byte) types.Address {
	return NewAddress(pub, chainID, types.AddressVersion)
}

// VerifyAddress reports whether the address checksum matches its payload.
func VerifyAddress(addr types.Address) bool {
	raw := addr.Bytes()
	payload := raw[:types.AddressSize-types.AddressChecksumSize]
	sum := SecureHash(payload)

	checksum := addr.Checksum()
	for i := range checksum {
		if sum[i] != checksum[i] {
			return false
		}
	}
	return true
}
