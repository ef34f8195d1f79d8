package wallet

import (
	"github.com/acryl-tech/acryl-go/pkg/crypto"
)

// ValidateAddress checks that an address string matches the supplied key
// material by re-deriving the address and requiring exact equality.
// Either key may be nil, but not both. On success the returned account
// carries whatever key material was supplied.
//
// This is the defense against pairing an address with a key that does
// not own it.
func ValidateAddress(address string, priv *crypto.PrivateKey, pub *crypto.PublicKey, chainID byte) (*Account, error) {
	switch {
	case priv != nil:
		account := NewAccountFromPrivateKey(*priv, chainID)
		if account.Address.String() != address {
			return nil, ErrAddressMismatch
		}
		if pub != nil && account.Keys.Public != *pub {
			return nil, ErrPublicKeyMismatch
		}
		return account, nil

	case pub != nil:
		account := NewAccountFromPublicKey(*pub, chainID)
		if account.Address.String() != address {
			return nil, ErrAddressMismatch
		}
		return account, nil

	default:
		return nil, ErrMissingKeyMaterial
	}
}
