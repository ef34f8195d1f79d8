package wallet

import "errors"

// Account and validation errors.
var (
	// ErrSigningKeyRequired is returned when a signing operation is
	// attempted on a watch-only account.
	ErrSigningKeyRequired = errors.New("wallet: account has no private key")

	// ErrMissingKeyMaterial is returned when an address is validated
	// without any key to validate against.
	ErrMissingKeyMaterial = errors.New("wallet: no private or public key provided")

	// ErrAddressMismatch is returned when the address re-derived from the
	// supplied key disagrees with the supplied address text.
	ErrAddressMismatch = errors.New("wallet: address does not match key")

	// ErrPublicKeyMismatch is returned when the public key re-derived from
	// a private key disagrees with the supplied public key.
	ErrPublicKeyMismatch = errors.New("wallet: public key does not match private key")
)
