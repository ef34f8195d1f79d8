package wallet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/acryl-tech/acryl-go/config"
	"github.com/acryl-tech/acryl-go/pkg/crypto"
	"github.com/acryl-tech/acryl-go/pkg/types"
)

// Account binds an address to its (optional) key material. A watch-only
// account carries only the address and chain id. Accounts are value
// holders: nothing here touches the network or disk except the explicit
// save/load helpers.
type Account struct {
	Address types.Address
	ChainID byte

	// Keys is nil for watch-only accounts.
	Keys *crypto.KeyPair

	// Seed and Nonce record the derivation origin when known.
	Seed  string
	Nonce uint32

	// Fees are the defaults applied when a draft leaves its fee zero.
	Fees config.Fees
}

// NewAccountFromSeed derives an account from a seed string and nonce.
func NewAccountFromSeed(seed string, nonce uint32, chainID byte) (*Account, error) {
	seedBytes, err := SeedBytes(seed)
	if err != nil {
		return nil, err
	}
	keys := crypto.NewKeyPair(seedBytes, nonce)
	return &Account{
		Address: crypto.AddressFromPublicKey(keys.Public, chainID),
		ChainID: chainID,
		Keys:    &keys,
		Seed:    seed,
		Nonce:   nonce,
		Fees:    config.DefaultFees(),
	}, nil
}

// NewAccountFromPrivateKey builds an account around an existing private key.
func NewAccountFromPrivateKey(priv crypto.PrivateKey, chainID byte) *Account {
	keys := crypto.KeyPairFromPrivateKey(priv)
	return &Account{
		Address: crypto.AddressFromPublicKey(keys.Public, chainID),
		ChainID: chainID,
		Keys:    &keys,
		Fees:    config.DefaultFees(),
	}
}

// NewAccountFromPublicKey builds a watch-only account around a public key.
func NewAccountFromPublicKey(pub crypto.PublicKey, chainID byte) *Account {
	return &Account{
		Address: crypto.AddressFromPublicKey(pub, chainID),
		ChainID: chainID,
		Keys:    &crypto.KeyPair{Public: pub},
		Fees:    config.DefaultFees(),
	}
}

// NewWatchAccount builds a watch-only account from an address string.
// The chain id comes from the decoded address itself.
func NewWatchAccount(address string) (*Account, error) {
	addr, err := types.DecodeAddress(address)
	if err != nil {
		return nil, err
	}
	if !crypto.VerifyAddress(addr) {
		return nil, fmt.Errorf("wallet: address %q has an invalid checksum", address)
	}
	return &Account{
		Address: addr,
		ChainID: addr.ChainID(),
		Fees:    config.DefaultFees(),
	}, nil
}

// CanSign reports whether the account holds a private key.
func (a *Account) CanSign() bool {
	return a.Keys != nil && a.Keys.Private != crypto.PrivateKey{}
}

// PublicKey returns the account public key and whether one is known.
func (a *Account) PublicKey() (crypto.PublicKey, bool) {
	if a.Keys == nil {
		return crypto.PublicKey{}, false
	}
	return a.Keys.Public, true
}

// accountJSON is the on-disk plain JSON account format.
type accountJSON struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key,omitempty"`
	PublicKey  string `json:"public_key,omitempty"`
	Seed       string `json:"seed,omitempty"`
	ChainID    string `json:"chain_id"`
	Nonce      uint32 `json:"nonce"`
}

// MarshalJSON encodes the account with base58 key material.
func (a *Account) MarshalJSON() ([]byte, error) {
	out := accountJSON{
		Address: a.Address.String(),
		Seed:    a.Seed,
		ChainID: string(rune(a.ChainID)),
		Nonce:   a.Nonce,
	}
	if a.Keys != nil {
		if a.CanSign() {
			out.PrivateKey = a.Keys.Private.String()
		}
		out.PublicKey = a.Keys.Public.String()
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an account saved by MarshalJSON.
func (a *Account) UnmarshalJSON(data []byte) error {
	var in accountJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.ChainID) != 1 {
		return fmt.Errorf("wallet: chain id must be one character, got %q", in.ChainID)
	}

	restored := Account{
		ChainID: in.ChainID[0],
		Seed:    in.Seed,
		Nonce:   in.Nonce,
		Fees:    config.DefaultFees(),
	}
	if in.Address != "" {
		addr, err := types.DecodeAddress(in.Address)
		if err != nil {
			return err
		}
		restored.Address = addr
	}
	if in.PublicKey != "" {
		pub, err := crypto.PublicKeyFromString(in.PublicKey)
		if err != nil {
			return err
		}
		restored.Keys = &crypto.KeyPair{Public: pub}
	}
	if in.PrivateKey != "" {
		priv, err := crypto.PrivateKeyFromString(in.PrivateKey)
		if err != nil {
			return err
		}
		keys := crypto.KeyPairFromPrivateKey(priv)
		if in.PublicKey != "" && keys.Public.String() != in.PublicKey {
			return ErrPublicKeyMismatch
		}
		restored.Keys = &keys
	}
	*a = restored
	return nil
}

// SaveJSON writes the account to a plain JSON file. The file contains
// the seed and private key in the clear; prefer SaveEncrypted.
func (a *Account) SaveJSON(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal account: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// LoadJSON reads an account from a plain JSON file.
func LoadJSON(path string) (*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Account
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse account file: %w", err)
	}
	return &a, nil
}
