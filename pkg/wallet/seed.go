// Package wallet implements seed generation, account derivation and
// account storage.
package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"

	"github.com/acryl-tech/acryl-go/pkg/types"
)

// SeedEntropyBits is the default entropy for generated seed phrases
// (160 bits, a 15-word BIP-39 mnemonic).
const SeedEntropyBits = 160

// GenerateSeed creates a new BIP-39 english seed phrase. A zero bits
// value selects the default entropy; otherwise bits must be a multiple
// of 32 between 128 and 256.
func GenerateSeed(bits int) (string, error) {
	if bits == 0 {
		bits = SeedEntropyBits
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate seed phrase: %w", err)
	}
	return mnemonic, nil
}

// ValidSeedPhrase checks whether a seed is a well-formed BIP-39 mnemonic
// (correct word count, valid words, valid checksum). Arbitrary strings
// are accepted as seeds by the derivation itself; this is an advisory
// check for seeds that are supposed to be generated phrases.
func ValidSeedPhrase(seed string) bool {
	return bip39.IsMnemonicValid(seed)
}

// SeedBytes converts a seed string to its wire byte form (one byte per
// character).
func SeedBytes(seed string) ([]byte, error) {
	return types.Latin1Bytes(seed)
}
