package crypto

import (
	"testing"

	"github.com/acryl-tech/acryl-go/pkg/types"
)

func TestAddress_SeedScenario(t *testing.T) {
	// Independently derived key pairs and addresses from one seed must agree.
	seed := []byte("test seed phrase")

	first := NewKeyPair(seed, 0)
	second := NewKeyPair(seed, 0)
	if first.Private != second.Private || first.Public != second.Public {
		t.Fatal("independent derivations from the same seed disagree")
	}

	a := NewAddress(first.Public, types.MainnetChainID, types.AddressVersion)
	b := NewAddress(second.Public, types.MainnetChainID, types.AddressVersion)
	if a.String() != b.String() {
		t.Errorf("addresses differ: %s vs %s", a, b)
	}
	if a.String() == "" {
		t.Error("address text should not be empty")
	}
}

func TestAddress_ChainIDRoundTrip(t *testing.T) {
	pub := DerivePrivateKey([]byte("chain id seed"), 0).PublicKey()

	for _, chainID := range []byte{types.MainnetChainID, types.TestnetChainID} {
		addr := AddressFromPublicKey(pub, chainID)

		got, err := types.ChainIDFromAddress(addr.String())
		if err != nil {
			t.Fatalf("ChainIDFromAddress error: %v", err)
		}
		if got != chainID {
			t.Errorf("chain id = %c, want %c", got, chainID)
		}
	}
}

func TestAddress_DecodeRoundTrip(t *testing.T) {
	pub := DerivePrivateKey([]byte("decode seed"), 3).PublicKey()
	addr := AddressFromPublicKey(pub, types.MainnetChainID)

	decoded, err := types.DecodeAddress(addr.String())
	if err != nil {
		t.Fatalf("DecodeAddress error: %v", err)
	}
	if decoded != addr {
		t.Error("decoded address differs from the encoded one")
	}
	if !VerifyAddress(decoded) {
		t.Error("decoded address should pass checksum verification")
	}
}

func TestVerifyAddress_BitFlips(t *testing.T) {
	pub := DerivePrivateKey([]byte("bit flip seed"), 0).PublicKey()
	addr := AddressFromPublicKey(pub, types.MainnetChainID)

	hash := addr.PublicKeyHash()
	checksum := addr.Checksum()

	// Flip every bit of the payload hash.
	for i := 0; i < types.AddressHashSize; i++ {
		for bit := 0; bit < 8; bit++ {
			mutated := hash
			mutated[i] ^= 1 << bit
			bad := types.NewAddress(addr.Version(), addr.ChainID(), mutated, checksum)
			if VerifyAddress(bad) {
				t.Fatalf("flipping hash byte %d bit %d should invalidate the address", i, bit)
			}
		}
	}

	// Flip every bit of the checksum.
	for i := 0; i < types.AddressChecksumSize; i++ {
		for bit := 0; bit < 8; bit++ {
			mutated := checksum
			mutated[i] ^= 1 << bit
			bad := types.NewAddress(addr.Version(), addr.ChainID(), hash, mutated)
			if VerifyAddress(bad) {
				t.Fatalf("flipping checksum byte %d bit %d should invalidate the address", i, bit)
			}
		}
	}
}

func TestAddress_DistinctChainsDistinctText(t *testing.T) {
	pub := DerivePrivateKey([]byte("two chains"), 0).PublicKey()

	mainnet := AddressFromPublicKey(pub, types.MainnetChainID)
	testnet := AddressFromPublicKey(pub, types.TestnetChainID)
	if mainnet.String() == testnet.String() {
		t.Error("same key on different chains should produce different addresses")
	}
}
