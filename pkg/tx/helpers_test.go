package tx

import (
	"encoding/binary"
	"testing"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
	"github.com/acryl-tech/acryl-go/pkg/types"
)

func testKeys(t *testing.T) crypto.KeyPair {
	t.Helper()
	return crypto.NewKeyPair([]byte("tx test seed"), 0)
}

func testRecipient(t *testing.T) string {
	t.Helper()
	pub := crypto.DerivePrivateKey([]byte("tx recipient seed"), 0).PublicKey()
	return crypto.AddressFromPublicKey(pub, types.MainnetChainID).String()
}

func be64(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

// verifySigned checks that the signature a Sign call put into the record
// verifies against the draft's signable buffer.
func verifySigned(t *testing.T, draft Transaction, pub crypto.PublicKey, signed Signed) {
	t.Helper()

	sigText, ok := signed["signature"].(string)
	if !ok {
		t.Fatal("signed record has no signature field")
	}
	sig, err := crypto.SignatureFromString(sigText)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	buf, err := draft.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes error: %v", err)
	}
	if !crypto.Verify(pub, sig, buf) {
		t.Error("signature does not verify against the signable buffer")
	}
}
