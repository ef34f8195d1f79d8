package tx

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/mr-tron/base58"

	"github.com/acryl-tech/acryl-go/pkg/types"
)

func TestSetScript_SigningBytesLayout(t *testing.T) {
	keys := testKeys(t)
	script := base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03})

	draft := SetScript{
		SenderPublicKey: keys.Public,
		ChainID:         types.MainnetChainID,
		Script:          script,
		Fee:             1000000,
		Timestamp:       1526552510000,
		Version:         1,
	}

	buf, err := draft.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes error: %v", err)
	}

	want := []byte{byte(TypeSetScript), 1, types.MainnetChainID}
	want = append(want, keys.Public[:]...)
	want = append(want, 1, 0x00, 0x03, 0x01, 0x02, 0x03)
	want = append(want, be64(1000000)...)
	want = append(want, be64(1526552510000)...)

	if !bytes.Equal(buf, want) {
		t.Errorf("signing bytes mismatch\n got %x\nwant %x", buf, want)
	}
}

func TestSetScript_RecordCarriesPrefixedScript(t *testing.T) {
	keys := testKeys(t)
	script := base64.StdEncoding.EncodeToString([]byte{0x01})

	signed, err := Sign(SetScript{
		SenderPublicKey: keys.Public,
		ChainID:         types.MainnetChainID,
		Script:          script,
		Fee:             1000000,
		Timestamp:       1,
	}, keys.Private)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if signed["script"] != "base64:"+script {
		t.Errorf("script = %v, want base64: prefixed", signed["script"])
	}
	if proofs, ok := signed["proofs"].([]string); !ok || len(proofs) != 1 {
		t.Error("record should carry exactly one proof")
	}
}

func TestSetAssetScript_SigningBytesLayout(t *testing.T) {
	keys := testKeys(t)
	assetID := base58.Encode(bytes.Repeat([]byte{0x55}, AssetIDSize))
	script := base64.StdEncoding.EncodeToString([]byte{0x0A, 0x0B})

	draft := SetAssetScript{
		SenderPublicKey: keys.Public,
		ChainID:         types.TestnetChainID,
		AssetID:         assetID,
		Script:          script,
		Fee:             100000000,
		Timestamp:       1526552510000,
		Version:         1,
	}

	buf, err := draft.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes error: %v", err)
	}

	want := []byte{byte(TypeSetAssetScript), 1, types.TestnetChainID}
	want = append(want, keys.Public[:]...)
	want = append(want, bytes.Repeat([]byte{0x55}, AssetIDSize)...)
	want = append(want, be64(100000000)...)
	want = append(want, be64(1526552510000)...)
	want = append(want, 1, 0x00, 0x02, 0x0A, 0x0B)

	if !bytes.Equal(buf, want) {
		t.Errorf("signing bytes mismatch\n got %x\nwant %x", buf, want)
	}
}

func TestSponsorship_SigningBytesLayout(t *testing.T) {
	keys := testKeys(t)
	assetID := base58.Encode(bytes.Repeat([]byte{0x66}, AssetIDSize))

	draft := Sponsorship{
		SenderPublicKey:      keys.Public,
		AssetID:              assetID,
		MinSponsoredAssetFee: 55,
		Fee:                  100000000,
		Timestamp:            1526552510000,
	}

	buf, err := draft.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes error: %v", err)
	}

	want := []byte{byte(TypeSponsorship), DefaultVersion}
	want = append(want, keys.Public[:]...)
	want = append(want, bytes.Repeat([]byte{0x66}, AssetIDSize)...)
	want = append(want, be64(55)...)
	want = append(want, be64(100000000)...)
	want = append(want, be64(1526552510000)...)

	if !bytes.Equal(buf, want) {
		t.Errorf("signing bytes mismatch\n got %x\nwant %x", buf, want)
	}
}

func TestSponsorship_SignVerifiesViaProofs(t *testing.T) {
	keys := testKeys(t)
	assetID := base58.Encode(bytes.Repeat([]byte{0x66}, AssetIDSize))

	draft := Sponsorship{
		SenderPublicKey:      keys.Public,
		AssetID:              assetID,
		MinSponsoredAssetFee: 55,
		Fee:                  100000000,
		Timestamp:            1526552510000,
	}
	signed, err := Sign(draft, keys.Private)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if signed["minSponsoredAssetFee"] != uint64(55) {
		t.Errorf("minSponsoredAssetFee = %v, want 55", signed["minSponsoredAssetFee"])
	}
	if proofs, ok := signed["proofs"].([]string); !ok || len(proofs) != 1 {
		t.Error("record should carry exactly one proof")
	}
}
