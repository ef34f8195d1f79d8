package tx

import (
	"bytes"
	"testing"

	"github.com/mr-tron/base58"
)

func TestTransfer_SigningBytesLayout(t *testing.T) {
	keys := testKeys(t)
	recipient := testRecipient(t)

	draft := Transfer{
		SenderPublicKey: keys.Public,
		Recipient:       recipient,
		Amount:          1000,
		Fee:             100000,
		Timestamp:       1526552510000,
		Attachment:      "note",
	}

	buf, err := draft.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes error: %v", err)
	}

	recipientRaw, err := base58.Decode(recipient)
	if err != nil {
		t.Fatalf("decode recipient: %v", err)
	}

	want := []byte{byte(TypeTransfer)}
	want = append(want, keys.Public[:]...)
	want = append(want, 0x00, 0x00) // absent asset id, absent fee asset id
	want = append(want, be64(1526552510000)...)
	want = append(want, be64(1000)...)
	want = append(want, be64(100000)...)
	want = append(want, recipientRaw...)
	want = append(want, 0x00, 0x04)
	want = append(want, []byte("note")...)

	if !bytes.Equal(buf, want) {
		t.Errorf("signing bytes mismatch\n got %x\nwant %x", buf, want)
	}
}

func TestTransfer_AbsentAssetsAreSingleBytes(t *testing.T) {
	keys := testKeys(t)
	draft := Transfer{
		SenderPublicKey: keys.Public,
		Recipient:       testRecipient(t),
		Amount:          1,
		Fee:             100000,
		Timestamp:       1,
	}

	buf, err := draft.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes error: %v", err)
	}

	// Bytes 33 and 34 are the two asset id presence flags; absence must be
	// one 0x00 byte each, not a 32-byte zero field.
	if buf[33] != 0x00 || buf[34] != 0x00 {
		t.Errorf("presence flags = %x %x, want 00 00", buf[33], buf[34])
	}
	wantLen := 1 + 32 + 1 + 1 + 8 + 8 + 8 + 26 + 2
	if len(buf) != wantLen {
		t.Errorf("buffer length = %d, want %d", len(buf), wantLen)
	}
}

func TestTransfer_PresentAssetEncodesFlagAndID(t *testing.T) {
	keys := testKeys(t)
	assetID := base58.Encode(bytes.Repeat([]byte{0x42}, AssetIDSize))

	draft := Transfer{
		SenderPublicKey: keys.Public,
		Recipient:       testRecipient(t),
		Amount:          1,
		Fee:             100000,
		Timestamp:       1,
		AssetID:         assetID,
	}

	buf, err := draft.SigningBytes()
	if err != nil {
		t.Fatalf("SigningBytes error: %v", err)
	}

	if buf[33] != 0x01 {
		t.Fatalf("asset presence flag = %x, want 01", buf[33])
	}
	if !bytes.Equal(buf[34:34+AssetIDSize], bytes.Repeat([]byte{0x42}, AssetIDSize)) {
		t.Error("asset id bytes not embedded after the presence flag")
	}
	if buf[34+AssetIDSize] != 0x00 {
		t.Error("fee asset presence flag should still be 00")
	}
}

func TestTransfer_SignProducesVerifiableRecord(t *testing.T) {
	keys := testKeys(t)
	draft := Transfer{
		SenderPublicKey: keys.Public,
		Recipient:       testRecipient(t),
		Amount:          500,
		Fee:             100000,
		Timestamp:       1526552510000,
		Attachment:      "hello",
	}

	signed, err := Sign(draft, keys.Private)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if signed["recipient"] != draft.Recipient {
		t.Errorf("recipient = %v, want %v", signed["recipient"], draft.Recipient)
	}
	if signed["amount"] != uint64(500) {
		t.Errorf("amount = %v, want 500", signed["amount"])
	}
	if _, present := signed["assetId"]; present {
		t.Error("assetId should be omitted for a native transfer")
	}
	attachment, _ := signed["attachment"].(string)
	if decoded, err := base58.Decode(attachment); err != nil || string(decoded) != "hello" {
		t.Errorf("attachment = %q, want base58 of %q", attachment, "hello")
	}

	verifySigned(t, draft, keys.Public, signed)
}

func TestTransfer_ZeroTimestampDefaults(t *testing.T) {
	keys := testKeys(t)
	draft := Transfer{
		SenderPublicKey: keys.Public,
		Recipient:       testRecipient(t),
		Amount:          1,
		Fee:             100000,
	}

	now := int64(1700000000000)
	signed, err := signAt(draft, keys.Private, now)
	if err != nil {
		t.Fatalf("signAt error: %v", err)
	}
	if signed["timestamp"] != now {
		t.Errorf("timestamp = %v, want %d", signed["timestamp"], now)
	}

	// The signature must cover the defaulted timestamp, not the zero one.
	settled := draft
	settled.Timestamp = now
	verifySigned(t, settled, keys.Public, signed)
}

func TestTransfer_BadRecipientRejected(t *testing.T) {
	keys := testKeys(t)
	draft := Transfer{
		SenderPublicKey: keys.Public,
		Recipient:       "not an address",
		Amount:          1,
		Fee:             100000,
		Timestamp:       1,
	}
	if _, err := draft.SigningBytes(); err == nil {
		t.Error("undecodable recipient should be rejected")
	}
}
