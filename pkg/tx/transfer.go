package tx

import (
	"encoding/binary"

	"github.com/mr-tron/base58"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
	"github.com/acryl-tech/acryl-go/pkg/types"
)

// Transfer moves an amount of the native token or an asset to a recipient.
// Empty AssetID / FeeAssetID select the native token.
type Transfer struct {
	SenderPublicKey crypto.PublicKey
	Recipient       string
	Amount          uint64
	Fee             uint64
	Timestamp       int64
	AssetID         string
	FeeAssetID      string
	Attachment      string
}

// Type returns the wire type code.
func (t Transfer) Type() Type { return TypeTransfer }

// SigningBytes builds the version 1 transfer buffer:
// type ‖ pubkey ‖ opt asset ‖ opt fee asset ‖ timestamp ‖ amount ‖ fee ‖
// recipient ‖ attachment(len+bytes).
func (t Transfer) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeTransfer)}
	buf = append(buf, t.SenderPublicKey[:]...)

	var err error
	if buf, err = appendOptionalAsset(buf, t.AssetID); err != nil {
		return nil, err
	}
	if buf, err = appendOptionalAsset(buf, t.FeeAssetID); err != nil {
		return nil, err
	}

	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	buf = binary.BigEndian.AppendUint64(buf, t.Amount)
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)

	recipient, err := decodeRecipient(t.Recipient)
	if err != nil {
		return nil, err
	}
	buf = append(buf, recipient...)

	attachment, err := types.Latin1Bytes(t.Attachment)
	if err != nil {
		return nil, err
	}
	return appendShortBytes(buf, attachment), nil
}

func (t Transfer) normalize(nowMillis int64) Transaction {
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t Transfer) signedJSON(signature string) (Signed, error) {
	attachment, err := types.Latin1Bytes(t.Attachment)
	if err != nil {
		return nil, err
	}
	out := Signed{
		"senderPublicKey": t.SenderPublicKey.String(),
		"recipient":       t.Recipient,
		"amount":          t.Amount,
		"fee":             t.Fee,
		"timestamp":       t.Timestamp,
		"attachment":      base58.Encode(attachment),
		"signature":       signature,
	}
	if t.AssetID != "" {
		out["assetId"] = t.AssetID
	}
	if t.FeeAssetID != "" {
		out["feeAssetId"] = t.FeeAssetID
	}
	return out, nil
}
