package tx

import (
	"encoding/binary"

	"github.com/mr-tron/base58"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
	"github.com/acryl-tech/acryl-go/pkg/types"
)

// MassTransferItem is one recipient/amount pair of a mass transfer.
type MassTransferItem struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

// MassTransfer sends amounts to many recipients in a single transaction.
// The fee is always computed from the recipient count, never caller-supplied.
type MassTransfer struct {
	SenderPublicKey crypto.PublicKey
	Transfers       []MassTransferItem
	AssetID         string
	Attachment      string
	Version         byte
	Timestamp       int64

	// fee is derived during normalization.
	fee uint64
}

// Type returns the wire type code.
func (t MassTransfer) Type() Type { return TypeMassTransfer }

// SigningBytes builds: type ‖ version ‖ pubkey ‖ opt asset ‖ count ‖
// (recipient ‖ amount)... ‖ timestamp ‖ fee ‖ attachment(len+bytes).
func (t MassTransfer) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeMassTransfer), t.Version}
	buf = append(buf, t.SenderPublicKey[:]...)

	var err error
	if buf, err = appendOptionalAsset(buf, t.AssetID); err != nil {
		return nil, err
	}

	buf = binary.BigEndian.AppendUint16(buf, uint16(len(t.Transfers)))
	for _, item := range t.Transfers {
		recipient, err := decodeRecipient(item.Recipient)
		if err != nil {
			return nil, err
		}
		buf = append(buf, recipient...)
		buf = binary.BigEndian.AppendUint64(buf, item.Amount)
	}

	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	buf = binary.BigEndian.AppendUint64(buf, t.fee)

	attachment, err := types.Latin1Bytes(t.Attachment)
	if err != nil {
		return nil, err
	}
	return appendShortBytes(buf, attachment), nil
}

func (t MassTransfer) normalize(nowMillis int64) Transaction {
	if t.Version == 0 {
		t.Version = DefaultVersion
	}
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	t.fee = MassTransferFee(len(t.Transfers))
	return t
}

func (t MassTransfer) signedJSON(signature string) (Signed, error) {
	attachment, err := types.Latin1Bytes(t.Attachment)
	if err != nil {
		return nil, err
	}
	// Nodes accept either form; the record carries both like the
	// original client did.
	return Signed{
		"type":            TypeMassTransfer,
		"version":         t.Version,
		"assetId":         t.AssetID,
		"senderPublicKey": t.SenderPublicKey.String(),
		"fee":             t.fee,
		"timestamp":       t.Timestamp,
		"transfers":       t.Transfers,
		"attachment":      base58.Encode(attachment),
		"signature":       signature,
		"proofs":          []string{signature},
	}, nil
}
