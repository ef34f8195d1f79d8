package tx

import (
	"encoding/binary"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
)

// Lease locks an amount in favour of a recipient for generating balance.
type Lease struct {
	SenderPublicKey crypto.PublicKey
	Recipient       string
	Amount          uint64
	Fee             uint64
	Timestamp       int64
}

// Type returns the wire type code.
func (t Lease) Type() Type { return TypeLease }

// SigningBytes builds: type ‖ pubkey ‖ recipient ‖ amount ‖ fee ‖ timestamp.
func (t Lease) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeLease)}
	buf = append(buf, t.SenderPublicKey[:]...)

	recipient, err := decodeRecipient(t.Recipient)
	if err != nil {
		return nil, err
	}
	buf = append(buf, recipient...)

	buf = binary.BigEndian.AppendUint64(buf, t.Amount)
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	return buf, nil
}

func (t Lease) normalize(nowMillis int64) Transaction {
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t Lease) signedJSON(signature string) (Signed, error) {
	return Signed{
		"senderPublicKey": t.SenderPublicKey.String(),
		"recipient":       t.Recipient,
		"amount":          t.Amount,
		"fee":             t.Fee,
		"timestamp":       t.Timestamp,
		"signature":       signature,
	}, nil
}

// LeaseCancel releases a previously leased amount by lease transaction id.
type LeaseCancel struct {
	SenderPublicKey crypto.PublicKey
	LeaseID         string
	Fee             uint64
	Timestamp       int64
}

// Type returns the wire type code.
func (t LeaseCancel) Type() Type { return TypeLeaseCancel }

// SigningBytes builds: type ‖ pubkey ‖ fee ‖ timestamp ‖ lease tx id.
func (t LeaseCancel) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeLeaseCancel)}
	buf = append(buf, t.SenderPublicKey[:]...)
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))

	leaseID, err := decodeID(t.LeaseID)
	if err != nil {
		return nil, err
	}
	return append(buf, leaseID...), nil
}

func (t LeaseCancel) normalize(nowMillis int64) Transaction {
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t LeaseCancel) signedJSON(signature string) (Signed, error) {
	return Signed{
		"senderPublicKey": t.SenderPublicKey.String(),
		"txId":            t.LeaseID,
		"fee":             t.Fee,
		"timestamp":       t.Timestamp,
		"signature":       signature,
	}, nil
}
