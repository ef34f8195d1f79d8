package tx

import (
	"encoding/binary"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
	"github.com/acryl-tech/acryl-go/pkg/types"
)

// Alias registers a human-readable name for the sender's address.
type Alias struct {
	SenderPublicKey crypto.PublicKey
	ChainID         byte
	Alias           string
	Fee             uint64
	Timestamp       int64
}

// Type returns the wire type code.
func (t Alias) Type() Type { return TypeAlias }

// SigningBytes builds: type ‖ pubkey ‖ payload(len+bytes) ‖ fee ‖ timestamp,
// where payload = 0x02 ‖ chain id ‖ alias(len+bytes).
func (t Alias) SigningBytes() ([]byte, error) {
	name, err := types.Latin1Bytes(t.Alias)
	if err != nil {
		return nil, err
	}
	payload := []byte{0x02, t.ChainID}
	payload = appendShortBytes(payload, name)

	buf := []byte{byte(TypeAlias)}
	buf = append(buf, t.SenderPublicKey[:]...)
	buf = appendShortBytes(buf, payload)
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	return buf, nil
}

func (t Alias) normalize(nowMillis int64) Transaction {
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t Alias) signedJSON(signature string) (Signed, error) {
	return Signed{
		"senderPublicKey": t.SenderPublicKey.String(),
		"alias":           t.Alias,
		"fee":             t.Fee,
		"timestamp":       t.Timestamp,
		"signature":       signature,
	}, nil
}
