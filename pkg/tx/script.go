package tx

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
)

// SetScript attaches a compiled account script (base64, no prefix) to the
// sender's account.
type SetScript struct {
	SenderPublicKey crypto.PublicKey
	ChainID         byte
	Script          string
	Fee             uint64
	Timestamp       int64
	Version         byte
}

// Type returns the wire type code.
func (t SetScript) Type() Type { return TypeSetScript }

// SigningBytes builds: type ‖ version ‖ chain id ‖ pubkey ‖ 0x01 ‖
// script(len+bytes) ‖ fee ‖ timestamp.
func (t SetScript) SigningBytes() ([]byte, error) {
	script, err := base64.StdEncoding.DecodeString(t.Script)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	buf := []byte{byte(TypeSetScript), t.Version, t.ChainID}
	buf = append(buf, t.SenderPublicKey[:]...)
	buf = append(buf, 1)
	buf = appendShortBytes(buf, script)
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	return buf, nil
}

func (t SetScript) normalize(nowMillis int64) Transaction {
	if t.Version == 0 {
		t.Version = DefaultVersion
	}
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t SetScript) signedJSON(signature string) (Signed, error) {
	return Signed{
		"type":            TypeSetScript,
		"version":         t.Version,
		"senderPublicKey": t.SenderPublicKey.String(),
		"fee":             t.Fee,
		"timestamp":       t.Timestamp,
		"script":          "base64:" + t.Script,
		"proofs":          []string{signature},
	}, nil
}

// SetAssetScript replaces the script of a smart asset.
type SetAssetScript struct {
	SenderPublicKey crypto.PublicKey
	ChainID         byte
	AssetID         string
	Script          string
	Fee             uint64
	Timestamp       int64
	Version         byte
}

// Type returns the wire type code.
func (t SetAssetScript) Type() Type { return TypeSetAssetScript }

// SigningBytes builds: type ‖ version ‖ chain id ‖ pubkey ‖ asset id ‖
// fee ‖ timestamp ‖ 0x01 ‖ script(len+bytes).
func (t SetAssetScript) SigningBytes() ([]byte, error) {
	script, err := base64.StdEncoding.DecodeString(t.Script)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	buf := []byte{byte(TypeSetAssetScript), t.Version, t.ChainID}
	buf = append(buf, t.SenderPublicKey[:]...)

	assetID, err := decodeID(t.AssetID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, assetID...)

	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	buf = append(buf, 1)
	return appendShortBytes(buf, script), nil
}

func (t SetAssetScript) normalize(nowMillis int64) Transaction {
	if t.Version == 0 {
		t.Version = DefaultVersion
	}
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t SetAssetScript) signedJSON(signature string) (Signed, error) {
	return Signed{
		"type":            TypeSetAssetScript,
		"version":         t.Version,
		"assetId":         t.AssetID,
		"senderPublicKey": t.SenderPublicKey.String(),
		"fee":             t.Fee,
		"timestamp":       t.Timestamp,
		"script":          "base64:" + t.Script,
		"proofs":          []string{signature},
	}, nil
}
