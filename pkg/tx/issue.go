package tx

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
	"github.com/acryl-tech/acryl-go/pkg/types"
)

// Issue creates a new asset. A non-empty Script (base64, no prefix)
// makes it a smart asset and requires Version >= 2.
type Issue struct {
	SenderPublicKey crypto.PublicKey
	ChainID         byte
	Name            string
	Description     string
	Quantity        uint64
	Decimals        byte
	Reissuable      bool
	Fee             uint64
	Timestamp       int64
	Script          string
	Version         byte
}

// Type returns the wire type code.
func (t Issue) Type() Type { return TypeIssue }

// SigningBytes builds the issue buffer. Version 1:
// type ‖ pubkey ‖ name(len+bytes) ‖ description(len+bytes) ‖ quantity ‖
// decimals ‖ reissuable ‖ fee ‖ timestamp.
// Version >= 2 inserts the version and chain id after the type code and
// appends the script presence flag (and script when present).
func (t Issue) SigningBytes() ([]byte, error) {
	if t.Script != "" && t.Version < 2 {
		return nil, ErrUnsupportedVersion
	}

	buf := []byte{byte(TypeIssue)}
	if t.Version >= 2 {
		buf = append(buf, t.Version, t.ChainID)
	}
	buf = append(buf, t.SenderPublicKey[:]...)

	name, err := types.Latin1Bytes(t.Name)
	if err != nil {
		return nil, err
	}
	buf = appendShortBytes(buf, name)

	description, err := types.Latin1Bytes(t.Description)
	if err != nil {
		return nil, err
	}
	buf = appendShortBytes(buf, description)

	buf = binary.BigEndian.AppendUint64(buf, t.Quantity)
	buf = append(buf, t.Decimals, boolByte(t.Reissuable))
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))

	if t.Script != "" {
		script, err := base64.StdEncoding.DecodeString(t.Script)
		if err != nil {
			return nil, fmt.Errorf("decode script: %w", err)
		}
		buf = append(buf, 1)
		buf = appendShortBytes(buf, script)
	} else if t.Version >= 2 {
		buf = append(buf, 0)
	}
	return buf, nil
}

func (t Issue) normalize(nowMillis int64) Transaction {
	if t.Version == 0 {
		t.Version = DefaultVersion
	}
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t Issue) signedJSON(signature string) (Signed, error) {
	out := Signed{
		"senderPublicKey": t.SenderPublicKey.String(),
		"name":            t.Name,
		"quantity":        t.Quantity,
		"timestamp":       t.Timestamp,
		"description":     t.Description,
		"decimals":        t.Decimals,
		"reissuable":      t.Reissuable,
		"fee":             t.Fee,
	}
	if t.Version >= 2 {
		out["type"] = TypeIssue
		out["version"] = t.Version
		out["chainId"] = string(rune(t.ChainID))
		out["proofs"] = []string{signature}
	} else {
		out["signature"] = signature
	}
	if t.Script != "" {
		out["script"] = "base64:" + t.Script
	}
	return out, nil
}

// Reissue increases (or finalizes) the supply of an existing asset.
type Reissue struct {
	SenderPublicKey crypto.PublicKey
	AssetID         string
	Quantity        uint64
	Reissuable      bool
	Fee             uint64
	Timestamp       int64
}

// Type returns the wire type code.
func (t Reissue) Type() Type { return TypeReissue }

// SigningBytes builds: type ‖ pubkey ‖ asset id ‖ quantity ‖ reissuable ‖
// fee ‖ timestamp.
func (t Reissue) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeReissue)}
	buf = append(buf, t.SenderPublicKey[:]...)

	assetID, err := decodeID(t.AssetID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, assetID...)

	buf = binary.BigEndian.AppendUint64(buf, t.Quantity)
	buf = append(buf, boolByte(t.Reissuable))
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	return buf, nil
}

func (t Reissue) normalize(nowMillis int64) Transaction {
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t Reissue) signedJSON(signature string) (Signed, error) {
	return Signed{
		"senderPublicKey": t.SenderPublicKey.String(),
		"assetId":         t.AssetID,
		"quantity":        t.Quantity,
		"timestamp":       t.Timestamp,
		"reissuable":      t.Reissuable,
		"fee":             t.Fee,
		"signature":       signature,
	}, nil
}

// Burn permanently destroys a quantity of an asset.
type Burn struct {
	SenderPublicKey crypto.PublicKey
	AssetID         string
	Quantity        uint64
	Fee             uint64
	Timestamp       int64
}

// Type returns the wire type code.
func (t Burn) Type() Type { return TypeBurn }

// SigningBytes builds: type ‖ pubkey ‖ asset id ‖ quantity ‖ fee ‖ timestamp.
func (t Burn) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeBurn)}
	buf = append(buf, t.SenderPublicKey[:]...)

	assetID, err := decodeID(t.AssetID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, assetID...)

	buf = binary.BigEndian.AppendUint64(buf, t.Quantity)
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	return buf, nil
}

func (t Burn) normalize(nowMillis int64) Transaction {
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t Burn) signedJSON(signature string) (Signed, error) {
	return Signed{
		"senderPublicKey": t.SenderPublicKey.String(),
		"assetId":         t.AssetID,
		"quantity":        t.Quantity,
		"timestamp":       t.Timestamp,
		"fee":             t.Fee,
		"signature":       signature,
	}, nil
}

// boolByte encodes a boolean flag as a single wire byte.
func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
