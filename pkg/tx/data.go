package tx

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
	"github.com/acryl-tech/acryl-go/pkg/types"
)

// Data entry type tags.
const (
	dataTagInteger byte = 0
	dataTagBoolean byte = 1
	dataTagString  byte = 2
	dataTagBinary  byte = 3
)

// DataEntry is one typed key/value pair of a data transaction. The set
// of implementations is closed: integer, boolean, string and binary.
type DataEntry interface {
	// Key returns the entry key.
	Key() string

	appendTo(buf []byte) ([]byte, error)
	jsonEntry() dataEntryJSON
}

// dataEntryJSON is the output-map form of an entry. Field order is fixed
// so the fee, computed over the serialized entries, is deterministic.
type dataEntryJSON struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// IntegerEntry is a signed 64-bit integer entry.
type IntegerEntry struct {
	K     string
	Value int64
}

// Key returns the entry key.
func (e IntegerEntry) Key() string { return e.K }

func (e IntegerEntry) appendTo(buf []byte) ([]byte, error) {
	buf, err := appendEntryKey(buf, e.K)
	if err != nil {
		return nil, err
	}
	buf = append(buf, dataTagInteger)
	return binary.BigEndian.AppendUint64(buf, uint64(e.Value)), nil
}

func (e IntegerEntry) jsonEntry() dataEntryJSON {
	return dataEntryJSON{Key: e.K, Type: "integer", Value: e.Value}
}

// BooleanEntry is a boolean entry.
type BooleanEntry struct {
	K     string
	Value bool
}

// Key returns the entry key.
func (e BooleanEntry) Key() string { return e.K }

func (e BooleanEntry) appendTo(buf []byte) ([]byte, error) {
	buf, err := appendEntryKey(buf, e.K)
	if err != nil {
		return nil, err
	}
	return append(buf, dataTagBoolean, boolByte(e.Value)), nil
}

func (e BooleanEntry) jsonEntry() dataEntryJSON {
	return dataEntryJSON{Key: e.K, Type: "boolean", Value: e.Value}
}

// StringEntry is a UTF-8 string entry.
type StringEntry struct {
	K     string
	Value string
}

// Key returns the entry key.
func (e StringEntry) Key() string { return e.K }

func (e StringEntry) appendTo(buf []byte) ([]byte, error) {
	buf, err := appendEntryKey(buf, e.K)
	if err != nil {
		return nil, err
	}
	buf = append(buf, dataTagString)
	return appendShortBytes(buf, []byte(e.Value)), nil
}

func (e StringEntry) jsonEntry() dataEntryJSON {
	return dataEntryJSON{Key: e.K, Type: "string", Value: e.Value}
}

// BinaryEntry is a raw bytes entry, surfaced to the output map as a
// "base64:"-prefixed string.
type BinaryEntry struct {
	K     string
	Value []byte
}

// Key returns the entry key.
func (e BinaryEntry) Key() string { return e.K }

func (e BinaryEntry) appendTo(buf []byte) ([]byte, error) {
	buf, err := appendEntryKey(buf, e.K)
	if err != nil {
		return nil, err
	}
	buf = append(buf, dataTagBinary)
	return appendShortBytes(buf, e.Value), nil
}

func (e BinaryEntry) jsonEntry() dataEntryJSON {
	return dataEntryJSON{
		Key:   e.K,
		Type:  "binary",
		Value: "base64:" + base64.StdEncoding.EncodeToString(e.Value),
	}
}

// NewDataEntry builds an entry from a dynamic type name and value, for
// callers assembling transactions from untyped input. Unknown type names
// fail with ErrUnsupportedDataType before any signing occurs.
func NewDataEntry(key, typeName string, value any) (DataEntry, error) {
	switch typeName {
	case "integer":
		switch v := value.(type) {
		case int64:
			return IntegerEntry{K: key, Value: v}, nil
		case int:
			return IntegerEntry{K: key, Value: int64(v)}, nil
		case float64: // JSON numbers decode as float64
			return IntegerEntry{K: key, Value: int64(v)}, nil
		}
	case "boolean":
		if v, ok := value.(bool); ok {
			return BooleanEntry{K: key, Value: v}, nil
		}
	case "string":
		if v, ok := value.(string); ok {
			return StringEntry{K: key, Value: v}, nil
		}
	case "binary":
		switch v := value.(type) {
		case []byte:
			return BinaryEntry{K: key, Value: v}, nil
		case string:
			raw, err := base64.StdEncoding.DecodeString(v)
			if err != nil {
				return nil, fmt.Errorf("decode binary entry %q: %w", key, err)
			}
			return BinaryEntry{K: key, Value: raw}, nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDataType, typeName)
	}
	return nil, fmt.Errorf("%w: %T value for %q entry", ErrUnsupportedDataType, value, typeName)
}

// appendEntryKey appends a length-prefixed entry key.
func appendEntryKey(buf []byte, key string) ([]byte, error) {
	k, err := types.Latin1Bytes(key)
	if err != nil {
		return nil, err
	}
	return appendShortBytes(buf, k), nil
}

// Data stores typed key/value entries in the sender's account state.
// The fee is always computed from the serialized entries.
type Data struct {
	SenderPublicKey crypto.PublicKey
	Entries         []DataEntry
	Version         byte
	Timestamp       int64

	// fee is derived during normalization.
	fee uint64
}

// Type returns the wire type code.
func (t Data) Type() Type { return TypeData }

// SigningBytes builds: type ‖ version ‖ pubkey ‖ count ‖ entries ‖
// timestamp ‖ fee.
func (t Data) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeData), t.Version}
	buf = append(buf, t.SenderPublicKey[:]...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(t.Entries)))

	var err error
	for _, entry := range t.Entries {
		if buf, err = entry.appendTo(buf); err != nil {
			return nil, err
		}
	}

	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	return binary.BigEndian.AppendUint64(buf, t.fee), nil
}

func (t Data) normalize(nowMillis int64) Transaction {
	if t.Version == 0 {
		t.Version = DefaultVersion
	}
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	if fee, err := DataFee(t.Entries); err == nil {
		t.fee = fee
	}
	return t
}

func (t Data) signedJSON(signature string) (Signed, error) {
	entries := make([]dataEntryJSON, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = e.jsonEntry()
	}
	return Signed{
		"type":            TypeData,
		"version":         t.Version,
		"senderPublicKey": t.SenderPublicKey.String(),
		"data":            entries,
		"fee":             t.fee,
		"timestamp":       t.Timestamp,
		"proofs":          []string{signature},
	}, nil
}
