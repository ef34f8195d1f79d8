package tx

import (
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/acryl-tech/acryl-go/pkg/types"
)

// AssetIDSize is the decoded length of an asset or transaction id.
const AssetIDSize = 32

// appendShortBytes appends a 2-byte big-endian length followed by the bytes.
func appendShortBytes(buf, b []byte) []byte {
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(b)))
	return append(buf, b...)
}

// appendOptionalAsset appends the 1-byte presence flag and, for a
// non-empty id, the 32 decoded asset id bytes.
func appendOptionalAsset(buf []byte, assetID string) ([]byte, error) {
	if assetID == "" {
		return append(buf, 0), nil
	}
	id, err := decodeID(assetID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, 1)
	return append(buf, id...), nil
}

// decodeID decodes a base58 asset or transaction id and checks its width.
func decodeID(id string) ([]byte, error) {
	b, err := base58.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("decode id %q: %w", id, err)
	}
	if len(b) != AssetIDSize {
		return nil, fmt.Errorf("id %q must be %d bytes, got %d", id, AssetIDSize, len(b))
	}
	return b, nil
}

// decodeRecipient decodes a recipient address text to its raw wire bytes.
func decodeRecipient(address string) ([]byte, error) {
	b, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("decode recipient %q: %w", address, err)
	}
	if len(b) != types.AddressSize {
		return nil, fmt.Errorf("recipient %q must be %d bytes, got %d", address, types.AddressSize, len(b))
	}
	return b, nil
}

// optionalAssetJSON returns the asset id for the output map, nil for the
// chain's native token.
func optionalAssetJSON(assetID string) any {
	if assetID == "" {
		return nil
	}
	return assetID
}
