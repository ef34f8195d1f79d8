package tx

import (
	"encoding/binary"

	"github.com/acryl-tech/acryl-go/pkg/crypto"
)

// Sponsorship enables (or, with a zero minimum, disables) paying fees in
// units of the sponsored asset.
type Sponsorship struct {
	SenderPublicKey      crypto.PublicKey
	AssetID              string
	MinSponsoredAssetFee uint64
	Fee                  uint64
	Timestamp            int64
}

// Type returns the wire type code.
func (t Sponsorship) Type() Type { return TypeSponsorship }

// SigningBytes builds: type ‖ version ‖ pubkey ‖ asset id ‖
// min sponsored fee ‖ fee ‖ timestamp.
func (t Sponsorship) SigningBytes() ([]byte, error) {
	buf := []byte{byte(TypeSponsorship), DefaultVersion}
	buf = append(buf, t.SenderPublicKey[:]...)

	assetID, err := decodeID(t.AssetID)
	if err != nil {
		return nil, err
	}
	buf = append(buf, assetID...)

	buf = binary.BigEndian.AppendUint64(buf, t.MinSponsoredAssetFee)
	buf = binary.BigEndian.AppendUint64(buf, t.Fee)
	buf = binary.BigEndian.AppendUint64(buf, uint64(t.Timestamp))
	return buf, nil
}

func (t Sponsorship) normalize(nowMillis int64) Transaction {
	t.Timestamp = defaultTimestamp(t.Timestamp, nowMillis)
	return t
}

func (t Sponsorship) signedJSON(signature string) (Signed, error) {
	return Signed{
		"type":                 TypeSponsorship,
		"version":              DefaultVersion,
		"senderPublicKey":      t.SenderPublicKey.String(),
		"assetId":              t.AssetID,
		"fee":                  t.Fee,
		"timestamp":            t.Timestamp,
		"minSponsoredAssetFee": t.MinSponsoredAssetFee,
		"proofs":               []string{signature},
	}, nil
}
