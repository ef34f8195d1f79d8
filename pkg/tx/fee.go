package tx

import "encoding/json"

// FeeUnit is the base fee increment in minimal token units.
const FeeUnit uint64 = 100000

// MassTransferFee computes the mass transfer fee:
// 100000 + ceil(0.5 × recipients) × 100000.
func MassTransferFee(recipients int) uint64 {
	halfUp := (uint64(recipients) + 1) / 2
	return FeeUnit + halfUp*FeeUnit
}

// DataFee computes the data transaction fee from the JSON-serialized size
// of the output-form entries: ceil((size + 8) / 1024) × 100000, minimum
// one chunk. The size is that of the JSON structure, not of the binary
// buffer actually signed; nodes expect this exact formula.
func DataFee(entries []DataEntry) (uint64, error) {
	out := make([]dataEntryJSON, len(entries))
	for i, e := range entries {
		out[i] = e.jsonEntry()
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		return 0, err
	}
	chunks := (uint64(len(encoded)) + 8 + 1023) / 1024
	if chunks == 0 {
		chunks = 1
	}
	return chunks * FeeUnit, nil
}
