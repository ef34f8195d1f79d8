package types

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Latin1Bytes encodes a string one byte per character (ISO 8859-1), the
// fixed text encoding used for seeds, attachments and alias payloads.
// Strings containing runes outside Latin-1 are rejected.
func Latin1Bytes(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode latin-1: %w", err)
	}
	return b, nil
}
