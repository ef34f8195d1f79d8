package tx

import "errors"

// Guard errors raised before any signing happens.
var (
	// ErrUnsupportedVersion is returned when a script-bearing asset is
	// issued with a transaction version that cannot carry a script.
	ErrUnsupportedVersion = errors.New("tx: scripts require transaction version 2 or higher")

	// ErrUnsupportedDataType is returned for a data entry whose type tag
	// is not integer, boolean, string or binary.
	ErrUnsupportedDataType = errors.New("tx: unsupported data entry type")
)
