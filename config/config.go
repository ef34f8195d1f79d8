// Package config holds client configuration and its documented defaults.
//
// All protocol defaults (node endpoints, chain ids, fee constants) live
// here as explicit configuration values rather than process-wide mutable
// globals, so callers can run against several networks at once.
package config

import "time"

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// Config holds client runtime configuration.
type Config struct {
	// Core
	Network NetworkType `conf:"network"`
	ChainID byte        `conf:"chain_id"`

	// Node API
	NodeAddress    string        `conf:"node_address"`
	MatcherAddress string        `conf:"matcher_address"`
	APIKey         string        `conf:"api_key"`
	RequestTimeout time.Duration `conf:"request_timeout"`

	// Default transaction fees
	Fees Fees

	// Logging
	Log LogConfig
}

// Fees holds the default fee per transaction kind, in minimal token
// units. Mass transfer and data fees are always computed from content
// and have no entry here.
type Fees struct {
	Transfer       uint64 `conf:"fee_transfer"`
	Lease          uint64 `conf:"fee_lease"`
	LeaseCancel    uint64 `conf:"fee_lease_cancel"`
	Alias          uint64 `conf:"fee_alias"`
	Issue          uint64 `conf:"fee_issue"`
	Reissue        uint64 `conf:"fee_reissue"`
	Burn           uint64 `conf:"fee_burn"`
	Sponsorship    uint64 `conf:"fee_sponsorship"`
	SetScript      uint64 `conf:"fee_set_script"`
	SetAssetScript uint64 `conf:"fee_set_asset_script"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `conf:"log_level"`
	JSON  bool   `conf:"log_json"`
}
