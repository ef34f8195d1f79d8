package config

import (
	"time"

	"github.com/acryl-tech/acryl-go/pkg/types"
)

// Default public endpoints.
const (
	DefaultNodeAddress    = "https://nodes.acrylplatform.com"
	DefaultMatcherAddress = "https://matcher.acrylplatform.com"
)

// DefaultFees returns the documented default fee per transaction kind.
func DefaultFees() Fees {
	return Fees{
		Transfer:       100000,
		Lease:          100000,
		LeaseCancel:    100000,
		Alias:          100000,
		Issue:          100000000,
		Reissue:        100000000,
		Burn:           100000,
		Sponsorship:    100000000,
		SetScript:      1000000,
		SetAssetScript: 100000000,
	}
}

// DefaultMainnet returns the default client configuration for mainnet.
func DefaultMainnet() *Config {
	return &Config{
		Network:        Mainnet,
		ChainID:        types.MainnetChainID,
		NodeAddress:    DefaultNodeAddress,
		MatcherAddress: DefaultMatcherAddress,
		RequestTimeout: 10 * time.Second,
		Fees:           DefaultFees(),
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// DefaultTestnet returns the default client configuration for testnet.
func DefaultTestnet() *Config {
	cfg := DefaultMainnet()
	cfg.Network = Testnet
	cfg.ChainID = types.TestnetChainID
	return cfg
}

// Default returns the default client configuration for the given network.
func Default(network NetworkType) *Config {
	switch network {
	case Testnet:
		return DefaultTestnet()
	default:
		return DefaultMainnet()
	}
}
