package config

import (
	"fmt"

	"github.com/acryl-tech/acryl-go/pkg/types"
)

// Validate checks a client configuration for usable values.
func (c *Config) Validate() error {
	if c.Network != Mainnet && c.Network != Testnet {
		return fmt.Errorf("unknown network %q", c.Network)
	}
	if !types.KnownChainID(c.ChainID) {
		return fmt.Errorf("unknown chain id %q", string(rune(c.ChainID)))
	}
	if c.NodeAddress == "" {
		return fmt.Errorf("node address is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.Fees.Transfer == 0 || c.Fees.Issue == 0 {
		return fmt.Errorf("default fees must be non-zero")
	}
	return nil
}
