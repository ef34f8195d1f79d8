package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadFile loads client configuration from a .conf file.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key = value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a client config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Core
	case "network":
		cfg.Network = NetworkType(value)
	case "chain_id":
		if len(value) != 1 {
			return fmt.Errorf("chain id must be a single character, got %q", value)
		}
		cfg.ChainID = value[0]

	// Node API
	case "node_address", "node":
		cfg.NodeAddress = value
	case "matcher_address", "matcher":
		cfg.MatcherAddress = value
	case "api_key":
		cfg.APIKey = value
	case "request_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		cfg.RequestTimeout = d

	// Default fees
	case "fee_transfer":
		return setFee(&cfg.Fees.Transfer, value)
	case "fee_lease":
		return setFee(&cfg.Fees.Lease, value)
	case "fee_lease_cancel":
		return setFee(&cfg.Fees.LeaseCancel, value)
	case "fee_alias":
		return setFee(&cfg.Fees.Alias, value)
	case "fee_issue":
		return setFee(&cfg.Fees.Issue, value)
	case "fee_reissue":
		return setFee(&cfg.Fees.Reissue, value)
	case "fee_burn":
		return setFee(&cfg.Fees.Burn, value)
	case "fee_sponsorship":
		return setFee(&cfg.Fees.Sponsorship, value)
	case "fee_set_script":
		return setFee(&cfg.Fees.SetScript, value)
	case "fee_set_asset_script":
		return setFee(&cfg.Fees.SetAssetScript, value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// setFee parses a fee value in minimal token units.
func setFee(dst *uint64, value string) error {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a default client configuration file.
func WriteDefaultConfig(path string, network NetworkType) error {
	cfg := Default(network)
	content := `# Acryl client configuration

# Network: mainnet or testnet
network = ` + string(network) + `

# Chain id (single character; A = mainnet, K = testnet)
chain_id = ` + string(rune(cfg.ChainID)) + `

# Node API endpoint
node_address = ` + cfg.NodeAddress + `

# Matcher endpoint
matcher_address = ` + cfg.MatcherAddress + `

# API key for private node methods
# api_key =

# HTTP request timeout
request_timeout = 10s

# Default transaction fees (minimal token units)
# fee_transfer = 100000
# fee_issue = 100000000

log.level = info
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
