package types

// Chain id bytes. The chain id is a single ASCII character embedded in
// every address and in chain-aware transactions.
const (
	MainnetChainID byte = 'A'
	TestnetChainID byte = 'K'
)

// ChainName returns the human-readable network name for a chain id,
// or an empty string for an unknown id.
func ChainName(chainID byte) string {
	switch chainID {
	case MainnetChainID:
		return "mainnet"
	case TestnetChainID:
		return "testnet"
	default:
		return ""
	}
}

// KnownChainID reports whether the chain id identifies a known network.
func KnownChainID(chainID byte) bool {
	return ChainName(chainID) != ""
}
