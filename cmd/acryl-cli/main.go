// acryl-cli is a command-line wallet and node client for acryl chains.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/acryl-tech/acryl-go/config"
	"github.com/acryl-tech/acryl-go/internal/log"
	"github.com/acryl-tech/acryl-go/pkg/client"
	"github.com/acryl-tech/acryl-go/pkg/tx"
	"github.com/acryl-tech/acryl-go/pkg/wallet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	cfgPath := ""
	node := ""
	network := ""
	apiKey := ""
	logLevel := "warn"

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--config" && len(args) > 1:
			cfgPath = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--config="):
			cfgPath = args[0][len("--config="):]
			args = args[1:]
		case args[0] == "--node" && len(args) > 1:
			node = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--node="):
			node = args[0][len("--node="):]
			args = args[1:]
		case args[0] == "--network" && len(args) > 1:
			network = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--network="):
			network = args[0][len("--network="):]
			args = args[1:]
		case args[0] == "--api-key" && len(args) > 1:
			apiKey = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--api-key="):
			apiKey = args[0][len("--api-key="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(logLevel, false)

	cfg := loadConfig(cfgPath, network)
	if node != "" {
		cfg.NodeAddress = node
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration: %v", err)
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	c := client.FromConfig(cfg)
	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "account":
		cmdAccount(cmdArgs, cfg)
	case "balance":
		cmdBalance(c, cmdArgs)
	case "height":
		cmdHeight(c)
	case "transfer":
		cmdTransfer(c, cmdArgs, cfg)
	case "broadcast":
		cmdBroadcast(c, cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: acryl-cli [global flags] <command> [flags]

Global flags:
  --config <path>     Configuration file (key = value format)
  --node <url>        Node URL (default: %s)
  --network <net>     mainnet (default) or testnet
  --api-key <key>     Node API key for privileged endpoints
  --log-level <lvl>   debug, info, warn (default) or error

Commands:
  account new [--nonce <n>] [--save <file>] [--encrypt]
                                  Generate a seed and derive an account
  account import --seed "..." [--nonce <n>] [--save <file>] [--encrypt]
                                  Rebuild an account from a seed phrase
  account show --file <file> [--encrypted]
                                  Inspect a saved account file
  balance <address> [--details]   Query an address balance
  height                          Show the current chain height
  transfer --file <acct> --to <address> --amount <n>
           [--fee <n>] [--asset <id>] [--attachment <text>] [--encrypted]
                                  Sign and broadcast a transfer
  broadcast --json <file>         Broadcast a signed transaction JSON
`, config.DefaultNodeAddress)
}

func loadConfig(path, network string) *config.Config {
	var cfg *config.Config
	switch network {
	case "", "mainnet":
		cfg = config.DefaultMainnet()
	case "testnet":
		cfg = config.DefaultTestnet()
	default:
		fatal("unknown network %q (want mainnet or testnet)", network)
	}
	if path != "" {
		values, err := config.LoadFile(path)
		if err != nil {
			fatal("load config: %v", err)
		}
		if err := config.ApplyFileConfig(cfg, values); err != nil {
			fatal("apply config: %v", err)
		}
	}
	return cfg
}

func cmdAccount(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fatal("Usage: acryl-cli account <new|import|show> [flags]")
	}
	switch args[0] {
	case "new":
		cmdAccountNew(args[1:], cfg)
	case "import":
		cmdAccountImport(args[1:], cfg)
	case "show":
		cmdAccountShow(args[1:])
	default:
		fatal("Unknown account command: %s\nUsage: acryl-cli account <new|import|show> [flags]", args[0])
	}
}

func cmdAccountNew(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("account new", flag.ExitOnError)
	nonce := fs.Uint("nonce", 0, "Derivation nonce")
	save := fs.String("save", "", "Save the account to this file")
	encrypt := fs.Bool("encrypt", false, "Encrypt the saved file with a passphrase")
	fs.Parse(args)

	seed, err := wallet.GenerateSeed(wallet.SeedEntropyBits)
	if err != nil {
		fatal("generate seed: %v", err)
	}

	fmt.Println("Seed (write this down!):")
	fmt.Printf("  %s\n\n", seed)

	acc, err := wallet.NewAccountFromSeed(seed, uint32(*nonce), cfg.ChainID)
	if err != nil {
		fatal("derive account: %v", err)
	}
	printAccount(acc)
	saveAccount(acc, *save, *encrypt)
}

func cmdAccountImport(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("account import", flag.ExitOnError)
	seed := fs.String("seed", "", "Seed phrase")
	nonce := fs.Uint("nonce", 0, "Derivation nonce")
	save := fs.String("save", "", "Save the account to this file")
	encrypt := fs.Bool("encrypt", false, "Encrypt the saved file with a passphrase")
	fs.Parse(args)

	if *seed == "" {
		fatal("Usage: acryl-cli account import --seed \"word1 word2 ...\"")
	}

	acc, err := wallet.NewAccountFromSeed(*seed, uint32(*nonce), cfg.ChainID)
	if err != nil {
		fatal("derive account: %v", err)
	}
	printAccount(acc)
	saveAccount(acc, *save, *encrypt)
}

func cmdAccountShow(args []string) {
	fs := flag.NewFlagSet("account show", flag.ExitOnError)
	file := fs.String("file", "", "Account file")
	encrypted := fs.Bool("encrypted", false, "The file is passphrase-encrypted")
	fs.Parse(args)

	if *file == "" {
		fatal("Usage: acryl-cli account show --file <file> [--encrypted]")
	}

	acc := loadAccount(*file, *encrypted)
	printAccount(acc)
}

func cmdBalance(c *client.Client, args []string) {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	details := fs.Bool("details", false, "Show the balance breakdown")

	var address string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		address = args[0]
		args = args[1:]
	}
	fs.Parse(args)

	if address == "" {
		fatal("Usage: acryl-cli balance <address> [--details]")
	}

	if *details {
		d, err := c.AddressBalanceDetails(address)
		if err != nil {
			fatal("balance details: %v", err)
		}
		fmt.Printf("Address:    %s\n", d.Address)
		fmt.Printf("Regular:    %d\n", d.Regular)
		fmt.Printf("Generating: %d\n", d.Generating)
		fmt.Printf("Available:  %d\n", d.Available)
		fmt.Printf("Effective:  %d\n", d.Effective)
		return
	}

	b, err := c.AddressBalance(address)
	if err != nil {
		fatal("balance: %v", err)
	}
	fmt.Printf("%d\n", b.Balance)
}

func cmdHeight(c *client.Client) {
	height, err := c.BlocksHeight()
	if err != nil {
		fatal("blocks height: %v", err)
	}
	fmt.Printf("%d\n", height)
}

func cmdTransfer(c *client.Client, args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	file := fs.String("file", "", "Account file holding the sender key")
	encrypted := fs.Bool("encrypted", false, "The account file is passphrase-encrypted")
	to := fs.String("to", "", "Recipient address")
	amount := fs.Uint64("amount", 0, "Amount in the smallest unit")
	fee := fs.Uint64("fee", 0, "Fee (0 uses the configured default)")
	asset := fs.String("asset", "", "Asset id (empty for the native token)")
	attachment := fs.String("attachment", "", "Attachment text")
	fs.Parse(args)

	if *file == "" || *to == "" || *amount == 0 {
		fatal("Usage: acryl-cli transfer --file <acct> --to <address> --amount <n> [flags]")
	}

	acc := loadAccount(*file, *encrypted)
	acc.Fees = cfg.Fees

	result, err := acc.TransferAsset(c, *to, *asset, "", *amount, *fee, *attachment)
	if err != nil {
		fatal("transfer: %v", err)
	}
	printJSON(result)
}

func cmdBroadcast(c *client.Client, args []string) {
	fs := flag.NewFlagSet("broadcast", flag.ExitOnError)
	file := fs.String("json", "", "File with signed transaction JSON")
	fs.Parse(args)

	if *file == "" {
		fatal("Usage: acryl-cli broadcast --json <file>")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fatal("read transaction: %v", err)
	}
	var signed tx.Signed
	if err := json.Unmarshal(data, &signed); err != nil {
		fatal("parse transaction: %v", err)
	}

	result, err := c.Broadcast(signed)
	if err != nil {
		fatal("broadcast: %v", err)
	}
	printJSON(result)
}

func printAccount(acc *wallet.Account) {
	fmt.Printf("Address:    %s\n", acc.Address)
	if pub, ok := acc.PublicKey(); ok {
		fmt.Printf("Public key: %s\n", pub)
	}
	if acc.CanSign() {
		fmt.Printf("Private key: %s\n", acc.Keys.Private)
	}
	fmt.Printf("Chain:      %c\n", acc.ChainID)
}

func saveAccount(acc *wallet.Account, path string, encrypt bool) {
	if path == "" {
		return
	}
	if encrypt {
		password := readPasswordTwice()
		if err := acc.SaveEncrypted(path, password, wallet.DefaultEncryptionParams()); err != nil {
			fatal("save account: %v", err)
		}
	} else {
		if err := acc.SaveJSON(path); err != nil {
			fatal("save account: %v", err)
		}
	}
	fmt.Printf("\nSaved to %s\n", path)
}

func loadAccount(path string, encrypted bool) *wallet.Account {
	if encrypted {
		password, err := readPassword("Enter passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		acc, err := wallet.LoadEncrypted(path, password)
		if err != nil {
			fatal("load account: %v", err)
		}
		return acc
	}
	acc, err := wallet.LoadJSON(path)
	if err != nil {
		fatal("load account: %v", err)
	}
	return acc
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("encode result: %v", err)
	}
	fmt.Println(string(data))
}

// ── Password helpers ────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

func readPasswordTwice() []byte {
	password, err := readPassword("Enter passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	confirm, err := readPassword("Confirm passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passphrases do not match")
	}
	return password
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
