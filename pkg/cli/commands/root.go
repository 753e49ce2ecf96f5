package commands

import (
	"context"
	"os"

	"github.com/Giri-Aayush/concero-faucet/internal/config"
	"github.com/Giri-Aayush/concero-faucet/pkg/cli/ui"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.ClaimerConfig
	apiURL    string
	file      string
	chainsArg string
	verbose   bool
)

// rootCmd represents the base command; on its own it runs the claim loop
var rootCmd = &cobra.Command{
	Use:   "concero-faucet",
	Short: "Concero testnet faucet claimer",
	Long: `Claims Concero faucet drips for every wallet in address.txt on the
selected test networks, then waits 25 hours and does it again.

Examples:
  concero-faucet                           # Prompt for chains, claim forever
  concero-faucet --chains "1 3"            # Sepolia and Base Sepolia, no prompt
  concero-faucet --chains all --once       # One pass over every chain, then exit
  concero-faucet claim 0xYOUR_ADDRESS      # Single wallet, single pass
  concero-faucet chains                    # List supported chains

One claim runs at a time and each gets 30 seconds.`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runLoop,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.NewStdTerminal().PrintScriptError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", config.DefaultAPIURL, "Faucet API URL (env FAUCET_API_URL)")
	rootCmd.PersistentFlags().StringVar(&chainsArg, "chains", "", `Chain numbers separated by spaces, or "all"; skips the prompt`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")

	rootCmd.Flags().StringVarP(&file, "file", "f", config.DefaultAddressFile, "Address list, one 0x address per line (env ADDRESS_FILE)")
	rootCmd.Flags().BoolVar(&once, "once", false, "Run a single pass and exit")

	// Add subcommands
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(chainsCmd)
}

// loadConfig merges environment configuration with flags; explicit flags win
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadClaimer()
	if err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("api-url"); f != nil && f.Changed {
		loaded.APIURL = apiURL
	}
	if f := cmd.Flags().Lookup("file"); f != nil && f.Changed {
		loaded.AddressFile = file
	}
	if verbose {
		loaded.LogLevel = "debug"
	}

	cfg = loaded
	return cfg.Validate()
}
