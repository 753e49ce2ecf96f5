package commands

import (
	"fmt"

	"github.com/Giri-Aayush/concero-faucet/pkg/cli/ui"
	"github.com/Giri-Aayush/concero-faucet/pkg/utils"
	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:   "claim <ADDRESS>",
	Short: "Claim once for a single address",
	Long: `Run one pass for a single wallet address and exit.

Examples:
  # Prompt for chains
  concero-faucet claim 0x742d35Cc6634C0532925a3b844Bc454e4438f44e

  # Every chain, no prompt
  concero-faucet claim 0x742d35Cc6634C0532925a3b844Bc454e4438f44e --chains all`,
	Args: cobra.ExactArgs(1),
	RunE: runClaim,
}

func runClaim(cmd *cobra.Command, args []string) error {
	address := args[0]

	// Validate address
	if !utils.HasAddressPrefix(address) {
		return fmt.Errorf("invalid address %q: must start with 0x", address)
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	if !utils.IsEVMAddress(address) {
		logger.Warn("Address is not a 20-byte hex address, claiming anyway")
	}

	term := ui.NewTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr())

	selection, err := selectChains(cmd.InOrStdin(), term)
	if err != nil {
		return err
	}

	return runScheduler(cmd.Context(), term, logger, []string{address}, selection, true)
}
