package commands

import (
	"encoding/json"
	"fmt"

	"github.com/Giri-Aayush/concero-faucet/internal/chains"
	"github.com/Giri-Aayush/concero-faucet/internal/models"
	"github.com/Giri-Aayush/concero-faucet/pkg/cli/ui"
	"github.com/spf13/cobra"
)

var jsonOut bool

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List supported chains",
	Long: `List the test networks the faucet can be claimed on, with the numbers
used by the chain prompt and --chains.

Example:
  concero-faucet chains`,
	RunE: runChains,
}

func init() {
	chainsCmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func runChains(cmd *cobra.Command, args []string) error {
	if jsonOut {
		jsonBytes, err := json.MarshalIndent(models.ChainsResponse{Chains: chains.Catalog}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	ui.NewTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr()).PrintCatalog(chains.Catalog)
	return nil
}
