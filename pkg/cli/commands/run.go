package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Giri-Aayush/concero-faucet/internal/chains"
	"github.com/Giri-Aayush/concero-faucet/pkg/cli"
	"github.com/Giri-Aayush/concero-faucet/pkg/cli/ui"
	"github.com/Giri-Aayush/concero-faucet/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var once bool

func runLoop(cmd *cobra.Command, args []string) error {
	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	term := ui.NewTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr())
	term.PrintBanner()

	// Load addresses
	addresses, err := cli.LoadAddresses(cfg.AddressFile)
	if err != nil {
		return err
	}
	term.PrintInfo(fmt.Sprintf("Loaded %d address(es) from %s", len(addresses), cfg.AddressFile))
	for _, a := range utils.InvalidAddresses(addresses) {
		logger.Warn("Address is not a 20-byte hex address, claiming anyway", zap.String("address", a))
	}

	selection, err := selectChains(cmd.InOrStdin(), term)
	if err != nil {
		return err
	}

	return runScheduler(cmd.Context(), term, logger, addresses, selection, once)
}

// selectChains uses --chains when given, otherwise prompts
func selectChains(in io.Reader, term *ui.Terminal) ([]chains.Chain, error) {
	if chainsArg == "" {
		return cli.SelectChains(in, term)
	}

	selection, err := cli.ParseChainsFlag(chainsArg)
	if err != nil {
		return nil, err
	}
	term.PrintSelection(selection)
	return selection, nil
}

func runScheduler(ctx context.Context, term *ui.Terminal, logger *zap.Logger, addresses []string, selection []chains.Chain, singlePass bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := cli.NewFaucetClient(cfg.APIURL, cli.ClaimTimeout)
	scheduler := cli.NewScheduler(client, term, logger, addresses, selection)

	logger.Info("Claimer started",
		zap.String("api_url", cfg.APIURL),
		zap.Int("addresses", len(addresses)),
		zap.Int("chains", len(selection)),
		zap.Bool("once", singlePass),
	)

	var err error
	if singlePass {
		err = scheduler.RunPass(ctx, 1)
	} else {
		err = scheduler.Run(ctx)
	}

	if errors.Is(err, context.Canceled) {
		term.PrintInfo("Stopped")
		return nil
	}
	if err == nil {
		term.PrintSuccess("Pass complete")
	}
	return err
}
