package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Giri-Aayush/concero-faucet/internal/chains"
	"github.com/Giri-Aayush/concero-faucet/pkg/cli/ui"
)

// SelectionPrompt is asked until the operator picks at least one chain
const SelectionPrompt = "Enter chain numbers separated by spaces, or 'all': "

// SelectChains shows the chain menu and reads lines from in until one parses
// to a non-empty selection. It only gives up when in is exhausted.
func SelectChains(in io.Reader, term *ui.Terminal) ([]chains.Chain, error) {
	scanner := bufio.NewScanner(in)

	for {
		term.PrintCatalog(chains.Catalog)
		term.Prompt(SelectionPrompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read selection: %w", err)
			}
			return nil, ErrNoSelection
		}

		selected := chains.ParseSelection(scanner.Text())
		if len(selected) > 0 {
			term.PrintSelection(selected)
			return selected, nil
		}

		term.PrintError("Invalid selection. Please try again.")
	}
}

// ParseChainsFlag is the non-interactive form of SelectChains
func ParseChainsFlag(value string) ([]chains.Chain, error) {
	selected := chains.ParseSelection(value)
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %q matches no chain", ErrNoSelection, value)
	}
	return selected, nil
}
