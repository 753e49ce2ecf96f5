package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Giri-Aayush/concero-faucet/internal/chains"
	"github.com/Giri-Aayush/concero-faucet/internal/models"
	"github.com/Giri-Aayush/concero-faucet/pkg/utils"
	"github.com/fatih/color"
)

var (
	// Colors
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()

	// Symbols
	checkMark = green("✓")
	xMark     = red("✗")
	arrow     = cyan("→")
)

// Terminal renders prompts, countdowns and claim results.
// Results go to out, errors to errOut.
type Terminal struct {
	out    io.Writer
	errOut io.Writer

	// tick is how often countdowns advance by one second
	tick time.Duration
}

// NewTerminal creates a terminal renderer
func NewTerminal(out, errOut io.Writer) *Terminal {
	return &Terminal{out: out, errOut: errOut, tick: time.Second}
}

// NewStdTerminal renders to the process stdout and stderr
func NewStdTerminal() *Terminal {
	return NewTerminal(os.Stdout, os.Stderr)
}

// PrintBanner prints the program banner
func (t *Terminal) PrintBanner() {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, bold(cyan("  Concero Testnet Faucet Claimer")))
	fmt.Fprintln(t.out, cyan("  "+strings.Repeat("━", 32)))
	fmt.Fprintln(t.out)
}

// PrintSuccess prints a success message
func (t *Terminal) PrintSuccess(message string) {
	fmt.Fprintf(t.out, "%s %s\n", checkMark, message)
}

// PrintError prints an error message
func (t *Terminal) PrintError(message string) {
	fmt.Fprintf(t.errOut, "%s %s\n", xMark, red(message))
}

// PrintInfo prints an info message
func (t *Terminal) PrintInfo(message string) {
	fmt.Fprintf(t.out, "%s %s\n", arrow, message)
}

// PrintScriptError prints the fatal error line
func (t *Terminal) PrintScriptError(err error) {
	fmt.Fprintf(t.errOut, "%s %v\n", red("Script error:"), err)
}

// Prompt writes a question without a trailing newline
func (t *Terminal) Prompt(question string) {
	fmt.Fprint(t.out, question)
}

// PrintCatalog lists chains as a numbered menu
func (t *Terminal) PrintCatalog(catalog []chains.Chain) {
	fmt.Fprintln(t.out, bold("Available chains:"))
	for i, c := range catalog {
		fmt.Fprintf(t.out, "%d. %s (%d)\n", i+1, cyan(c.Name), c.ID)
	}
}

// PrintSelection echoes the chains that will be claimed on
func (t *Terminal) PrintSelection(selected []chains.Chain) {
	fmt.Fprintln(t.out, bold("Selected chains:"))
	for _, c := range selected {
		fmt.Fprintf(t.out, "- %s (%d)\n", cyan(c.Name), c.ID)
	}
}

// PrintClaimResult prints the one line summary of a settled claim
func (t *Terminal) PrintClaimResult(walletNum int, address, chainName string, resp *models.ClaimResponse) {
	status := red("Failed")
	if resp.Success {
		status = green("Success")
	}

	message := utils.Sanitize(resp.Message)
	if message == "" {
		message = "no message"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s on %s: %s - %s",
		walletTag(walletNum), blue(address), cyan(chainName), status, message)
	if code := utils.Sanitize(resp.ErrorCode); code != "" {
		fmt.Fprintf(&b, " (%s)", code)
	}
	if tx := utils.Sanitize(resp.TxHash); tx != "" {
		fmt.Fprintf(&b, " (tx: %s)", tx)
	}

	fmt.Fprintln(t.out, b.String())
}

// PrintClaimError prints the line for a claim that produced no response
func (t *Terminal) PrintClaimError(walletNum int, address, chainName, message string) {
	fmt.Fprintf(t.errOut, "%s %s for %s on %s: %s\n",
		walletTag(walletNum), red("Error"), blue(address), cyan(chainName), message)
}

func walletTag(walletNum int) string {
	return yellow(fmt.Sprintf("[%d]", walletNum))
}
