package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Giri-Aayush/concero-faucet/pkg/utils"
	"github.com/briandowns/spinner"
)

// clearLine returns the cursor to column 0 and erases the line
const clearLine = "\r\033[K"

// Stopper is a running countdown
type Stopper interface {
	Stop()
}

// ClaimCountdown shows the seconds left on an in-flight claim
type ClaimCountdown struct {
	spinner   *spinner.Spinner
	label     string
	remaining int

	// out is drawn on directly when the spinner declines to run (not a TTY)
	out    io.Writer
	manual bool

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// StartClaimCountdown starts the per-claim countdown line, e.g.
//
//	[1] Claiming for 0x742d...f44e on Sepolia... 30s
//
// It ticks down to zero and then holds until Stop is called.
func (t *Terminal) StartClaimCountdown(walletNum int, address, chainName string, budget time.Duration) Stopper {
	c := &ClaimCountdown{
		spinner:   t.newSpinner(),
		label:     fmt.Sprintf(" %s Claiming for %s on %s...", walletTag(walletNum), blue(utils.ShortenAddress(address)), cyan(chainName)),
		remaining: int(budget / time.Second),
		out:       t.out,
		done:      make(chan struct{}),
	}

	c.spinner.Suffix = c.suffix()
	// The spinner only animates on a terminal; it checks its file, not its writer
	if _, ok := t.out.(*os.File); ok {
		c.spinner.Start()
	}
	if !c.spinner.Active() {
		c.manual = true
		c.draw()
	}

	c.wg.Add(1)
	go c.run(t.tick)

	return c
}

func (c *ClaimCountdown) run(tick time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for c.remaining > 0 {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.spinner.Lock()
			c.remaining--
			c.spinner.Suffix = c.suffix()
			c.spinner.Unlock()
			if c.manual {
				c.draw()
			}
		}
	}
}

func (c *ClaimCountdown) draw() {
	fmt.Fprintf(c.out, "%s%s", clearLine, c.suffix())
}

func (c *ClaimCountdown) suffix() string {
	return fmt.Sprintf("%s %ds   ", c.label, c.remaining)
}

// Remaining returns the seconds left on the countdown
func (c *ClaimCountdown) Remaining() int {
	c.spinner.Lock()
	defer c.spinner.Unlock()
	return c.remaining
}

// Stop halts the countdown and clears its line. Safe to call more than once.
func (c *ClaimCountdown) Stop() {
	c.once.Do(func() {
		close(c.done)
		c.wg.Wait()
		if c.manual {
			fmt.Fprint(c.out, clearLine)
			return
		}
		c.spinner.Stop()
	})
}

func (t *Terminal) newSpinner() *spinner.Spinner {
	opt := spinner.WithWriter(t.out)
	if f, ok := t.out.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, opt)
	s.Color("cyan")
	return s
}

// WaitForNextCycle counts d down on a single line as HH:MM:SS, one second
// per tick. It returns nil once the countdown reaches zero, or ctx.Err() if
// ctx is cancelled first.
func (t *Terminal) WaitForNextCycle(ctx context.Context, d time.Duration) error {
	remaining := d.Truncate(time.Second)

	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-ctx.Done():
			fmt.Fprintln(t.out)
			return ctx.Err()
		case <-ticker.C:
			remaining -= time.Second
			fmt.Fprintf(t.out, "%sNext claim in %s   ", clearLine, cyan(FormatClock(remaining)))
		}
	}

	fmt.Fprintf(t.out, "\n%s\n", bold("Starting next claim cycle..."))
	return nil
}

// FormatClock renders d as HH:MM:SS; hours are not capped at 24
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
