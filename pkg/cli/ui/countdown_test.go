package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"full cycle", 25 * time.Hour, "25:00:00"},
		{"mixed", 1*time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{"seconds only", 59 * time.Second, "00:00:59"},
		{"sub second truncated", 1500 * time.Millisecond, "00:00:01"},
		{"zero", 0, "00:00:00"},
		{"negative clamps", -time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.d))
		})
	}
}

func TestWaitForNextCycle(t *testing.T) {
	withoutColor(t)
	term, out, _ := newBufferedTerminal()
	term.tick = time.Millisecond

	err := term.WaitForNextCycle(context.Background(), 3*time.Second)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, clearLine+"Next claim in 00:00:02")
	assert.Contains(t, output, clearLine+"Next claim in 00:00:01")
	assert.Contains(t, output, clearLine+"Next claim in 00:00:00")
	assert.NotContains(t, output, "00:00:03")
	assert.True(t, strings.HasSuffix(output, "\nStarting next claim cycle...\n"))
}

func TestWaitForNextCycleCancelled(t *testing.T) {
	term, out, _ := newBufferedTerminal()
	term.tick = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := term.WaitForNextCycle(ctx, 25*time.Hour)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotContains(t, out.String(), "Starting next claim cycle")
}

func TestClaimCountdownTicksToZero(t *testing.T) {
	term, _, _ := newBufferedTerminal()
	term.tick = time.Millisecond

	c := term.StartClaimCountdown(1, "0x742d35cc6634c0532925a3b844bc454e4438f44e", "Sepolia", 5*time.Second).(*ClaimCountdown)
	defer c.Stop()

	assert.Eventually(t, func() bool { return c.Remaining() == 0 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, c.Remaining())
}

func TestClaimCountdownStopEarly(t *testing.T) {
	term, _, _ := newBufferedTerminal()

	c := term.StartClaimCountdown(2, "0x742d35cc6634c0532925a3b844bc454e4438f44e", "Base Sepolia", 30*time.Second).(*ClaimCountdown)
	assert.Equal(t, 30, c.Remaining())

	done := make(chan struct{})
	go func() {
		c.Stop()
		c.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	assert.Equal(t, 30, c.Remaining())
}

func TestClaimCountdownSuffix(t *testing.T) {
	withoutColor(t)
	term, _, _ := newBufferedTerminal()

	c := term.StartClaimCountdown(4, "0x742d35cc6634c0532925a3b844bc454e4438f44e", "Avalanche Fuji", 30*time.Second).(*ClaimCountdown)
	defer c.Stop()

	assert.Equal(t, " [4] Claiming for 0x742d...f44e on Avalanche Fuji... 30s   ", c.suffix())
}

func TestClaimCountdownDrawsWithoutTerminal(t *testing.T) {
	withoutColor(t)
	term, out, _ := newBufferedTerminal()
	term.tick = 5 * time.Millisecond

	c := term.StartClaimCountdown(1, "0x742d35cc6634c0532925a3b844bc454e4438f44e", "Sepolia", 3*time.Second).(*ClaimCountdown)
	assert.Eventually(t, func() bool { return c.Remaining() == 0 }, time.Second, time.Millisecond)
	c.Stop()

	output := out.String()
	assert.True(t, strings.HasPrefix(output, clearLine+" [1] Claiming for 0x742d...f44e on Sepolia... 3s"))
	assert.Contains(t, output, clearLine+" [1] Claiming for 0x742d...f44e on Sepolia... 2s")
	assert.Contains(t, output, clearLine+" [1] Claiming for 0x742d...f44e on Sepolia... 0s")
	assert.True(t, strings.HasSuffix(output, clearLine))
}

func TestClaimCountdownStopClearsLineOnce(t *testing.T) {
	withoutColor(t)
	term, out, _ := newBufferedTerminal()

	c := term.StartClaimCountdown(3, "0x742d35cc6634c0532925a3b844bc454e4438f44e", "Base Sepolia", 30*time.Second)
	c.Stop()
	c.Stop()

	assert.Equal(t, clearLine+" [3] Claiming for 0x742d...f44e on Base Sepolia... 30s   "+clearLine, out.String())
}
