package cache

import (
	"context"
	"strings"
	"time"
)

// CooldownStore remembers when an (address, chain) pair may claim again
type CooldownStore interface {
	// Remaining returns how long the pair is still cooling down, zero if it may claim
	Remaining(ctx context.Context, address string, chainID int64) (time.Duration, error)
	// Acquire starts a cooldown of length d for the pair unless one is
	// already running, in a single step. It returns zero when the cooldown
	// was started, otherwise what is left of the running one.
	Acquire(ctx context.Context, address string, chainID int64, d time.Duration) (time.Duration, error)
	Ping(ctx context.Context) error
	Name() string
	Close() error
}

// normalizeAddress makes cooldowns case-insensitive on the hex digits
func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
