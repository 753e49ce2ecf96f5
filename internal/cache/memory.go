package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps cooldowns in process memory
type MemoryStore struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory cooldown store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}

func memoryKey(address string, chainID int64) string {
	return fmt.Sprintf("%d:%s", chainID, normalizeAddress(address))
}

func (m *MemoryStore) Remaining(_ context.Context, address string, chainID int64) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remainingLocked(memoryKey(address, chainID)), nil
}

// Acquire checks and sets under one lock
func (m *MemoryStore) Acquire(_ context.Context, address string, chainID int64, d time.Duration) (time.Duration, error) {
	if d <= 0 {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoryKey(address, chainID)
	if left := m.remainingLocked(key); left > 0 {
		return left, nil
	}
	m.until[key] = m.now().Add(d)
	return 0, nil
}

func (m *MemoryStore) remainingLocked(key string) time.Duration {
	end, ok := m.until[key]
	if !ok {
		return 0
	}
	left := end.Sub(m.now())
	if left <= 0 {
		delete(m.until, key)
		return 0
	}
	return left
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Close() error { return nil }
