package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ivanKorotkov735/cursor/internal/domain"
	"github.com/ivanKorotkov735/cursor/internal/usecase"
)

type MemoryConfig struct {
	Now        func() time.Time
	MaxEntries int
}

// Memory is a bounded in-process result cache. When full it drops
// expired entries first; if every entry is still live the put is
// skipped, since the cache is advisory.
type Memory struct {
	mu         sync.Mutex
	now        func() time.Time
	entries    map[string]memoryEntry
	maxEntries int
}

type memoryEntry struct {
	value     domain.VerificationResult
	expiresAt time.Time
	hasExpiry bool
}

func NewMemory(cfg MemoryConfig) *Memory {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 10000
	}
	return &Memory{
		now:        cfg.Now,
		entries:    make(map[string]memoryEntry),
		maxEntries: cfg.MaxEntries,
	}
}

func (m *Memory) Get(_ context.Context, key string) (*domain.VerificationResult, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if entry.hasExpiry && m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return nil, false, nil
	}
	value := entry.value
	return &value, true, nil
}

func (m *Memory) Put(_ context.Context, key string, value domain.VerificationResult, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok && len(m.entries) >= m.maxEntries {
		m.gc()
		if len(m.entries) >= m.maxEntries {
			return nil
		}
	}
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.hasExpiry = true
		entry.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *Memory) gc() {
	now := m.now()
	for key, entry := range m.entries {
		if entry.hasExpiry && now.After(entry.expiresAt) {
			delete(m.entries, key)
		}
	}
}

var _ usecase.VerificationCache = (*Memory)(nil)
