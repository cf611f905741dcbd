package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	createdAt time.Time
	expiresAt time.Time
}

// MemoryStore is an in-process Store with optional TTL expiry.
type MemoryStore struct {
	mu          sync.RWMutex
	items       map[string]memoryEntry
	ttl         time.Duration
	stopCleanup chan struct{}
	cleanupOnce sync.Once
}

// NewMemoryStore creates an in-memory store. A zero ttl disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		items:       make(map[string]memoryEntry),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}
	if ttl > 0 {
		go s.cleanupExpired(ttl)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if s.ttl > 0 && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		if e, exists := s.items[key]; exists && time.Now().After(e.expiresAt) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}

	return entry.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	// Copy to decouple from caller's buffer.
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	now := time.Now()
	entry := memoryEntry{value: valueCopy, createdAt: now}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	s.items[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.items = make(map[string]memoryEntry)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

func (s *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for k, v := range s.items {
				if now.After(v.expiresAt) {
					delete(s.items, k)
				}
			}
			s.mu.Unlock()
		case <-s.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine. Call on shutdown or in tests.
func (s *MemoryStore) Close() error {
	s.cleanupOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}

// NewMemoryRegions builds one independent memory store per region.
func NewMemoryRegions(ttl time.Duration) *Regions {
	return &Regions{
		Classification: NewMemoryStore(ttl),
		Content:        NewMemoryStore(ttl),
		Templates:      NewMemoryStore(ttl),
	}
}
