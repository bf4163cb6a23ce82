package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is a process-local Store backed by a bounded, expiring LRU.
// The TTL is fixed at construction; the ttl passed to Set is ignored.
type MemoryStore struct {
	lru  *expirable.LRU[string, []byte]
	gens sync.Map // scope -> *atomic.Uint64
}

// NewMemoryStore creates a store holding at most size entries for ttl each.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.lru.Add(key, value)
	return nil
}

func (m *MemoryStore) DeletePrefix(_ context.Context, prefix string) error {
	for _, k := range m.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			m.lru.Remove(k)
		}
	}
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.lru.Purge()
	return nil
}

func (m *MemoryStore) Generation(_ context.Context, scope string) (uint64, error) {
	return m.counter(scope).Load(), nil
}

func (m *MemoryStore) BumpGeneration(_ context.Context, scope string) error {
	m.counter(scope).Add(1)
	return nil
}

// Len returns the number of live entries.
func (m *MemoryStore) Len() int {
	return m.lru.Len()
}

func (m *MemoryStore) counter(scope string) *atomic.Uint64 {
	if c, ok := m.gens.Load(scope); ok {
		return c.(*atomic.Uint64)
	}
	c, _ := m.gens.LoadOrStore(scope, new(atomic.Uint64))
	return c.(*atomic.Uint64)
}
