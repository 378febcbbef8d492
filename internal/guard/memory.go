package guard

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const defaultMaxEntries = 256

// Memory is a process-local store with TTL expiry and LRU eviction.
type Memory struct {
	cache *ttlcache.Cache[string, Entry]
}

// NewMemory creates a bounded in-memory store. A zero ttl keeps entries until
// they are evicted.
func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if ttl < 0 {
		ttl = ttlcache.NoTTL
	}
	return &Memory{
		cache: ttlcache.New[string, Entry](
			ttlcache.WithTTL[string, Entry](ttl),
			ttlcache.WithCapacity[string, Entry](uint64(maxEntries)),
		),
	}
}

func (m *Memory) Get(_ context.Context, fp string) (Entry, bool, error) {
	if m == nil {
		return Entry{}, false, nil
	}
	item := m.cache.Get(fp)
	if item == nil {
		return Entry{}, false, nil
	}
	return item.Value(), true, nil
}

func (m *Memory) Put(_ context.Context, fp string, e Entry) error {
	if m == nil {
		return nil
	}
	m.cache.Set(fp, e, ttlcache.DefaultTTL)
	return nil
}

// Len reports the number of live entries.
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	return m.cache.Len()
}
