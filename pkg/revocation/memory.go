package revocation

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
)

// MemoryStore is a process-local Store backed by bigcache.
type MemoryStore struct {
	cache *bigcache.BigCache
	now   func() time.Time
}

// NewMemoryStore returns a process-local store. maxTTL is the longest
// lifetime a token can have; entries are evicted once it elapses.
func NewMemoryStore(maxTTL time.Duration) (*MemoryStore, error) {
	cfg := bigcache.DefaultConfig(maxTTL)
	cfg.CleanWindow = time.Minute
	cfg.Verbose = false
	cache, err := bigcache.NewBigCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("create revocation cache: %w", err)
	}
	return &MemoryStore{
		cache: cache,
		now:   time.Now,
	}, nil
}

func (m *MemoryStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(expiresAt.UnixNano()))
	return m.cache.Set(fingerprint(token), buf)
}

func (m *MemoryStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	buf, err := m.cache.Get(fingerprint(token))
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	if len(buf) != 8 {
		return false, nil
	}
	expiresAt := time.Unix(0, int64(binary.BigEndian.Uint64(buf)))
	return m.now().Before(expiresAt), nil
}

// Len is the number of entries currently held.
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

func (m *MemoryStore) Close() error {
	return m.cache.Close()
}
