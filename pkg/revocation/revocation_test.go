package revocation

import (
	"context"
	"sync"
	"testing"
	"time"

	"notekeeper-backend/internal/testutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore(time.Hour)
	require.NoError(t, err)
	defer store.Close()

	revoked, err := store.IsRevoked(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "abc123", time.Now().Add(time.Hour)))

	revoked, err = store.IsRevoked(ctx, "abc123")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "abc1234")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_IgnoresExpiredEntries(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore(time.Hour)
	require.NoError(t, err)
	defer store.Close()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "tok", now.Add(time.Minute)))

	revoked, err := store.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore(time.Hour)
	require.NoError(t, err)
	defer store.Close()

	exp := time.Now().Add(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok := string(rune('a'+i%26)) + time.Duration(i).String()
			assert.NoError(t, store.Revoke(ctx, tok, exp))
			revoked, err := store.IsRevoked(ctx, tok)
			assert.NoError(t, err)
			assert.True(t, revoked)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, store.Len())
}

func TestDBStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t, &RevokedToken{})
	store := NewDBStore(db)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	revoked, err := store.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "tok-1", now.Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "tok-1", now.Add(time.Hour)), "revoking twice is fine")
	require.NoError(t, store.Revoke(ctx, "tok-2", now.Add(time.Minute)))

	revoked, err = store.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	var stored RevokedToken
	require.NoError(t, db.First(&stored).Error)
	assert.NotContains(t, stored.TokenHash, "tok")
	assert.Len(t, stored.TokenHash, 64)

	now = now.Add(30 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "tok-2")
	require.NoError(t, err)
	assert.False(t, revoked, "expired revocations are ignored")

	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	revoked, err = store.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestDBStore_SharedBetweenInstances(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t, &RevokedToken{})

	first := NewDBStore(db)
	second := NewDBStore(db)

	require.NoError(t, first.Revoke(ctx, "shared", time.Now().Add(time.Hour)))

	revoked, err := second.IsRevoked(ctx, "shared")
	require.NoError(t, err)
	assert.True(t, revoked)
}

type countingPruner struct {
	mu    sync.Mutex
	calls int
}

func (p *countingPruner) DeleteExpired(ctx context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return 0, nil
}

func (p *countingPruner) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestSweeper(t *testing.T) {
	pruner := &countingPruner{}
	sweeper := NewSweeper(pruner, 10*time.Millisecond, zerolog.Nop())

	sweeper.Start(context.Background())
	sweeper.Start(context.Background())

	assert.Eventually(t, func() bool { return pruner.Calls() >= 3 }, time.Second, 5*time.Millisecond)

	sweeper.Stop()
	sweeper.Stop()

	calls := pruner.Calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, pruner.Calls(), "no sweeps after Stop")
}

func TestSweeper_StopWithoutStart(t *testing.T) {
	sweeper := NewSweeper(&countingPruner{}, time.Minute, zerolog.Nop())
	sweeper.Stop()
}
