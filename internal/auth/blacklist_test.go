package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedExpiry(deadline time.Time) ExpiryFunc {
	return func(string) (time.Time, bool) { return deadline, true }
}

func noExpiry(string) (time.Time, bool) { return time.Time{}, false }

func TestMemoryBlacklistRevokeAndLookup(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBlacklist(fixedExpiry(time.Now().Add(time.Hour)), time.Hour)

	assert.False(t, b.IsRevoked(ctx, "tok-1"))

	require.NoError(t, b.Revoke(ctx, "tok-1"))
	assert.True(t, b.IsRevoked(ctx, "tok-1"))
	assert.False(t, b.IsRevoked(ctx, "tok-2"))
}

func TestMemoryBlacklistEntryOutlivesNothing(t *testing.T) {
	ctx := context.Background()
	base := time.Now()
	b := NewMemoryBlacklist(fixedExpiry(base.Add(10*time.Minute)), time.Hour)

	clock := base
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Revoke(ctx, "tok"))

	// Still inside the token's lifetime: the entry must hold.
	clock = base.Add(9 * time.Minute)
	assert.True(t, b.IsRevoked(ctx, "tok"))

	// Past the token's own expiry the entry is moot and gets evicted.
	clock = base.Add(11 * time.Minute)
	assert.False(t, b.IsRevoked(ctx, "tok"))
	assert.Equal(t, 0, b.Len())
}

func TestMemoryBlacklistDefaultTTLForUndatedTokens(t *testing.T) {
	ctx := context.Background()
	base := time.Now()
	b := NewMemoryBlacklist(noExpiry, 30*time.Minute)

	clock := base
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Revoke(ctx, "garbage-token"))
	assert.True(t, b.IsRevoked(ctx, "garbage-token"))

	clock = base.Add(29 * time.Minute)
	assert.True(t, b.IsRevoked(ctx, "garbage-token"))

	clock = base.Add(31 * time.Minute)
	assert.False(t, b.IsRevoked(ctx, "garbage-token"))
}

func TestMemoryBlacklistRevokeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	base := time.Now()
	deadlines := []time.Time{base.Add(10 * time.Minute), base.Add(2 * time.Hour)}
	calls := 0
	b := NewMemoryBlacklist(func(string) (time.Time, bool) {
		d := deadlines[calls]
		calls++
		return d, true
	}, time.Hour)

	clock := base
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Revoke(ctx, "tok"))
	require.NoError(t, b.Revoke(ctx, "tok"))
	assert.Equal(t, 1, b.Len())

	// The first deadline wins, so the entry is gone once it passes even
	// though the second revocation offered a later one.
	clock = base.Add(11 * time.Minute)
	assert.False(t, b.IsRevoked(ctx, "tok"))
}

func TestMemoryBlacklistSweep(t *testing.T) {
	ctx := context.Background()
	base := time.Now()
	b := NewMemoryBlacklist(nil, time.Hour)
	b.expiryOf = func(token string) (time.Time, bool) {
		if token == "short" {
			return base.Add(time.Minute), true
		}
		return base.Add(time.Hour), true
	}

	clock := base
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Revoke(ctx, "short"))
	require.NoError(t, b.Revoke(ctx, "long"))
	require.Equal(t, 2, b.Len())

	clock = base.Add(2 * time.Minute)
	assert.Equal(t, 1, b.Sweep())
	assert.Equal(t, 1, b.Len())
	assert.True(t, b.IsRevoked(ctx, "long"))
	assert.False(t, b.IsRevoked(ctx, "short"))
}

func TestMemoryBlacklistConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBlacklist(fixedExpiry(time.Now().Add(time.Hour)), time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				token := fmt.Sprintf("tok-%d-%d", n, j)
				_ = b.Revoke(ctx, token)
				b.IsRevoked(ctx, token)
				b.Sweep()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16*100, b.Len())
}
