package auth

import (
	"context"
	"sync"
	"time"
)

// Blacklist is the revocation registry consulted on every authenticated
// request. Revoke must be visible to all subsequent IsRevoked calls from any
// goroutine; entries disappear once the underlying token has expired anyway.
type Blacklist interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) bool
}

// ExpiryFunc resolves a token's natural expiry so the registry can bound the
// lifetime of its entries.
type ExpiryFunc func(token string) (time.Time, bool)

// MemoryBlacklist is the in-process registry implementation: a mutex-guarded
// map from token string to eviction deadline. Pruning is lazy on lookup, with
// an optional periodic sweep for tokens that are never presented again.
type MemoryBlacklist struct {
	mu         sync.RWMutex
	entries    map[string]time.Time
	expiryOf   ExpiryFunc
	defaultTTL time.Duration
	now        func() time.Time
}

// NewMemoryBlacklist builds the registry. expiryOf is typically
// TokenManager.ExpiryOf; tokens it cannot date are kept for defaultTTL so
// garbage still ages out.
func NewMemoryBlacklist(expiryOf ExpiryFunc, defaultTTL time.Duration) *MemoryBlacklist {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &MemoryBlacklist{
		entries:    make(map[string]time.Time),
		expiryOf:   expiryOf,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Revoke inserts the token. Idempotent: revoking twice keeps the earlier
// deadline.
func (b *MemoryBlacklist) Revoke(_ context.Context, token string) error {
	deadline, ok := b.expiryOf(token)
	if !ok {
		deadline = b.now().Add(b.defaultTTL)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.entries[token]; !exists {
		b.entries[token] = deadline
	}
	return nil
}

// IsRevoked reports membership. An entry past its deadline is evicted on the
// spot and reported as not revoked, since the token itself is expired by then.
func (b *MemoryBlacklist) IsRevoked(_ context.Context, token string) bool {
	b.mu.RLock()
	deadline, ok := b.entries[token]
	b.mu.RUnlock()
	if !ok {
		return false
	}
	if b.now().After(deadline) {
		b.mu.Lock()
		if d, still := b.entries[token]; still && b.now().After(d) {
			delete(b.entries, token)
		}
		b.mu.Unlock()
		return false
	}
	return true
}

// Sweep removes every entry whose deadline has passed and returns how many
// were evicted.
func (b *MemoryBlacklist) Sweep() int {
	now := b.now()
	b.mu.Lock()
	defer b.mu.Unlock()
	evicted := 0
	for token, deadline := range b.entries {
		if now.After(deadline) {
			delete(b.entries, token)
			evicted++
		}
	}
	return evicted
}

// Len reports the current number of revoked entries.
func (b *MemoryBlacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Run sweeps on the given interval until the context is cancelled.
func (b *MemoryBlacklist) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Sweep()
		}
	}
}
