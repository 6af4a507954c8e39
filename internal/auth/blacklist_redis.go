package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const blacklistKeyPrefix = "auth:revoked:"

// RedisBlacklist is the shared-registry variant for multi-instance
// deployments. Expiry bounding comes for free from key TTLs.
type RedisBlacklist struct {
	client     *redis.Client
	expiryOf   ExpiryFunc
	defaultTTL time.Duration
	logger     *zap.Logger
}

// NewRedisBlacklist builds the registry on an existing client.
func NewRedisBlacklist(client *redis.Client, expiryOf ExpiryFunc, defaultTTL time.Duration, logger *zap.Logger) *RedisBlacklist {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &RedisBlacklist{client: client, expiryOf: expiryOf, defaultTTL: defaultTTL, logger: logger}
}

// Revoke stores the token with a TTL equal to its remaining lifetime.
func (b *RedisBlacklist) Revoke(ctx context.Context, token string) error {
	ttl := b.defaultTTL
	if deadline, ok := b.expiryOf(token); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			ttl = remaining
		} else {
			// already expired; nothing can present it successfully anymore
			return nil
		}
	}
	return b.client.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

// IsRevoked reports membership. A registry outage logs and reports not
// revoked; the token's own signature and expiry checks still apply.
func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) bool {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		b.logger.Warn("blacklist lookup failed", zap.Error(err))
		return false
	}
	return n > 0
}
