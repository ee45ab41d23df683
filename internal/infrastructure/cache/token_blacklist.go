package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/redis/go-redis/v9"
)

var _ ports.TokenBlacklist = (*TokenBlacklist)(nil)

// TokenBlacklist jti revogados até a expiração do token.
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist constrói a blacklist.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Revoke grava o jti pelo tempo restante do token. ttl <= 0 não grava nada.
func (b *TokenBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}
