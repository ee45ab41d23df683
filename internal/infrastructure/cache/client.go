package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/redis/go-redis/v9"
)

// Prefixos das chaves. O do carrinho mantém o nome usado pelo front-end.
const (
	cartKeyPrefix        = "b2b-cart-storage:"
	profileKeyPrefix     = "session:profile:"
	blacklistKeyPrefix   = "token:blacklist:jti:"
	idempotencyKeyPrefix = "checkout:idempotency:"
	resetTokenKeyPrefix  = "auth:reset:"
)

// NewClient abre a conexão com o Redis e confere com um PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
