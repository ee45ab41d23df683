package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/redis/go-redis/v9"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// pendingMarker valor da chave reservada enquanto o checkout roda.
const pendingMarker = "\x00pending"

// IdempotencyStore chaves Idempotency-Key do checkout.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore constrói o store.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Reserve usa SETNX: só a primeira requisição com a chave segue adiante.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyKeyPrefix+key, pendingMarker, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	return ok, nil
}

func (s *IdempotencyStore) Result(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, idempotencyKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get idempotency key: %w", err)
	}
	if v == pendingMarker {
		return "", false, nil
	}
	return v, true, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, idempotencyKeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("complete idempotency key: %w", err)
	}
	return nil
}

// Release libera a chave após uma falha para permitir nova tentativa.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, idempotencyKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
