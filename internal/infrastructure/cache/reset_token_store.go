package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/redis/go-redis/v9"
)

var _ ports.ResetTokenStore = (*ResetTokenStore)(nil)

// ResetTokenStore tokens de redefinição de senha.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore constrói o store.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func (s *ResetTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, resetTokenKeyPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Consume usa GETDEL: o token vale uma única vez.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, bool, error) {
	userID, err := s.client.GetDel(ctx, resetTokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("consume reset token: %w", err)
	}
	return userID, true, nil
}
