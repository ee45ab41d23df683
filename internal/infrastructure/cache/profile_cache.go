package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

var (
	_ ports.ProfileCache       = (*ProfileCache)(nil)
	_ ports.SessionInvalidator = (*ProfileCache)(nil)
)

// cachedProfile cópia do perfil sem o hash de senha.
type cachedProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CNPJ      string    `json:"cnpj"`
	Phone     string    `json:"phone"`
	ClientID  string    `json:"clientId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileCache perfis usados pela resolução de sessão.
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache constrói o cache.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

func (c *ProfileCache) Get(ctx context.Context, userID string) (*entity.User, bool, error) {
	data, err := c.client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get profile: %w", err)
	}
	var p cachedProfile
	if err := json.Unmarshal(data, &p); err != nil {
		// entrada ilegível conta como ausente
		return nil, false, nil
	}
	return &entity.User{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Role:      p.Role,
		Status:    p.Status,
		CNPJ:      p.CNPJ,
		Phone:     p.Phone,
		ClientID:  p.ClientID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, true, nil
}

func (c *ProfileCache) Set(ctx context.Context, u *entity.User, ttl time.Duration) error {
	data, err := json.Marshal(cachedProfile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CNPJ:      u.CNPJ,
		Phone:     u.Phone,
		ClientID:  u.ClientID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := c.client.Set(ctx, profileKeyPrefix+u.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

func (c *ProfileCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, profileKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// Invalidate descarta o perfil em cache; falhas só atrasam a atualização até o TTL.
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) {
	_ = c.Delete(ctx, userID)
}
