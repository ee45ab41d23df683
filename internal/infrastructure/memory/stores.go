package memory

import (
	"context"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

var (
	_ ports.IdempotencyStore   = (*IdempotencyStore)(nil)
	_ ports.TokenBlacklist     = (*TokenBlacklist)(nil)
	_ ports.ResetTokenStore    = (*ResetTokenStore)(nil)
	_ ports.ProfileCache       = (*ProfileCache)(nil)
	_ ports.SessionInvalidator = (*ProfileCache)(nil)
)

const pendingMarker = "\x00pending"

// IdempotencyStore chaves de idempotência do checkout.
type IdempotencyStore struct{ kv *kv }

func NewIdempotencyStore() *IdempotencyStore { return &IdempotencyStore{kv: newKV()} }

func (s *IdempotencyStore) Reserve(_ context.Context, key string, ttl time.Duration) (bool, error) {
	return s.kv.setNX(key, pendingMarker, ttl), nil
}

func (s *IdempotencyStore) Result(_ context.Context, key string) (string, bool, error) {
	v, ok := s.kv.get(key)
	if !ok || v == pendingMarker {
		return "", false, nil
	}
	return v, true, nil
}

func (s *IdempotencyStore) Complete(_ context.Context, key, value string, ttl time.Duration) error {
	s.kv.set(key, value, ttl)
	return nil
}

func (s *IdempotencyStore) Release(_ context.Context, key string) error {
	s.kv.del(key)
	return nil
}

// TokenBlacklist jti revogados.
type TokenBlacklist struct{ kv *kv }

func NewTokenBlacklist() *TokenBlacklist { return &TokenBlacklist{kv: newKV()} }

func (b *TokenBlacklist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl > 0 {
		b.kv.set(tokenID, "1", ttl)
	}
	return nil
}

func (b *TokenBlacklist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := b.kv.get(tokenID)
	return ok, nil
}

// ResetTokenStore tokens de redefinição de senha, de uso único.
type ResetTokenStore struct{ kv *kv }

func NewResetTokenStore() *ResetTokenStore { return &ResetTokenStore{kv: newKV()} }

func (s *ResetTokenStore) Save(_ context.Context, token, userID string, ttl time.Duration) error {
	s.kv.set(token, userID, ttl)
	return nil
}

func (s *ResetTokenStore) Consume(_ context.Context, token string) (string, bool, error) {
	uid, ok := s.kv.getDel(token)
	return uid, ok, nil
}

// ProfileCache perfis da sessão. Guarda cópias sem o hash de senha.
type ProfileCache struct {
	kv       *kv
	profiles map[string]entity.User
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{kv: newKV(), profiles: make(map[string]entity.User)}
}

func (c *ProfileCache) Get(_ context.Context, userID string) (*entity.User, bool, error) {
	c.kv.mu.Lock()
	defer c.kv.mu.Unlock()
	if _, ok := c.kv.getLocked(userID); !ok {
		delete(c.profiles, userID)
		return nil, false, nil
	}
	u := c.profiles[userID]
	return &u, true, nil
}

func (c *ProfileCache) Set(_ context.Context, u *entity.User, ttl time.Duration) error {
	c.kv.mu.Lock()
	defer c.kv.mu.Unlock()
	cp := *u
	cp.PasswordHash = ""
	c.profiles[u.ID] = cp
	c.kv.entries[u.ID] = entry{value: u.ID, expiresAt: c.kv.deadline(ttl)}
	return nil
}

func (c *ProfileCache) Delete(_ context.Context, userID string) error {
	c.kv.mu.Lock()
	defer c.kv.mu.Unlock()
	delete(c.kv.entries, userID)
	delete(c.profiles, userID)
	return nil
}

func (c *ProfileCache) Invalidate(ctx context.Context, userID string) {
	_ = c.Delete(ctx, userID)
}
