package ports

import (
	"context"
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// IdempotencyStore reserva chaves de idempotência e guarda o resultado associado.
type IdempotencyStore interface {
	// Reserve devolve true se a chave era nova e ficou reservada por ttl.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Result devolve o valor gravado por Complete; done=false enquanto só reservada.
	Result(ctx context.Context, key string) (value string, done bool, err error)
	Complete(ctx context.Context, key, value string, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// TokenBlacklist tokens revogados (logout) até a expiração natural.
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ProfileCache cache de perfis para a resolução de sessão.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*entity.User, bool, error)
	Set(ctx context.Context, user *entity.User, ttl time.Duration) error
	Delete(ctx context.Context, userID string) error
}

// ResetTokenStore tokens de redefinição de senha, de uso único.
type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume devolve o userID e apaga o token; ok=false se inexistente ou expirado.
	Consume(ctx context.Context, token string) (userID string, ok bool, err error)
}

// SessionInvalidator é chamado sempre que um usuário muda, para descartar o perfil em cache.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}
