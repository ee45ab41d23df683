package repository

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// UserRepository porta de persistência de User.
// Get* devolvem (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List filtra por status quando status != "".
	List(ctx context.Context, status string) ([]*entity.User, error)
	// ListByClientID usuários vinculados ao cliente.
	ListByClientID(ctx context.Context, clientID string) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	CountByStatus(ctx context.Context, status string) (int, error)
}
