package repository

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// CategoryRepository porta de persistência de Category (com subcategorias embutidas).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
