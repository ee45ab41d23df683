package repository

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// ProductFilter filtros de listagem; campos vazios não filtram.
type ProductFilter struct {
	Status     string
	CategoryID string
}

// ProductRepository porta de persistência de Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
