package repository

import (
	"context"
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// OrderFilter filtros de listagem de pedidos; zero-values não filtram.
type OrderFilter struct {
	UserID   string
	Statuses []entity.OrderStatus
	Since    time.Time // created_at >= Since
	Limit    int
}

// OrderRepository porta de persistência de Order. Listagens vêm por created_at desc.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetByIDForUpdate bloqueia a linha até o fim da transação corrente.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	// Update grava status, frete, totais e histórico.
	Update(ctx context.Context, order *entity.Order) error
}
