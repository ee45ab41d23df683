package repository

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/cart"
)

// CartStore persistência do carrinho por usuário (último a gravar vence).
type CartStore interface {
	// Load devolve carrinho vazio quando não há nada salvo.
	Load(ctx context.Context, userID string) (*cart.Cart, error)
	Save(ctx context.Context, userID string, c *cart.Cart) error
	Delete(ctx context.Context, userID string) error
}
