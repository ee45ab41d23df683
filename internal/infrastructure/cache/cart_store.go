package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var _ repository.CartStore = (*CartStore)(nil)

// CartStore carrinho por usuário em b2b-cart-storage:<uid>, sem expiração.
type CartStore struct {
	client *redis.Client
	log    *logger.Logger
}

// NewCartStore constrói o store.
func NewCartStore(client *redis.Client, log *logger.Logger) *CartStore {
	return &CartStore{client: client, log: log.Component("cart_store")}
}

// Load devolve carrinho vazio quando não há nada salvo ou o conteúdo é ilegível.
// Conteúdo de uma versão mais nova é recusado para não ser sobrescrito.
func (s *CartStore) Load(ctx context.Context, userID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	c, err := cart.Decode(data)
	if errors.Is(err, cart.ErrUnsupportedVersion) {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("carrinho persistido descartado")
		return cart.New(), nil
	}
	return c, nil
}

// Save grava o carrinho inteiro; a última gravação vence.
func (s *CartStore) Save(ctx context.Context, userID string, c *cart.Cart) error {
	data, err := cart.Encode(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete esvazia o carrinho.
func (s *CartStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
