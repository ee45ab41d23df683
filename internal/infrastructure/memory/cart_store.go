package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

var _ repository.CartStore = (*CartStore)(nil)

// CartStore guarda o carrinho serializado, como o store do Redis.
type CartStore struct {
	kv  *kv
	log *logger.Logger
}

func NewCartStore(log *logger.Logger) *CartStore {
	return &CartStore{kv: newKV(), log: log.Component("cart_store")}
}

func (s *CartStore) Load(_ context.Context, userID string) (*cart.Cart, error) {
	raw, ok := s.kv.get(userID)
	if !ok {
		return cart.New(), nil
	}
	c, err := cart.Decode([]byte(raw))
	if errors.Is(err, cart.ErrUnsupportedVersion) {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("carrinho persistido descartado")
		return cart.New(), nil
	}
	return c, nil
}

func (s *CartStore) Save(_ context.Context, userID string, c *cart.Cart) error {
	data, err := cart.Encode(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	s.kv.set(userID, string(data), 0)
	return nil
}

func (s *CartStore) Delete(_ context.Context, userID string) error {
	s.kv.del(userID)
	return nil
}
