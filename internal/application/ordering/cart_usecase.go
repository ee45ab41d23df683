// Package ordering reúne os casos de uso do fluxo de compra: carrinho,
// checkout e o ciclo de vida do pedido no back-office.
package ordering

import (
	"context"
	"fmt"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// CartUseCase operações do carrinho do usuário autenticado.
type CartUseCase struct {
	carts    repository.CartStore
	products repository.ProductRepository
	log      *logger.Logger
}

// NewCartUseCase constrói o caso de uso.
func NewCartUseCase(carts repository.CartStore, products repository.ProductRepository, log *logger.Logger) *CartUseCase {
	return &CartUseCase{carts: carts, products: products, log: log.Component("cart")}
}

// Get devolve o carrinho salvo (vazio se não houver).
func (uc *CartUseCase) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	c, err := uc.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := dto.CartFromDomain(c)
	return &out, nil
}

// AddItem confere as regras de venda do produto e soma ao carrinho.
// Nome, preço, imagem e regras ficam congelados no momento da inclusão.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !p.IsActive() {
		return nil, domain.NewValidationError("productId", "Este produto não está disponível.")
	}
	if in.Quantity < 1 {
		return nil, domain.NewValidationError("quantity", "A quantidade deve ser maior que zero.")
	}
	if p.MinQty > 0 && in.Quantity < p.MinQty {
		return nil, domain.NewValidationError("quantity", fmt.Sprintf("Quantidade mínima é %d", p.MinQty))
	}
	if p.SaleMultiple > 1 && in.Quantity%p.SaleMultiple != 0 {
		return nil, domain.NewValidationError("quantity", fmt.Sprintf("Este produto é vendido em múltiplos de %d", p.SaleMultiple))
	}

	c, err := uc.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.AddItem(cart.Item{
		ProductID:   p.ID,
		VariationID: in.VariationID,
		Name:        p.Name,
		Price:       p.BasePrice,
		Quantity:    in.Quantity,
		MinQty:      p.MinQty,
		Multiple:    p.SaleMultiple,
		ImageURL:    p.MainImage(),
	})
	return uc.save(ctx, userID, c)
}

// UpdateItem sobrescreve a quantidade da linha. ErrNotFound se o produto não está no carrinho.
func (uc *CartUseCase) UpdateItem(ctx context.Context, userID, productID string, qty int) (*dto.CartResponse, error) {
	if qty < 0 {
		return nil, domain.NewValidationError("quantity", "A quantidade não pode ser negativa.")
	}
	c, err := uc.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !c.UpdateQuantity(productID, qty) {
		return nil, domain.ErrNotFound
	}
	return uc.save(ctx, userID, c)
}

// RemoveItem apaga a linha; produto ausente não é erro.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*dto.CartResponse, error) {
	c, err := uc.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !c.RemoveItem(productID) {
		out := dto.CartFromDomain(c)
		return &out, nil
	}
	return uc.save(ctx, userID, c)
}

// Clear esvazia o carrinho.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.carts.Delete(ctx, userID)
}

func (uc *CartUseCase) save(ctx context.Context, userID string, c *cart.Cart) (*dto.CartResponse, error) {
	if err := uc.carts.Save(ctx, userID, c); err != nil {
		return nil, fmt.Errorf("salvar carrinho: %w", err)
	}
	out := dto.CartFromDomain(c)
	return &out, nil
}
