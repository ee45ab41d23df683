package order

import (
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/shopspring/decimal"
)

// Nomes usados no histórico quando o autor não tem nome nem e-mail.
const (
	FallbackStaffActor    = "Admin"
	FallbackCustomerActor = "Cliente"
)

// CheckoutInput dados para transformar um carrinho em pedido.
type CheckoutInput struct {
	OrderID      string
	User         *entity.User
	Cart         *cart.Cart
	FreightRaw   string // formato brasileiro, ex. "15,50"
	CEP          string
	Observations string
	Now          time.Time
}

// NewFromCart monta o pedido com status novo e uma entrada de histórico.
// Falha com ErrEmptyCart sem itens e ErrUnauthorized sem usuário.
func NewFromCart(in CheckoutInput) (*entity.Order, error) {
	if in.User == nil {
		return nil, domain.ErrUnauthorized
	}
	if in.Cart == nil || in.Cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	cartItems := in.Cart.Items()
	items := make([]entity.OrderItem, 0, len(cartItems))
	for _, it := range cartItems {
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			Total:     it.LineTotal(),
		})
	}
	subtotal := ItemsSubtotal(items)
	freight := br.ParseDecimal(in.FreightRaw)

	o := &entity.Order{
		ID:           in.OrderID,
		UserID:       in.User.ID,
		ClientID:     in.User.ClientID,
		ClientName:   in.User.Name,
		Items:        items,
		Subtotal:     decimal.NewNullDecimal(subtotal),
		Freight:      freight,
		Total:        subtotal.Add(freight),
		Status:       entity.OrderNovo,
		CEP:          br.NormalizeCEP(in.CEP),
		Observations: in.Observations,
		CreatedAt:    in.Now,
		UpdatedAt:    in.Now,
	}
	appendHistory(o, entity.HistoryEntry{
		Status:    entity.OrderNovo,
		ChangedBy: in.User.DisplayName(FallbackCustomerActor),
		Timestamp: in.Now,
	})
	return o, nil
}

// ChangeStatus aplica a transição e registra no histórico.
// Mesmo status: changed=false, sem erro e sem histórico.
func ChangeStatus(o *entity.Order, to entity.OrderStatus, actor string, p Policy, now time.Time) (changed bool, err error) {
	if !to.IsValid() {
		return false, domain.NewValidationError("status", fmt.Sprintf("status desconhecido: %q", to))
	}
	if o.Status == to {
		return false, nil
	}
	if !CanTransition(p, o.Status, to) {
		return false, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, o.Status, to)
	}
	o.Status = to
	o.UpdatedAt = now
	appendHistory(o, entity.HistoryEntry{Status: to, ChangedBy: actor, Timestamp: now})
	return true, nil
}

// ChangeFreight grava o novo frete (texto no formato brasileiro), recalcula o
// total e registra "Frete alterado para R$ X,XX" no histórico.
func ChangeFreight(o *entity.Order, raw string, actor string, now time.Time) decimal.Decimal {
	freight := br.ParseDecimal(raw)
	o.Freight = freight
	o.Total = ComputeTotals(o).Total
	o.UpdatedAt = now
	appendHistory(o, entity.HistoryEntry{
		Status:    o.Status,
		Note:      "Frete alterado para " + br.FormatBRL(freight),
		ChangedBy: actor,
		Timestamp: now,
	})
	return freight
}

// DisplayHistory devolve o histórico do mais recente para o mais antigo, sem alterar o pedido.
func DisplayHistory(history []entity.HistoryEntry) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, len(history))
	for i, h := range history {
		out[len(history)-1-i] = h
	}
	return out
}

func appendHistory(o *entity.Order, e entity.HistoryEntry) {
	o.History = append(o.History, e)
}
