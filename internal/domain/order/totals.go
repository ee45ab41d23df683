package order

import (
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Totals valores derivados de um pedido.
type Totals struct {
	Subtotal decimal.Decimal
	Freight  decimal.Decimal
	Total    decimal.Decimal
}

// LineTotal total gravado na linha ou, se zerado, preço unitário × quantidade.
func LineTotal(it entity.OrderItem) decimal.Decimal {
	if !it.Total.IsZero() {
		return it.Total
	}
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// ItemsSubtotal Σ dos totais de linha.
func ItemsSubtotal(items []entity.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it))
	}
	return sum
}

// ComputeTotals é a única fonte dos totais de um pedido:
// subtotal gravado (quando presente) ou Σ linhas; total = subtotal + frete.
// O Total gravado no pedido é ignorado.
func ComputeTotals(o *entity.Order) Totals {
	subtotal := ItemsSubtotal(o.Items)
	if o.Subtotal.Valid {
		subtotal = o.Subtotal.Decimal
	}
	return Totals{
		Subtotal: subtotal,
		Freight:  o.Freight,
		Total:    subtotal.Add(o.Freight),
	}
}
