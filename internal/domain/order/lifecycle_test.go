package order

import (
	"testing"
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func testUser() *entity.User {
	return &entity.User{ID: "u-1", Name: "Mercado Bom Preço", Email: "compras@bompreco.com.br", ClientID: "c-1", Role: entity.RoleCliente, Status: entity.StatusAtivo}
}

// Carrinho com um item (100,00 × 3) e frete "15,50".
func TestNewFromCart_CenarioExemplo(t *testing.T) {
	c := cart.New(cart.Item{ProductID: "p-1", Name: "Caixa de papelão", Price: decimal.RequireFromString("100.00"), Quantity: 3})

	o, err := NewFromCart(CheckoutInput{OrderID: "o-1", User: testUser(), Cart: c, FreightRaw: "15,50", CEP: "01310-100", Now: now})
	require.NoError(t, err)

	assert.True(t, o.Subtotal.Valid)
	assert.True(t, o.Subtotal.Decimal.Equal(decimal.NewFromInt(300)))
	assert.True(t, o.Freight.Equal(decimal.RequireFromString("15.5")))
	assert.True(t, o.Total.Equal(decimal.RequireFromString("315.5")))
	assert.Equal(t, entity.OrderNovo, o.Status)
	assert.Equal(t, "01310100", o.CEP)
	assert.Equal(t, "c-1", o.ClientID)
	assert.Equal(t, "Mercado Bom Preço", o.ClientName)

	require.Len(t, o.History, 1)
	assert.Equal(t, entity.OrderNovo, o.History[0].Status)
	assert.Equal(t, "Mercado Bom Preço", o.History[0].ChangedBy)
	assert.Equal(t, now, o.History[0].Timestamp)

	require.Len(t, o.Items, 1)
	assert.True(t, o.Items[0].Total.Equal(decimal.NewFromInt(300)))
}

func TestNewFromCart_Falhas(t *testing.T) {
	_, err := NewFromCart(CheckoutInput{User: testUser(), Cart: cart.New(), Now: now})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = NewFromCart(CheckoutInput{User: nil, Cart: cart.New(cart.Item{ProductID: "p", Quantity: 1}), Now: now})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewFromCart_AutorSemNome(t *testing.T) {
	u := &entity.User{ID: "u-2"}
	o, err := NewFromCart(CheckoutInput{User: u, Cart: cart.New(cart.Item{ProductID: "p", Price: decimal.NewFromInt(1), Quantity: 1}), Now: now})
	require.NoError(t, err)
	assert.Equal(t, FallbackCustomerActor, o.History[0].ChangedBy)
}

func TestChangeStatus_AcrescentaUmaEntrada(t *testing.T) {
	o := &entity.Order{Status: entity.OrderNovo, History: []entity.HistoryEntry{{Status: entity.OrderNovo, ChangedBy: "Cliente", Timestamp: now}}}
	before := append([]entity.HistoryEntry{}, o.History...)

	changed, err := ChangeStatus(o, entity.OrderAprovado, "Ana", PolicyStrict, now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, entity.OrderAprovado, o.Status)
	require.Len(t, o.History, len(before)+1)
	assert.Equal(t, before, o.History[:len(before)], "entradas anteriores não mudam")
	assert.Equal(t, entity.HistoryEntry{Status: entity.OrderAprovado, ChangedBy: "Ana", Timestamp: now.Add(time.Hour)}, o.History[1])
}

func TestChangeStatus_MesmoStatusNaoRegistra(t *testing.T) {
	o := &entity.Order{Status: entity.OrderAprovado}
	changed, err := ChangeStatus(o, entity.OrderAprovado, "Ana", PolicyStrict, now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, o.History)
}

func TestChangeStatus_TransicaoInvalida(t *testing.T) {
	o := &entity.Order{Status: entity.OrderEntregue}
	_, err := ChangeStatus(o, entity.OrderNovo, "Ana", PolicyStrict, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.OrderEntregue, o.Status)
	assert.Empty(t, o.History)

	_, err = ChangeStatus(o, entity.OrderStatus("arquivado"), "Ana", PolicyFree, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangeFreight_RecalculaTotalERegistra(t *testing.T) {
	o := &entity.Order{
		Status: entity.OrderAprovado,
		Items: []entity.OrderItem{
			{ProductID: "p", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		},
		Freight: decimal.NewFromInt(10),
		Total:   decimal.NewFromInt(110),
	}

	freight := ChangeFreight(o, "15,50", "Ana", now)

	assert.True(t, freight.Equal(decimal.RequireFromString("15.5")))
	assert.True(t, o.Total.Equal(decimal.RequireFromString("115.5")))
	require.Len(t, o.History, 1)
	assert.Equal(t, "Frete alterado para R$ 15,50", o.History[0].Note)
	assert.Equal(t, entity.OrderAprovado, o.History[0].Status)
}

func TestComputeTotals(t *testing.T) {
	items := []entity.OrderItem{
		{Quantity: 3, UnitPrice: decimal.NewFromInt(100)},
		{Quantity: 2, UnitPrice: decimal.NewFromInt(5), Total: decimal.NewFromInt(9)},
	}

	derived := ComputeTotals(&entity.Order{Items: items, Freight: decimal.RequireFromString("15.5")})
	assert.True(t, derived.Subtotal.Equal(decimal.NewFromInt(309)))
	assert.True(t, derived.Total.Equal(decimal.RequireFromString("324.5")))

	stored := ComputeTotals(&entity.Order{Items: items, Subtotal: decimal.NewNullDecimal(decimal.NewFromInt(250)), Freight: decimal.NewFromInt(10), Total: decimal.NewFromInt(999)})
	assert.True(t, stored.Subtotal.Equal(decimal.NewFromInt(250)))
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(260)), "total sempre é subtotal + frete")
}

func TestDisplayHistory(t *testing.T) {
	h := []entity.HistoryEntry{{Status: entity.OrderNovo}, {Status: entity.OrderAprovado}, {Status: entity.OrderFaturado}}
	out := DisplayHistory(h)
	assert.Equal(t, entity.OrderFaturado, out[0].Status)
	assert.Equal(t, entity.OrderNovo, out[2].Status)
	assert.Equal(t, entity.OrderNovo, h[0].Status, "original intacto")
}
