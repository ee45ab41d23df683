package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderPDF(t *testing.T) {
	now := time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC)
	o := &entity.Order{
		ID:         "9f8e7d6c-1111-2222-3333-444455556666",
		ClientName: "Loja Centro",
		Items: []entity.OrderItem{
			{ProductID: "p1", Name: "Camiseta básica", Quantity: 3, UnitPrice: decimal.NewFromInt(100)},
		},
		Freight:      decimal.RequireFromString("15.50"),
		Status:       entity.OrderAprovado,
		CEP:          "01001000",
		Observations: "Entregar pela manhã",
		History: []entity.HistoryEntry{
			{Status: entity.OrderNovo, ChangedBy: "Loja Centro", Timestamp: now},
			{Status: entity.OrderAprovado, ChangedBy: "Admin", Timestamp: now.Add(time.Hour)},
		},
		CreatedAt: now,
	}
	client := &entity.Client{RazaoSocial: "Loja Centro LTDA", CNPJ: "11222333000181", Address: "Rua A, 1", City: "São Paulo", UF: "SP"}

	for name, g := range map[string]*MarotoPDFGenerator{
		"com qr": NewMarotoPDFGenerator("Portal B2B", "https://portal.exemplo.com/"),
		"sem qr": NewMarotoPDFGenerator("", ""),
	} {
		t.Run(name, func(t *testing.T) {
			out, err := g.GenerateOrderPDF(context.Background(), o, client)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
		})
	}

	out, err := NewMarotoPDFGenerator("Portal", "").GenerateOrderPDF(context.Background(), o, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
