package cart

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, price string, qty int) Item {
	return Item{ProductID: id, Name: "Produto " + id, Price: decimal.RequireFromString(price), Quantity: qty, MinQty: 1, Multiple: 1}
}

func TestAddItem_MesclaMesmoProduto(t *testing.T) {
	c := New()
	c.AddItem(item("p1", "10.00", 2))
	c.AddItem(item("p2", "5.50", 1))
	c.AddItem(item("p1", "10.00", 3))

	require.Equal(t, 2, c.Len())
	got, ok := c.Find("p1")
	require.True(t, ok)
	assert.Equal(t, 5, got.Quantity)
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("55.50")))
}

// Para qualquer sequência de adições, a quantidade de cada produto é a soma do
// que foi adicionado e o subtotal é Σ preço × quantidade a cada observação.
func TestAddItem_PropriedadeSomaESubtotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	prices := map[string]decimal.Decimal{
		"a": decimal.RequireFromString("1.10"),
		"b": decimal.RequireFromString("20.00"),
		"c": decimal.RequireFromString("3.33"),
		"d": decimal.RequireFromString("0.01"),
	}
	ids := []string{"a", "b", "c", "d"}

	for round := 0; round < 50; round++ {
		c := New()
		want := map[string]int{}
		for step := 0; step < 30; step++ {
			id := ids[rng.Intn(len(ids))]
			qty := rng.Intn(12) + 1
			c.AddItem(Item{ProductID: id, Price: prices[id], Quantity: qty})
			want[id] += qty

			expected := decimal.Zero
			for pid, q := range want {
				got, ok := c.Find(pid)
				require.True(t, ok)
				require.Equal(t, q, got.Quantity)
				expected = expected.Add(prices[pid].Mul(decimal.NewFromInt(int64(q))))
			}
			require.True(t, expected.Equal(c.Subtotal()), "subtotal %s, esperado %s", c.Subtotal(), expected)
			require.Equal(t, len(want), c.Len())
		}
	}
}

func TestUpdateQuantity_ZeroMantemLinha(t *testing.T) {
	c := New(item("p1", "10.00", 4))

	assert.True(t, c.UpdateQuantity("p1", 0))
	got, ok := c.Find("p1")
	require.True(t, ok, "a linha continua no carrinho com quantidade 0")
	assert.Equal(t, 0, got.Quantity)
	assert.True(t, c.Subtotal().IsZero())
	assert.False(t, c.UpdateQuantity("inexistente", 2))
}

func TestUpdateQuantity_SemLimites(t *testing.T) {
	c := New(Item{ProductID: "p1", Price: decimal.NewFromInt(2), Quantity: 12, MinQty: 12, Multiple: 6})
	c.UpdateQuantity("p1", 7)
	got, _ := c.Find("p1")
	assert.Equal(t, 7, got.Quantity)
}

func TestRemoveItemEClear(t *testing.T) {
	c := New(item("p1", "1", 1), item("p2", "2", 1), item("p3", "3", 1))

	assert.True(t, c.RemoveItem("p2"))
	assert.False(t, c.RemoveItem("p2"))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(4)))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal().IsZero())
}

func TestItems_DevolveCopia(t *testing.T) {
	c := New(item("p1", "1", 1))
	items := c.Items()
	items[0].Quantity = 99
	got, _ := c.Find("p1")
	assert.Equal(t, 1, got.Quantity)
}

func TestValorZeroUtilizavel(t *testing.T) {
	var c Cart
	c.AddItem(item("p1", "2.50", 2))
	assert.Equal(t, 2, c.TotalQuantity())
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(5)))
}
