// Package cart modela o carrinho do cliente: uma lista de linhas por produto
// com subtotal sempre derivado dos itens.
package cart

import "github.com/shopspring/decimal"

// Item linha do carrinho. Preço, nome, imagem e regras de venda são um
// retrato do produto no momento em que foi adicionado.
type Item struct {
	ProductID   string          `json:"productId"`
	VariationID string          `json:"variationId,omitempty"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	MinQty      int             `json:"minQty"`
	Multiple    int             `json:"multiple"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// LineTotal preço × quantidade.
func (it Item) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Cart carrinho de um usuário. O valor zero é um carrinho vazio utilizável.
// Não é seguro para uso concorrente; cada requisição carrega a sua cópia.
type Cart struct {
	items []Item
}

// New cria um carrinho com os itens informados (sem mesclar).
func New(items ...Item) *Cart {
	c := &Cart{}
	c.items = append(c.items, items...)
	return c
}

// Items devolve uma cópia das linhas.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len quantidade de linhas.
func (c *Cart) Len() int { return len(c.items) }

// IsEmpty indica carrinho sem linhas.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Find devolve a linha do produto.
func (c *Cart) Find(productID string) (Item, bool) {
	if i := c.index(productID); i >= 0 {
		return c.items[i], true
	}
	return Item{}, false
}

// AddItem soma a quantidade se o produto já estiver no carrinho; senão acrescenta a linha.
// Limites de quantidade não são conferidos aqui.
func (c *Cart) AddItem(it Item) {
	if i := c.index(it.ProductID); i >= 0 {
		c.items[i].Quantity += it.Quantity
		return
	}
	c.items = append(c.items, it)
}

// RemoveItem apaga a linha. Devolve false se o produto não estava no carrinho.
func (c *Cart) RemoveItem(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// UpdateQuantity sobrescreve a quantidade, sem limites. Quantidade 0 mantém a linha.
func (c *Cart) UpdateQuantity(productID string, qty int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.items[i].Quantity = qty
	return true
}

// Clear esvazia o carrinho.
func (c *Cart) Clear() {
	c.items = nil
}

// Subtotal Σ preço × quantidade, recalculado a cada leitura.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// TotalQuantity soma das quantidades (badge do carrinho).
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) index(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
