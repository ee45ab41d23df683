package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de produto.
const (
	ProductStatusAtivo   = "ativo"
	ProductStatusInativo = "inativo"
)

// Variation variação de um produto (cor, tamanho...).
type Variation struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// Product item do catálogo. MinQty e SaleMultiple são regras de venda
// conferidas ao adicionar ao carrinho.
type Product struct {
	ID           string
	Name         string
	CategoryID   string
	Subcategory  string
	Description  string
	Images       []string // URLs públicas
	MinQty       int
	SaleMultiple int
	BasePrice    decimal.Decimal
	Variations   []Variation
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MainImage devolve a primeira imagem ou "".
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// IsActive indica se aparece no catálogo.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusAtivo
}
