package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariationDTO variação de produto.
type VariationDTO struct {
	Name string `json:"name" validate:"required"`
	SKU  string `json:"sku"`
}

// ProductRequest criação e edição. Nome e categoria são obrigatórios; o restante tem default.
type ProductRequest struct {
	Name         string          `json:"name"`
	CategoryID   string          `json:"categoryId"`
	Subcategory  string          `json:"subcategory"`
	Description  string          `json:"description"`
	Images       []string        `json:"images"`
	MinQty       int             `json:"minQty" validate:"gte=0"`
	SaleMultiple int             `json:"saleMultiple" validate:"gte=0"`
	BasePrice    decimal.Decimal `json:"basePrice" validate:"gte=0"`
	Variations   []VariationDTO  `json:"variations" validate:"dive"`
	Status       string          `json:"status" validate:"omitempty,oneof=ativo inativo"`
}

// ProductResponse produto com o nome da categoria resolvido.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Subcategory  string          `json:"subcategory"`
	Description  string          `json:"description"`
	Images       []string        `json:"images"`
	MainImage    string          `json:"mainImage"`
	MinQty       int             `json:"minQty"`
	SaleMultiple int             `json:"saleMultiple"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Variations   []VariationDTO  `json:"variations"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CatalogQuery filtros do catálogo do cliente.
type CatalogQuery struct {
	CategoryID string `query:"categoryId"`
	Search     string `query:"search"`
}

// UploadResponse URLs públicas das imagens enviadas.
type UploadResponse struct {
	URLs []string `json:"urls"`
}
