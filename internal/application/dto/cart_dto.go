package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest adiciona um produto ao carrinho.
type AddCartItemRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	VariationID string `json:"variationId"`
	Quantity    int    `json:"quantity" validate:"gte=1"`
}

// UpdateCartItemRequest sobrescreve a quantidade da linha.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartItemResponse linha do carrinho com total calculado.
type CartItemResponse struct {
	ProductID   string          `json:"productId"`
	VariationID string          `json:"variationId,omitempty"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	MinQty      int             `json:"minQty"`
	Multiple    int             `json:"multiple"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// CartResponse carrinho com subtotal derivado.
type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TotalQuantity int                `json:"totalQuantity"`
}
