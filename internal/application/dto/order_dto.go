package dto

import (
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CheckoutRequest dados do fechamento. Freight aceita formato brasileiro ("15,50").
type CheckoutRequest struct {
	Freight      string `json:"freight"`
	CEP          string `json:"cep"`
	Observations string `json:"observations"`
}

// OrderResponse pedido com totais derivados e histórico nas duas ordens.
type OrderResponse struct {
	ID                 string                `json:"id"`
	Number             string                `json:"number"`
	UserID             string                `json:"userId"`
	ClientID           string                `json:"clientId,omitempty"`
	ClientName         string                `json:"clientName"`
	Items              []entity.OrderItem    `json:"items"`
	Subtotal           decimal.Decimal       `json:"subtotal"`
	Freight            decimal.Decimal       `json:"freight"`
	Total              decimal.Decimal       `json:"total"`
	Status             entity.OrderStatus    `json:"status"`
	StatusLabel        string                `json:"statusLabel"`
	ClientStatusLabel  string                `json:"clientStatusLabel"`
	History            []entity.HistoryEntry `json:"history"`
	HistoryDisplay     []entity.HistoryEntry `json:"historyDisplay"`
	AllowedTransitions []entity.OrderStatus  `json:"allowedTransitions,omitempty"`
	CEP                string                `json:"cep"`
	Observations       string                `json:"observations"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

// AdminOrderQuery filtros da lista do back-office.
type AdminOrderQuery struct {
	Filter string `query:"filter"` // pending | faturado | all
	Search string `query:"search"`
}

// BoardColumn coluna do kanban.
type BoardColumn struct {
	Status entity.OrderStatus `json:"status"`
	Title  string             `json:"title"`
	Orders []OrderResponse    `json:"orders"`
}

// BoardMove movimento pedido pelo kanban.
type BoardMove struct {
	OrderID string `json:"orderId" validate:"required"`
	To      string `json:"to" validate:"required"`
}

// BoardMovesRequest lote de movimentos.
type BoardMovesRequest struct {
	Moves []BoardMove `json:"moves" validate:"required,min=1,dive"`
}

// Estados de um movimento do kanban.
const (
	MoveCommitted = "committed"
	MoveFailed    = "failed"
)

// BoardMoveResult resultado por item; From permite ao front-end desfazer o movimento otimista.
type BoardMoveResult struct {
	OrderID string             `json:"orderId"`
	From    entity.OrderStatus `json:"from,omitempty"`
	To      string             `json:"to"`
	State   string             `json:"state"`
	Error   string             `json:"error,omitempty"`
}

// UpdateOrderStatusRequest troca de status pelo back-office.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateFreightRequest edição de frete (formato brasileiro).
type UpdateFreightRequest struct {
	Freight string `json:"freight"`
}
