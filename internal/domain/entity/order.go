package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus status do pedido.
type OrderStatus string

const (
	OrderNovo                OrderStatus = "novo"
	OrderAguardandoAprovacao OrderStatus = "aguardando_aprovacao"
	OrderAprovado            OrderStatus = "aprovado"
	OrderEmSeparacao         OrderStatus = "em_separacao"
	OrderFaturado            OrderStatus = "faturado"
	OrderEnviado             OrderStatus = "enviado"
	OrderEntregue            OrderStatus = "entregue"
	OrderCancelado           OrderStatus = "cancelado"
)

// OrderFlow ordem natural do fluxo, sem o cancelado. É também a ordem das colunas do kanban.
var OrderFlow = []OrderStatus{
	OrderNovo,
	OrderAguardandoAprovacao,
	OrderAprovado,
	OrderEmSeparacao,
	OrderFaturado,
	OrderEnviado,
	OrderEntregue,
}

type statusLabels struct {
	label  string // seletor do admin
	client string // área do cliente
	board  string // coluna do kanban
}

var orderStatusLabels = map[OrderStatus]statusLabels{
	OrderNovo:                {"Novo", "Em Análise", "Novo"},
	OrderAguardandoAprovacao: {"Aguardando Aprovação", "Aguardando", "Aprovação"},
	OrderAprovado:            {"Aprovado", "Aprovado", "Aprovado"},
	OrderEmSeparacao:         {"Em Separação", "Em Separação", "Separação"},
	OrderFaturado:            {"Faturado", "Faturado", "Faturado"},
	OrderEnviado:             {"Enviado", "Enviado", "Enviado"},
	OrderEntregue:            {"Entregue", "Entregue", "Entregue"},
	OrderCancelado:           {"Cancelado", "Cancelado", "Cancelado"},
}

// ParseOrderStatus converte texto em OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.TrimSpace(s))
	return st, st.IsValid()
}

// IsValid indica se o status é conhecido.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// IsTerminal entregue e cancelado não saem mais do lugar.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderEntregue || s == OrderCancelado
}

// Step posição no fluxo (0 = novo); -1 para cancelado ou desconhecido.
func (s OrderStatus) Step() int {
	for i, st := range OrderFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// Label nome exibido no back-office.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l.label
	}
	return string(s)
}

// ClientLabel nome exibido para o cliente.
func (s OrderStatus) ClientLabel() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l.client
	}
	return string(s)
}

// BoardTitle título da coluna do kanban.
func (s OrderStatus) BoardTitle() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l.board
	}
	return string(s)
}

// OrderItem linha do pedido. Total pode vir zerado em pedidos antigos.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// HistoryEntry registro imutável de uma alteração do pedido.
// Note descreve alterações que não são de status (ex.: frete).
type HistoryEntry struct {
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	ChangedBy string      `json:"changedBy"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order pedido criado no checkout a partir do carrinho.
// Subtotal é opcional: quando ausente é derivado dos itens.
type Order struct {
	ID           string
	UserID       string
	ClientID     string
	ClientName   string
	Items        []OrderItem
	Subtotal     decimal.NullDecimal
	Freight      decimal.Decimal
	Total        decimal.Decimal
	Status       OrderStatus
	History      []HistoryEntry
	CEP          string
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Number identificador curto exibido nas telas ("#1A2B3C4D").
func (o *Order) Number() string {
	id := strings.ReplaceAll(o.ID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
