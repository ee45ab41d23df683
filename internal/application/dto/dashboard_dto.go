package dto

import "github.com/shopspring/decimal"

// DashboardResponse GET /api/admin/dashboard.
type DashboardResponse struct {
	PendingUsers  int             `json:"pendingUsers"`
	PendingOrders int             `json:"pendingOrders"`
	InvoicedCount int             `json:"invoicedCount"` // mês corrente
	Revenue       decimal.Decimal `json:"revenue"`       // mês corrente
	TicketMedio   decimal.Decimal `json:"ticketMedio"`
	RecentOrders  []OrderResponse `json:"recentOrders"`
	MonthLabel    string          `json:"monthLabel"`
}

// ReportResponse GET /api/admin/reports.
type ReportResponse struct {
	Days       int                 `json:"days"`
	Revenue    decimal.Decimal     `json:"revenue"`
	Count      int                 `json:"count"`
	Average    decimal.Decimal     `json:"average"`
	TopClients []ClientTotalResult `json:"topClients"`
}

// ClientTotalResult total faturado por cliente.
type ClientTotalResult struct {
	Name   string          `json:"name"`
	Total  decimal.Decimal `json:"total"`
	Orders int             `json:"orders"`
}
