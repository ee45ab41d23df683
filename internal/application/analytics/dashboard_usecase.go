// Package analytics contém os indicadores do painel administrativo e os
// relatórios de faturamento.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const dashboardRecentOrders = 5 // pedidos no widget "últimos pedidos"

var (
	// pendingStatuses pedidos que ainda exigem ação da equipe.
	pendingStatuses = []entity.OrderStatus{
		entity.OrderNovo, entity.OrderAguardandoAprovacao, entity.OrderAprovado, entity.OrderEmSeparacao,
	}
	// invoicedStatuses pedidos que já contam como faturamento.
	invoicedStatuses = []entity.OrderStatus{entity.OrderFaturado, entity.OrderEnviado, entity.OrderEntregue}
)

// DashboardUseCase resumo do painel administrativo.
type DashboardUseCase struct {
	users  repository.UserRepository
	orders repository.OrderRepository
	now    func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(users repository.UserRepository, orders repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{users: users, orders: orders, now: time.Now}
}

// GetSummary monta o painel com quatro consultas em paralelo:
//  1. usuários aguardando aprovação
//  2. pedidos pendentes
//  3. pedidos faturados no mês corrente (quantidade, receita, ticket médio)
//  4. últimos pedidos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int
		err error
	}
	type ordersResult struct {
		orders []*entity.Order
		err    error
	}

	usersCh := make(chan countResult, 1)
	pendingCh := make(chan ordersResult, 1)
	monthCh := make(chan ordersResult, 1)
	recentCh := make(chan ordersResult, 1)

	go func() {
		n, err := uc.users.CountByStatus(ctx, entity.StatusAguardandoAprovacao)
		usersCh <- countResult{n, err}
	}()
	go func() {
		list, err := uc.orders.List(ctx, repository.OrderFilter{Statuses: pendingStatuses})
		pendingCh <- ordersResult{list, err}
	}()
	go func() {
		list, err := uc.orders.List(ctx, repository.OrderFilter{Statuses: invoicedStatuses, Since: monthStart})
		monthCh <- ordersResult{list, err}
	}()
	go func() {
		list, err := uc.orders.List(ctx, repository.OrderFilter{Limit: dashboardRecentOrders})
		recentCh <- ordersResult{list, err}
	}()

	users := <-usersCh
	pending := <-pendingCh
	month := <-monthCh
	recent := <-recentCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuários pendentes: %w", users.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos pendentes: %w", pending.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: faturamento do mês: %w", month.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: últimos pedidos: %w", recent.err)
	}

	revenue := sumTotals(month.orders)
	return &dto.DashboardResponse{
		PendingUsers:  users.n,
		PendingOrders: len(pending.orders),
		InvoicedCount: len(month.orders),
		Revenue:       revenue.Round(2),
		TicketMedio:   average(revenue, len(month.orders)),
		RecentOrders:  dto.OrdersFromEntities(recent.orders),
		MonthLabel:    monthLabel(now),
	}, nil
}

// sumTotals Σ dos totais derivados (subtotal + frete).
func sumTotals(list []*entity.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range list {
		sum = sum.Add(order.ComputeTotals(o).Total)
	}
	return sum
}

func average(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// monthLabel rótulo legível do mês, ex.: "Outubro 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
