package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	// DefaultReportDays janela usada quando days não é informado.
	DefaultReportDays = 30
	reportTopClients  = 5
	unknownClientName = "Cliente Desconhecido"
)

var allowedReportDays = map[int]bool{7: true, 30: true, 90: true, 365: true}

// ReportUseCase relatório de faturamento por período.
type ReportUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders, now: time.Now}
}

// Generate considera só pedidos faturados criados nos últimos days dias.
// days=0 usa DefaultReportDays.
func (uc *ReportUseCase) Generate(ctx context.Context, days int) (*dto.ReportResponse, error) {
	if days == 0 {
		days = DefaultReportDays
	}
	if !allowedReportDays[days] {
		return nil, domain.NewValidationError("days", "Período inválido. Use 7, 30, 90 ou 365 dias.")
	}
	since := uc.now().AddDate(0, 0, -days)
	list, err := uc.orders.List(ctx, repository.OrderFilter{
		Statuses: []entity.OrderStatus{entity.OrderFaturado},
		Since:    since,
	})
	if err != nil {
		return nil, fmt.Errorf("relatório: %w", err)
	}

	revenue := sumTotals(list)
	return &dto.ReportResponse{
		Days:       days,
		Revenue:    revenue.Round(2),
		Count:      len(list),
		Average:    average(revenue, len(list)),
		TopClients: topClients(list, reportTopClients),
	}, nil
}

// topClients agrupa por nome do cliente e ordena pelo total, desempate pelo nome.
func topClients(list []*entity.Order, limit int) []dto.ClientTotalResult {
	byName := make(map[string]*dto.ClientTotalResult)
	for _, o := range list {
		name := strings.TrimSpace(o.ClientName)
		if name == "" {
			name = unknownClientName
		}
		r, ok := byName[name]
		if !ok {
			r = &dto.ClientTotalResult{Name: name, Total: decimal.Zero}
			byName[name] = r
		}
		r.Total = r.Total.Add(order.ComputeTotals(o).Total)
		r.Orders++
	}

	out := make([]dto.ClientTotalResult, 0, len(byName))
	for _, r := range byName {
		r.Total = r.Total.Round(2)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
