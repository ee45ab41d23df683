package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/analytics"
)

// DashboardHandler painel e relatórios do back-office.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	reports   *analytics.ReportUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, reports *analytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, reports: reports}
}

// GetSummary godoc
// @Summary      Resumo do painel
// @Description  Cadastros pendentes, pedidos em aberto, faturamento do mês e últimos pedidos.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.dashboard.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Relatório de faturamento
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        days  query  int  false  "7 | 30 | 90 | 365 (padrão 30)"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/reports [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	out, err := h.reports.Generate(c.UserContext(), c.QueryInt("days", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
