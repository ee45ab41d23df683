// Package pdf gera a via imprimível do pedido.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: Portal + Pedido #NÚMERO  │  Data + Status        │
//	│  CLIENTE: Razão social + CNPJ + contato + endereço           │
//	│  TABELA: Qtd | Produto | Preço unit. | Total                 │
//	│  TOTAIS: Subtotal / Frete / TOTAL                            │
//	│  HISTÓRICO: mais recente primeiro                            │
//	│  RODAPÉ: QR com o link do pedido                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/pkg/br"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 24, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.OrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa OrderPDFGenerator com Maroto v2.
type MarotoPDFGenerator struct {
	portalName string
	baseURL    string // link do QR; vazio omite o QR
}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator(portalName, baseURL string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{portalName: portalName, baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateOrderPDF gera o PDF e devolve os bytes. client pode ser nil.
func (g *MarotoPDFGenerator) GenerateOrderPDF(_ context.Context, o *entity.Order, client *entity.Client) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido #"+o.Number(), true).
		WithAuthor(g.portalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(o, client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(o.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order.ComputeTotals(o)))

	if o.Observations != "" {
		m.AddRows(sectionTitle("OBSERVAÇÕES"))
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(o.Observations, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(historyRows(o.History)...)

	if g.baseURL != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(g.qrRow(o))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(o *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(g.portalName, "Portal B2B"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedido #"+o.Number(), props.Text{Style: fontstyle.Bold, Size: 11, Top: 9}),
		),
		col.New(5).Add(
			text.New("Data: "+o.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Status: "+o.Status.Label(), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

func clientRow(o *entity.Order, c *entity.Client) core.Row {
	name := nonEmpty(o.ClientName, "Cliente")
	details := "—"
	if c != nil {
		name = nonEmpty(c.RazaoSocial, name)
		details = fmt.Sprintf("CNPJ: %s   |   E-mail: %s   |   Tel: %s",
			br.FormatCNPJ(c.CNPJ), nonEmpty(c.Email, "—"), nonEmpty(c.Phone, "—"))
	}
	address := "CEP de entrega: " + nonEmpty(o.CEP, "—")
	if c != nil && c.Address != "" {
		address = fmt.Sprintf("%s - %s/%s   |   %s", c.Address, c.City, c.UF, address)
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(details, props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(address, props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 6, align.Left),
		h("Preço unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(br.FormatBRL(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(br.FormatBRL(order.LineTotal(it)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(t order.Totals) core.Row {
	label := func(s string, top float64, bold bool) core.Component {
		p := props.Text{Size: 9, Align: align.Right, Right: 2, Top: top}
		if bold {
			p.Style, p.Size, p.Color = fontstyle.Bold, 10, colorPrimary
		}
		return text.New(s, p)
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1, false),
			label("Frete:", 7, false),
			label("TOTAL:", 13, true),
		),
		col.New(3).Add(
			label(br.FormatBRL(t.Subtotal), 1, false),
			label(br.FormatBRL(t.Freight), 7, false),
			label(br.FormatBRL(t.Total), 13, true),
		),
	)
}

func historyRows(history []entity.HistoryEntry) []core.Row {
	rows := []core.Row{sectionTitle("HISTÓRICO")}
	for _, h := range order.DisplayHistory(history) {
		desc := h.Status.Label()
		if h.Note != "" {
			desc = h.Note
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(h.Timestamp.Format("02/01/2006 15:04"), props.Text{Size: 7.5, Color: colorGray, Top: 1})),
			col.New(6).Add(text.New(desc, props.Text{Size: 7.5, Top: 1})),
			col.New(3).Add(text.New(h.ChangedBy, props.Text{Size: 7.5, Align: align.Right, Color: colorGray, Top: 1})),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) qrRow(o *entity.Order) core.Row {
	link := g.baseURL + "/app/orders/" + o.ID
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(link, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Acompanhe este pedido no portal:", props.Text{Size: 8, Top: 6, Left: 3, Color: colorGray}),
			text.New(link, props.Text{Size: 8, Top: 12, Left: 3, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
