// Package erp envia pedidos ao GestãoClick.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

var _ ports.ERPSync = (*GestaoClick)(nil)

// GestaoClick cliente da API de vendas. Desligado, apenas registra o que seria enviado.
type GestaoClick struct {
	cfg        config.ERPConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewGestaoClick constrói o cliente.
func NewGestaoClick(cfg config.ERPConfig, log *logger.Logger) *GestaoClick {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &GestaoClick{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("gestaoclick"),
	}
}

type vendaPayload struct {
	Operacao string       `json:"operacao"`
	IDLoja   string       `json:"id_loja,omitempty"`
	Codigo   string       `json:"codigo"`
	Data     string       `json:"data"`
	Cliente  vendaCliente `json:"cliente"`
	Produtos []vendaItem  `json:"produtos"`
	Frete    string       `json:"valor_frete"`
	Total    string       `json:"valor_total"`
	Obs      string       `json:"observacoes,omitempty"`
}

type vendaCliente struct {
	NomeRazaoSocial string `json:"nome_razao_social"`
	CPFCNPJ         string `json:"cpf_cnpj"`
}

type vendaItem struct {
	IDProduto     string `json:"id_produto,omitempty"`
	Nome          string `json:"nome"`
	Quantidade    int    `json:"quantidade"`
	ValorUnitario string `json:"valor_unitario"`
}

type vendaResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// PushOrder envia o pedido como venda. client pode ser nil (pedido sem cliente vinculado).
func (g *GestaoClick) PushOrder(ctx context.Context, o *entity.Order, client *entity.Client) (*ports.ERPSyncResult, error) {
	if !g.cfg.Enabled {
		g.log.Info().Str("order_id", o.ID).Msg("integração desligada; envio ignorado")
		return &ports.ERPSyncResult{Success: true, Stub: true}, nil
	}

	body, err := json.Marshal(buildPayload(o, client, g.cfg.StoreID))
	if err != nil {
		return nil, fmt.Errorf("gestaoclick: serializar venda: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/vendas", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gestaoclick: criar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access-token", g.cfg.AccessToken)
	req.Header.Set("secret-access-token", g.cfg.SecretToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gestaoclick: chamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("gestaoclick: ler resposta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gestaoclick: HTTP %d: %s", resp.StatusCode, string(raw))
	}

	var out vendaResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("gestaoclick: decodificar resposta: %w", err)
		}
	}
	g.log.Info().Str("order_id", o.ID).Str("remote_id", out.Data.ID).Msg("pedido enviado ao ERP")
	return &ports.ERPSyncResult{Success: true, RemoteID: out.Data.ID}, nil
}

func buildPayload(o *entity.Order, client *entity.Client, storeID string) vendaPayload {
	totals := order.ComputeTotals(o)
	p := vendaPayload{
		Operacao: "insert",
		IDLoja:   storeID,
		Codigo:   o.Number(),
		Data:     o.CreatedAt.Format("2006-01-02"),
		Cliente:  vendaCliente{NomeRazaoSocial: o.ClientName},
		Produtos: make([]vendaItem, 0, len(o.Items)),
		Frete:    totals.Freight.StringFixed(2),
		Total:    totals.Total.StringFixed(2),
		Obs:      o.Observations,
	}
	if client != nil {
		p.Cliente = vendaCliente{NomeRazaoSocial: client.RazaoSocial, CPFCNPJ: client.CNPJ}
	}
	for _, it := range o.Items {
		p.Produtos = append(p.Produtos, vendaItem{
			IDProduto:     it.ProductID,
			Nome:          it.Name,
			Quantidade:    it.Quantity,
			ValorUnitario: it.UnitPrice.StringFixed(2),
		})
	}
	return p
}
