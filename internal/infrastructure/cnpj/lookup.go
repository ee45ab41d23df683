// Package cnpj consulta dados cadastrais de empresas em provedores públicos.
// Falhas nunca viram erro para o chamador: o cadastro segue com preenchimento manual.
package cnpj

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// Provedores suportados.
const (
	ProviderBrasilAPI = "brasilapi"
	ProviderReceitaWS = "receitaws"
)

// NewLookup escolhe o provedor pela configuração. Provedor desconhecido
// resulta num lookup que nunca encontra nada.
func NewLookup(cfg config.CNPJConfig, log *logger.Logger) ports.CNPJLookup {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}
	log = log.Component("cnpj_lookup")

	switch strings.ToLower(cfg.Provider) {
	case ProviderBrasilAPI, "":
		return NewBrasilAPI(cfg.BaseURL, httpClient, log)
	case ProviderReceitaWS:
		return NewReceitaWS(cfg.BaseURL, httpClient, log)
	default:
		log.Warn().Str("provider", cfg.Provider).Msg("provedor de CNPJ desconhecido; consultas desativadas")
		return noopLookup{}
	}
}

type noopLookup struct{}

func (noopLookup) Lookup(context.Context, string) (*ports.CNPJInfo, error) { return nil, nil }

// getJSON faz GET e decodifica a resposta 200 em out.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("criar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("chamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return fmt.Errorf("ler resposta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar resposta: %w", err)
	}
	return nil
}

// normalize exige 14 dígitos antes de gastar uma chamada externa.
// Os dígitos verificadores não são conferidos aqui: a base da Receita é a referência.
func normalize(cnpj string) (string, bool) {
	return br.NormalizeCNPJ(cnpj)
}
