package cnpj

import (
	"context"
	"net/http"
	"strings"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

const receitaWSDefaultURL = "https://receitaws.com.br/v1/cnpj"

// ReceitaWS consulta https://receitaws.com.br.
type ReceitaWS struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewReceitaWS(baseURL string, httpClient *http.Client, log *logger.Logger) *ReceitaWS {
	if baseURL == "" {
		baseURL = receitaWSDefaultURL
	}
	return &ReceitaWS{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient, log: log}
}

// receitaWSResponse responde 200 também para erros, com status "ERROR".
type receitaWSResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	CNPJ        string `json:"cnpj"`
	Nome        string `json:"nome"`
	Fantasia    string `json:"fantasia"`
	CEP         string `json:"cep"`
	UF          string `json:"uf"`
	Municipio   string `json:"municipio"`
	Bairro      string `json:"bairro"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
}

func (r *ReceitaWS) Lookup(ctx context.Context, cnpj string) (*ports.CNPJInfo, error) {
	digits, ok := normalize(cnpj)
	if !ok {
		return nil, nil
	}
	var data receitaWSResponse
	if err := getJSON(ctx, r.httpClient, r.baseURL+"/"+digits, &data); err != nil {
		r.log.Warn().Err(err).Str("cnpj", digits).Msg("falha na consulta ReceitaWS")
		return nil, nil
	}
	if strings.EqualFold(data.Status, "ERROR") {
		r.log.Info().Str("cnpj", digits).Str("message", data.Message).Msg("CNPJ não encontrado na ReceitaWS")
		return nil, nil
	}

	return &ports.CNPJInfo{
		CNPJ:         firstNonEmpty(br.OnlyDigits(data.CNPJ), digits),
		RazaoSocial:  data.Nome,
		NomeFantasia: data.Fantasia,
		CEP:          br.NormalizeCEP(data.CEP),
		UF:           data.UF,
		Municipio:    data.Municipio,
		Bairro:       data.Bairro,
		Logradouro:   data.Logradouro,
		Numero:       data.Numero,
		Complemento:  data.Complemento,
		Email:        data.Email,
		Telefone:     data.Telefone,
	}, nil
}
