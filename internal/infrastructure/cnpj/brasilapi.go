package cnpj

import (
	"context"
	"net/http"
	"strings"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

const brasilAPIDefaultURL = "https://brasilapi.com.br/api/cnpj/v1"

// BrasilAPI consulta https://brasilapi.com.br.
type BrasilAPI struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewBrasilAPI(baseURL string, httpClient *http.Client, log *logger.Logger) *BrasilAPI {
	if baseURL == "" {
		baseURL = brasilAPIDefaultURL
	}
	return &BrasilAPI{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient, log: log}
}

type brasilAPIResponse struct {
	CNPJ         string `json:"cnpj"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia"`
	CEP          string `json:"cep"`
	UF           string `json:"uf"`
	Municipio    string `json:"municipio"`
	Bairro       string `json:"bairro"`
	Logradouro   string `json:"logradouro"`
	Numero       string `json:"numero"`
	Complemento  string `json:"complemento"`
	Email        string `json:"email"`
	DDDTelefone1 string `json:"ddd_telefone_1"`
	DDDTelefone2 string `json:"ddd_telefone_2"`
}

func (b *BrasilAPI) Lookup(ctx context.Context, cnpj string) (*ports.CNPJInfo, error) {
	digits, ok := normalize(cnpj)
	if !ok {
		return nil, nil
	}
	var data brasilAPIResponse
	if err := getJSON(ctx, b.httpClient, b.baseURL+"/"+digits, &data); err != nil {
		b.log.Warn().Err(err).Str("cnpj", digits).Msg("falha na consulta BrasilAPI")
		return nil, nil
	}

	phone := data.DDDTelefone1
	if phone == "" {
		phone = data.DDDTelefone2
	}
	return &ports.CNPJInfo{
		CNPJ:         firstNonEmpty(br.OnlyDigits(data.CNPJ), digits),
		RazaoSocial:  data.RazaoSocial,
		NomeFantasia: data.NomeFantasia,
		CEP:          br.NormalizeCEP(data.CEP),
		UF:           data.UF,
		Municipio:    data.Municipio,
		Bairro:       data.Bairro,
		Logradouro:   data.Logradouro,
		Numero:       data.Numero,
		Complemento:  data.Complemento,
		Email:        data.Email,
		Telefone:     phone,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
