package cnpj

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/jhoicas/portal-b2b/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCNPJ = "11222333000181"

func TestBrasilAPI_MapeiaCampos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+validCNPJ, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cnpj": "11222333000181",
			"razao_social": "ACME COMERCIO LTDA",
			"nome_fantasia": "ACME",
			"cep": "01001-000",
			"uf": "SP",
			"municipio": "SAO PAULO",
			"bairro": "SE",
			"logradouro": "PRACA DA SE",
			"numero": "100",
			"complemento": "",
			"email": "contato@acme.com",
			"ddd_telefone_1": "",
			"ddd_telefone_2": "1133334444"
		}`))
	}))
	defer srv.Close()

	l := NewLookup(config.CNPJConfig{Provider: "brasilapi", BaseURL: srv.URL}, logger.Nop())
	info, err := l.Lookup(context.Background(), "11.222.333/0001-81")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "ACME COMERCIO LTDA", info.RazaoSocial)
	assert.Equal(t, "01001000", info.CEP)
	assert.Equal(t, "SP", info.UF)
	assert.Equal(t, "1133334444", info.Telefone, "usa o segundo telefone quando o primeiro está vazio")
}

func TestBrasilAPI_FalhaViraNaoEncontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	l := NewLookup(config.CNPJConfig{Provider: "brasilapi", BaseURL: srv.URL}, logger.Nop())
	info, err := l.Lookup(context.Background(), validCNPJ)
	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestLookup_TamanhoInvalidoNaoChamaProvedor(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	l := NewLookup(config.CNPJConfig{Provider: "brasilapi", BaseURL: srv.URL}, logger.Nop())
	for _, in := range []string{"", "123", "112223330001811"} {
		info, err := l.Lookup(context.Background(), in)
		assert.NoError(t, err)
		assert.Nil(t, info, in)
	}
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestReceitaWS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/"+validCNPJ {
			_, _ = w.Write([]byte(`{"status":"OK","cnpj":"11.222.333/0001-81","nome":"ACME LTDA","fantasia":"ACME",
				"cep":"01.001-000","uf":"SP","municipio":"SAO PAULO","telefone":"(11) 3333-4444"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ERROR","message":"CNPJ inválido"}`))
	}))
	defer srv.Close()

	l := NewLookup(config.CNPJConfig{Provider: "receitaws", BaseURL: srv.URL}, logger.Nop())

	info, err := l.Lookup(context.Background(), validCNPJ)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "ACME LTDA", info.RazaoSocial)
	assert.Equal(t, validCNPJ, info.CNPJ)
	assert.Equal(t, "01001000", info.CEP)

	info, err = l.Lookup(context.Background(), "11444777000161")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestNewLookup_ProvedorDesconhecido(t *testing.T) {
	l := NewLookup(config.CNPJConfig{Provider: "outro"}, logger.Nop())
	info, err := l.Lookup(context.Background(), validCNPJ)
	assert.NoError(t, err)
	assert.Nil(t, info)
}
