package ports

import "context"

// CNPJInfo dados cadastrais de uma empresa vindos de um provedor público.
type CNPJInfo struct {
	CNPJ         string
	RazaoSocial  string
	NomeFantasia string
	CEP          string
	UF           string
	Municipio    string
	Bairro       string
	Logradouro   string
	Numero       string
	Complemento  string
	Email        string
	Telefone     string
}

// CNPJLookup consulta de CNPJ. Devolve (nil, nil) quando o CNPJ é inválido,
// não existe ou o provedor falhou; o chamador trata tudo como "não encontrado".
type CNPJLookup interface {
	Lookup(ctx context.Context, cnpj string) (*CNPJInfo, error)
}
