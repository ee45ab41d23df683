package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientRequest criação e edição de cliente. UserID, na criação, aprova o
// usuário pendente e o vincula ao novo cliente.
type ClientRequest struct {
	UserID            string          `json:"userId" validate:"omitempty,uuid"`
	RazaoSocial       string          `json:"razaoSocial" validate:"required,min=2"`
	NomeFantasia      string          `json:"nomeFantasia"`
	CNPJ              string          `json:"cnpj" validate:"required,cnpj_digits"`
	InscricaoEstadual string          `json:"inscricaoEstadual"`
	Email             string          `json:"email" validate:"omitempty,email"`
	Phone             string          `json:"phone" validate:"required,min=8"`
	ContactName       string          `json:"contactName" validate:"required,min=2"`
	CEP               string          `json:"cep"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	UF                string          `json:"uf" validate:"required,len=2"`
	PriceTableID      string          `json:"priceTableId" validate:"required"`
	PaymentMethod     string          `json:"paymentMethod"`
	Carrier           string          `json:"carrier"`
	CreditLimit       decimal.Decimal `json:"creditLimit" validate:"gte=0"`
	Notes             string          `json:"notes"`
	Status            string          `json:"status" validate:"required,oneof=ativo inativo aguardando_aprovacao"`
}

// ClientResponse cliente completo.
type ClientResponse struct {
	ID                string          `json:"id"`
	RazaoSocial       string          `json:"razaoSocial"`
	NomeFantasia      string          `json:"nomeFantasia"`
	CNPJ              string          `json:"cnpj"`
	CNPJFormatted     string          `json:"cnpjFormatted"`
	InscricaoEstadual string          `json:"inscricaoEstadual"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	ContactName       string          `json:"contactName"`
	CEP               string          `json:"cep"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	UF                string          `json:"uf"`
	PriceTableID      string          `json:"priceTableId"`
	PaymentMethod     string          `json:"paymentMethod"`
	Carrier           string          `json:"carrier"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	Notes             string          `json:"notes"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// CNPJLookupResponse dados para pré-preencher o cadastro.
type CNPJLookupResponse struct {
	CNPJ         string `json:"cnpj"`
	CNPJValid    bool   `json:"cnpjValid"`
	RazaoSocial  string `json:"razaoSocial"`
	NomeFantasia string `json:"nomeFantasia"`
	CEP          string `json:"cep"`
	UF           string `json:"uf"`
	City         string `json:"city"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}
