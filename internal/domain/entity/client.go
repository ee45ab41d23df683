package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client empresa compradora atendida pelo portal.
type Client struct {
	ID                string
	RazaoSocial       string
	NomeFantasia      string
	CNPJ              string // só dígitos
	InscricaoEstadual string
	Email             string
	Phone             string
	ContactName       string
	CEP               string
	Address           string
	City              string
	UF                string
	PriceTableID      string // id de uma opção de Settings.PriceTables
	PaymentMethod     string
	Carrier           string
	CreditLimit       decimal.Decimal
	Notes             string
	Status            string // ativo, inativo, aguardando_aprovacao
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
