package entity

import "time"

// SettingsID id fixo do documento de configurações globais.
const SettingsID = "global"

// Nomes das listas de opções.
const (
	ListPriceTables    = "priceTables"
	ListPaymentMethods = "paymentMethods"
	ListCarriers       = "carriers"
)

// IsValidOptionList indica se o nome de lista é conhecido.
func IsValidOptionList(list string) bool {
	switch list {
	case ListPriceTables, ListPaymentMethods, ListCarriers:
		return true
	}
	return false
}

// Option opção selecionável (tabela de preço, forma de pagamento, transportadora).
type Option struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Settings singleton com as três listas de opções.
type Settings struct {
	ID             string
	PriceTables    []Option
	PaymentMethods []Option
	Carriers       []Option
	UpdatedAt      time.Time
}

// NewSettings devolve as configurações vazias.
func NewSettings(now time.Time) *Settings {
	return &Settings{
		ID:             SettingsID,
		PriceTables:    []Option{},
		PaymentMethods: []Option{},
		Carriers:       []Option{},
		UpdatedAt:      now,
	}
}

// List devolve um ponteiro para a lista nomeada (nil se desconhecida).
func (s *Settings) List(name string) *[]Option {
	switch name {
	case ListPriceTables:
		return &s.PriceTables
	case ListPaymentMethods:
		return &s.PaymentMethods
	case ListCarriers:
		return &s.Carriers
	}
	return nil
}

// SelectableOptions devolve as opções ativas mais a selecionada atualmente,
// mesmo que inativa, preservando a ordem original.
func SelectableOptions(options []Option, selectedID string) []Option {
	out := make([]Option, 0, len(options))
	for _, o := range options {
		if o.Active || (selectedID != "" && o.ID == selectedID) {
			out = append(out, o)
		}
	}
	return out
}
