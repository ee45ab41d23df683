package dto

import (
	"time"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// SettingsResponse as três listas de opções.
type SettingsResponse struct {
	PriceTables    []entity.Option `json:"priceTables"`
	PaymentMethods []entity.Option `json:"paymentMethods"`
	Carriers       []entity.Option `json:"carriers"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AddOptionRequest nova opção numa lista.
type AddOptionRequest struct {
	Label string `json:"label" validate:"required"`
}

// OptionsResponse opções selecionáveis de uma lista.
type OptionsResponse struct {
	List    string          `json:"list"`
	Options []entity.Option `json:"options"`
}
