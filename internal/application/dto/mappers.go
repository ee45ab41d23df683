package dto

import (
	"github.com/jhoicas/portal-b2b/internal/domain/cart"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/pkg/br"
)

// UserFromEntity converte o usuário, sem o hash de senha.
func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CNPJ:      u.CNPJ,
		Phone:     u.Phone,
		ClientID:  u.ClientID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ClientFromEntity(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:                c.ID,
		RazaoSocial:       c.RazaoSocial,
		NomeFantasia:      c.NomeFantasia,
		CNPJ:              c.CNPJ,
		CNPJFormatted:     br.FormatCNPJ(c.CNPJ),
		InscricaoEstadual: c.InscricaoEstadual,
		Email:             c.Email,
		Phone:             c.Phone,
		ContactName:       c.ContactName,
		CEP:               c.CEP,
		Address:           c.Address,
		City:              c.City,
		UF:                c.UF,
		PriceTableID:      c.PriceTableID,
		PaymentMethod:     c.PaymentMethod,
		Carrier:           c.Carrier,
		CreditLimit:       c.CreditLimit,
		Notes:             c.Notes,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// ProductFromEntity categoryName vazio vira "Sem categoria".
func ProductFromEntity(p *entity.Product, categoryName string) ProductResponse {
	if categoryName == "" {
		categoryName = "Sem categoria"
	}
	variations := make([]VariationDTO, 0, len(p.Variations))
	for _, v := range p.Variations {
		variations = append(variations, VariationDTO{Name: v.Name, SKU: v.SKU})
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		Subcategory:  p.Subcategory,
		Description:  p.Description,
		Images:       images,
		MainImage:    p.MainImage(),
		MinQty:       p.MinQty,
		SaleMultiple: p.SaleMultiple,
		BasePrice:    p.BasePrice,
		Variations:   variations,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func CategoryFromEntity(c *entity.Category) CategoryResponse {
	subs := c.Subcategories
	if subs == nil {
		subs = []string{}
	}
	return CategoryResponse{ID: c.ID, Name: c.Name, Subcategories: subs, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func SettingsFromEntity(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		PriceTables:    nonNilOptions(s.PriceTables),
		PaymentMethods: nonNilOptions(s.PaymentMethods),
		Carriers:       nonNilOptions(s.Carriers),
		UpdatedAt:      s.UpdatedAt,
	}
}

func nonNilOptions(o []entity.Option) []entity.Option {
	if o == nil {
		return []entity.Option{}
	}
	return o
}

// CartFromDomain linhas com total e subtotal derivados.
func CartFromDomain(c *cart.Cart) CartResponse {
	items := c.Items()
	out := CartResponse{
		Items:         make([]CartItemResponse, 0, len(items)),
		Subtotal:      c.Subtotal(),
		TotalQuantity: c.TotalQuantity(),
	}
	for _, it := range items {
		out.Items = append(out.Items, CartItemResponse{
			ProductID:   it.ProductID,
			VariationID: it.VariationID,
			Name:        it.Name,
			Price:       it.Price,
			Quantity:    it.Quantity,
			MinQty:      it.MinQty,
			Multiple:    it.Multiple,
			ImageURL:    it.ImageURL,
			LineTotal:   it.LineTotal(),
		})
	}
	return out
}

// OrderFromEntity totais sempre vindos de order.ComputeTotals.
func OrderFromEntity(o *entity.Order) OrderResponse {
	totals := order.ComputeTotals(o)
	items := o.Items
	if items == nil {
		items = []entity.OrderItem{}
	}
	history := o.History
	if history == nil {
		history = []entity.HistoryEntry{}
	}
	return OrderResponse{
		ID:                o.ID,
		Number:            o.Number(),
		UserID:            o.UserID,
		ClientID:          o.ClientID,
		ClientName:        o.ClientName,
		Items:             items,
		Subtotal:          totals.Subtotal,
		Freight:           totals.Freight,
		Total:             totals.Total,
		Status:            o.Status,
		StatusLabel:       o.Status.Label(),
		ClientStatusLabel: o.Status.ClientLabel(),
		History:           history,
		HistoryDisplay:    order.DisplayHistory(history),
		CEP:               o.CEP,
		Observations:      o.Observations,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

// OrdersFromEntities converte uma lista mantendo a ordem.
func OrdersFromEntities(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, OrderFromEntity(o))
	}
	return out
}
