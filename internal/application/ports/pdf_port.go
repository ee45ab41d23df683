package ports

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// OrderPDFGenerator gera a via imprimível do pedido.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, client *entity.Client) ([]byte, error)
}
