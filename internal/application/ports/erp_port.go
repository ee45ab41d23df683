package ports

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// ERPSyncResult resultado do envio de um pedido ao ERP.
// Stub=true quando a integração está desligada e nada foi enviado.
type ERPSyncResult struct {
	Success  bool
	Stub     bool
	RemoteID string
}

// ERPSync envia pedidos para o ERP externo. client pode ser nil.
type ERPSync interface {
	PushOrder(ctx context.Context, order *entity.Order, client *entity.Client) (*ERPSyncResult, error)
}
