package repository

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// ClientRepository porta de persistência de Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	// List busca por razão social, nome fantasia ou CNPJ quando search != "".
	List(ctx context.Context, search string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// Delete remove fisicamente; ErrNotFound se não existir.
	Delete(ctx context.Context, id string) error
}
