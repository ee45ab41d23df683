package ports

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

// ClientTxRunner executa fn numa transação com os repositórios de clientes e usuários
// (aprovação de cadastro: cria o cliente e vincula o usuário de uma vez).
type ClientTxRunner interface {
	RunClients(ctx context.Context, fn func(clients repository.ClientRepository, users repository.UserRepository) error) error
}

// OrderTxRunner executa fn numa transação com o repositório de pedidos.
type OrderTxRunner interface {
	RunOrders(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
