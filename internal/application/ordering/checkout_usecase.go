package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// IdempotencyTTL por quanto tempo uma Idempotency-Key fica associada ao pedido criado.
const IdempotencyTTL = 24 * time.Hour

// CheckoutUseCase transforma o carrinho em pedido.
type CheckoutUseCase struct {
	carts   repository.CartStore
	orders  repository.OrderRepository
	clients repository.ClientRepository
	idem    ports.IdempotencyStore
	erp     ports.ERPSync
	log     *logger.Logger
	now     func() time.Time
}

// NewCheckoutUseCase constrói o caso de uso.
func NewCheckoutUseCase(
	carts repository.CartStore,
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	idem ports.IdempotencyStore,
	erp ports.ERPSync,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:   carts,
		orders:  orders,
		clients: clients,
		idem:    idem,
		erp:     erp,
		log:     log.Component("checkout"),
		now:     time.Now,
	}
}

// Checkout cria o pedido a partir do carrinho salvo.
//
// Com idempotencyKey, a primeira chamada reserva a chave; repetições devolvem o
// mesmo pedido e chamadas concorrentes falham com ErrRequestInProgress.
// O carrinho só é apagado depois do insert; o envio ao ERP nunca derruba o checkout.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, user *entity.User, idempotencyKey string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	key := ""
	if idempotencyKey != "" {
		key = user.ID + ":" + idempotencyKey
		reserved, err := uc.idem.Reserve(ctx, key, IdempotencyTTL)
		if err != nil {
			return nil, fmt.Errorf("checkout: reservar chave: %w", err)
		}
		if !reserved {
			return uc.replay(ctx, key)
		}
	}

	o, err := uc.create(ctx, user, in)
	if err != nil {
		if key != "" {
			if relErr := uc.idem.Release(ctx, key); relErr != nil {
				uc.log.Warn().Err(relErr).Msg("falha ao liberar chave de idempotência")
			}
		}
		return nil, err
	}

	if key != "" {
		if err := uc.idem.Complete(ctx, key, o.ID, IdempotencyTTL); err != nil {
			uc.log.Warn().Err(err).Str("order_id", o.ID).Msg("falha ao gravar resultado de idempotência")
		}
	}
	if err := uc.carts.Delete(ctx, user.ID); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("pedido criado mas o carrinho não foi limpo")
	}
	uc.syncERP(ctx, o)

	out := dto.OrderFromEntity(o)
	return &out, nil
}

func (uc *CheckoutUseCase) create(ctx context.Context, user *entity.User, in dto.CheckoutRequest) (*entity.Order, error) {
	c, err := uc.carts.Load(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	o, err := order.NewFromCart(order.CheckoutInput{
		OrderID:      uuid.NewString(),
		User:         user,
		Cart:         c,
		FreightRaw:   in.Freight,
		CEP:          in.CEP,
		Observations: in.Observations,
		Now:          uc.now(),
	})
	if err != nil {
		return nil, err
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("checkout: gravar pedido: %w", err)
	}
	uc.log.Info().Str("order_id", o.ID).Str("user_id", user.ID).Str("total", o.Total.StringFixed(2)).Msg("pedido criado")
	return o, nil
}

func (uc *CheckoutUseCase) replay(ctx context.Context, key string) (*dto.OrderResponse, error) {
	orderID, done, err := uc.idem.Result(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("checkout: ler chave: %w", err)
	}
	if !done {
		return nil, domain.ErrRequestInProgress
	}
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.OrderFromEntity(o)
	return &out, nil
}

func (uc *CheckoutUseCase) syncERP(ctx context.Context, o *entity.Order) {
	if uc.erp == nil {
		return
	}
	var client *entity.Client
	if o.ClientID != "" {
		c, err := uc.clients.GetByID(ctx, o.ClientID)
		if err != nil {
			uc.log.Warn().Err(err).Str("client_id", o.ClientID).Msg("cliente não carregado para o ERP")
		}
		client = c
	}
	res, err := uc.erp.PushOrder(ctx, o, client)
	switch {
	case err != nil:
		uc.log.Error().Err(err).Str("order_id", o.ID).Msg("falha ao enviar pedido ao ERP")
	case res != nil && res.Stub:
		uc.log.Debug().Str("order_id", o.ID).Msg("integração com ERP desligada")
	case res != nil && res.Success:
		uc.log.Info().Str("order_id", o.ID).Str("remote_id", res.RemoteID).Msg("pedido enviado ao ERP")
	default:
		uc.log.Warn().Str("order_id", o.ID).Msg("ERP recusou o pedido")
	}
}
