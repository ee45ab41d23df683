package ordering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/order"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// Filtros da lista de pedidos do back-office.
const (
	FilterPending  = "pending"
	FilterFaturado = "faturado"
	FilterAll      = "all"
)

var filterStatuses = map[string][]entity.OrderStatus{
	FilterPending:  {entity.OrderNovo, entity.OrderAguardandoAprovacao},
	FilterFaturado: {entity.OrderFaturado},
	FilterAll:      nil,
}

// OrderUseCase consultas e mutações de pedidos já criados.
type OrderUseCase struct {
	orders  repository.OrderRepository
	tx      ports.OrderTxRunner
	clients repository.ClientRepository
	pdf     ports.OrderPDFGenerator
	policy  order.Policy
	log     *logger.Logger
	now     func() time.Time
}

// NewOrderUseCase constrói o caso de uso com a política de transição configurada.
func NewOrderUseCase(
	orders repository.OrderRepository,
	tx ports.OrderTxRunner,
	clients repository.ClientRepository,
	pdf ports.OrderPDFGenerator,
	policy order.Policy,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		tx:      tx,
		clients: clients,
		pdf:     pdf,
		policy:  policy,
		log:     log.Component("orders"),
		now:     time.Now,
	}
}

// ListMine pedidos do próprio usuário, mais recentes primeiro.
func (uc *OrderUseCase) ListMine(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.List(ctx, repository.OrderFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	return dto.OrdersFromEntities(list), nil
}

// Get detalhe do pedido. Cliente só enxerga os próprios (ErrNotFound nos demais);
// para a equipe vêm também os destinos de status permitidos.
func (uc *OrderUseCase) Get(ctx context.Context, viewer *entity.User, id string) (*dto.OrderResponse, error) {
	o, err := uc.visible(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	out := dto.OrderFromEntity(o)
	if viewer.IsStaff() {
		out.AllowedTransitions = order.AllowedTargets(uc.policy, o.Status)
	}
	return &out, nil
}

// AdminList lista do back-office com filtro de status e busca por cliente ou número.
func (uc *OrderUseCase) AdminList(ctx context.Context, q dto.AdminOrderQuery) ([]dto.OrderResponse, error) {
	filter := strings.TrimSpace(q.Filter)
	if filter == "" {
		filter = FilterAll
	}
	statuses, ok := filterStatuses[filter]
	if !ok {
		return nil, domain.NewValidationError("filter", "Filtro inválido. Use pending, faturado ou all.")
	}
	list, err := uc.orders.List(ctx, repository.OrderFilter{Statuses: statuses})
	if err != nil {
		return nil, err
	}
	term := strings.TrimSpace(q.Search)
	if term == "" {
		return dto.OrdersFromEntities(list), nil
	}
	matched := list[:0:0]
	for _, o := range list {
		if br.ContainsFold(o.ClientName, term) || br.ContainsFold(o.ID, term) || br.ContainsFold(o.Number(), term) {
			matched = append(matched, o)
		}
	}
	return dto.OrdersFromEntities(matched), nil
}

// Board agrupa os pedidos nas colunas do kanban; cancelados ficam de fora.
func (uc *OrderUseCase) Board(ctx context.Context) ([]dto.BoardColumn, error) {
	list, err := uc.orders.List(ctx, repository.OrderFilter{Statuses: entity.OrderFlow})
	if err != nil {
		return nil, err
	}
	byStatus := make(map[entity.OrderStatus][]dto.OrderResponse, len(entity.OrderFlow))
	for _, o := range list {
		byStatus[o.Status] = append(byStatus[o.Status], dto.OrderFromEntity(o))
	}
	cols := make([]dto.BoardColumn, 0, len(entity.OrderFlow))
	for _, st := range entity.OrderFlow {
		orders := byStatus[st]
		if orders == nil {
			orders = []dto.OrderResponse{}
		}
		cols = append(cols, dto.BoardColumn{Status: st, Title: st.BoardTitle(), Orders: orders})
	}
	return cols, nil
}

// ApplyMoves aplica os movimentos do kanban um a um. Cada item tem seu próprio
// resultado; uma falha não interrompe os demais.
func (uc *OrderUseCase) ApplyMoves(ctx context.Context, actor *entity.User, moves []dto.BoardMove) []dto.BoardMoveResult {
	results := make([]dto.BoardMoveResult, 0, len(moves))
	for _, mv := range moves {
		res := dto.BoardMoveResult{OrderID: mv.OrderID, To: mv.To}
		from, err := uc.changeStatus(ctx, actor, mv.OrderID, mv.To)
		res.From = from
		if err != nil {
			res.State = dto.MoveFailed
			res.Error = moveFailureMessage(err, from, mv.To)
			uc.log.Warn().Err(err).Str("order_id", mv.OrderID).Str("to", mv.To).Msg("movimento do kanban recusado")
		} else {
			res.State = dto.MoveCommitted
		}
		results = append(results, res)
	}
	return results
}

// moveFailureMessage texto exibido no card do kanban quando o movimento é recusado.
func moveFailureMessage(err error, from entity.OrderStatus, to string) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, domain.ErrNotFound):
		return "Pedido não encontrado."
	case errors.Is(err, domain.ErrInvalidTransition):
		return fmt.Sprintf("Não é possível mover de %s para %s.", from.BoardTitle(), entity.OrderStatus(to).BoardTitle())
	default:
		return "Não foi possível mover o pedido. Tente novamente."
	}
}

// ChangeStatus troca o status pelo back-office, validando pela política.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, actor *entity.User, id, status string) (*dto.OrderResponse, error) {
	if _, err := uc.changeStatus(ctx, actor, id, status); err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// changeStatus devolve o status anterior (quando o pedido existe) para que o
// kanban possa desfazer o movimento.
func (uc *OrderUseCase) changeStatus(ctx context.Context, actor *entity.User, id, status string) (entity.OrderStatus, error) {
	to, ok := entity.ParseOrderStatus(status)
	if !ok {
		return "", domain.NewValidationError("status", fmt.Sprintf("Status desconhecido: %s", status))
	}
	var from entity.OrderStatus
	err := uc.tx.RunOrders(ctx, func(orders repository.OrderRepository) error {
		o, err := orders.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		from = o.Status
		changed, err := order.ChangeStatus(o, to, actor.DisplayName(order.FallbackStaffActor), uc.policy, uc.now())
		if err != nil || !changed {
			return err
		}
		return orders.Update(ctx, o)
	})
	if err != nil {
		return from, err
	}
	uc.log.Info().Str("order_id", id).Str("from", string(from)).Str("to", string(to)).Msg("status do pedido alterado")
	return from, nil
}

// ChangeFreight grava o novo frete (formato brasileiro) e registra no histórico.
func (uc *OrderUseCase) ChangeFreight(ctx context.Context, actor *entity.User, id, raw string) (*dto.OrderResponse, error) {
	err := uc.tx.RunOrders(ctx, func(orders repository.OrderRepository) error {
		o, err := orders.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		order.ChangeFreight(o, raw, actor.DisplayName(order.FallbackStaffActor), uc.now())
		return orders.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, actor, id)
}

// PDF via imprimível do pedido, com as mesmas regras de visibilidade do detalhe.
func (uc *OrderUseCase) PDF(ctx context.Context, viewer *entity.User, id string) ([]byte, string, error) {
	o, err := uc.visible(ctx, viewer, id)
	if err != nil {
		return nil, "", err
	}
	var client *entity.Client
	if o.ClientID != "" {
		client, err = uc.clients.GetByID(ctx, o.ClientID)
		if err != nil {
			return nil, "", err
		}
	}
	data, err := uc.pdf.GenerateOrderPDF(ctx, o, client)
	if err != nil {
		return nil, "", fmt.Errorf("gerar pdf do pedido: %w", err)
	}
	return data, "pedido-" + o.Number() + ".pdf", nil
}

func (uc *OrderUseCase) visible(ctx context.Context, viewer *entity.User, id string) (*entity.Order, error) {
	if viewer == nil {
		return nil, domain.ErrUnauthorized
	}
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || (!viewer.IsStaff() && o.UserID != viewer.ID) {
		return nil, domain.ErrNotFound
	}
	return o, nil
}
