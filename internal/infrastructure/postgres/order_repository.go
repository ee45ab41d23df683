package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, user_id, COALESCE(client_id::text, ''), client_name, items, subtotal, freight, total,
	status, history, cep, observations, created_at, updated_at`

// OrderRepo implementação de OrderRepository. Itens e histórico ficam em JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste o pedido com itens e histórico.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	items, history, err := marshalOrderDocs(o)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (id, user_id, client_id, client_name, items, subtotal, freight, total,
			status, history, cep, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(ctx, query,
		o.ID, o.UserID, nullIfEmpty(o.ClientID), o.ClientName, items, o.Subtotal, o.Freight, o.Total,
		string(o.Status), history, o.CEP, o.Observations, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert order: cliente ou usuário inexistente: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID busca por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetByIDForUpdate trava a linha; só faz sentido dentro de uma transação.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) get(ctx context.Context, query, id string) (*entity.Order, error) {
	if !isUUID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List aplica os filtros preenchidos e ordena do mais recente para o mais antigo.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var (
		conds []string
		args  []any
	)
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if !filter.Since.IsZero() {
		args = append(args, filter.Since)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update grava status, frete, totais e histórico.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	items, history, err := marshalOrderDocs(o)
	if err != nil {
		return err
	}
	query := `
		UPDATE orders SET items = $2, subtotal = $3, freight = $4, total = $5, status = $6, history = $7,
			updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		o.ID, items, o.Subtotal, o.Freight, o.Total, string(o.Status), history, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o              entity.Order
		status         string
		items, history []byte
	)
	err := row.Scan(
		&o.ID, &o.UserID, &o.ClientID, &o.ClientName, &items, &o.Subtotal, &o.Freight, &o.Total,
		&status, &history, &o.CEP, &o.Observations, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &o.History); err != nil {
			return nil, fmt.Errorf("decode history: %w", err)
		}
	}
	return &o, nil
}

func marshalOrderDocs(o *entity.Order) (items, history []byte, err error) {
	it := o.Items
	if it == nil {
		it = []entity.OrderItem{}
	}
	h := o.History
	if h == nil {
		h = []entity.HistoryEntry{}
	}
	if items, err = json.Marshal(it); err != nil {
		return nil, nil, fmt.Errorf("encode items: %w", err)
	}
	if history, err = json.Marshal(h); err != nil {
		return nil, nil, fmt.Errorf("encode history: %w", err)
	}
	return items, history, nil
}
