package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, razao_social, nome_fantasia, cnpj, inscricao_estadual, email, phone, contact_name,
	cep, address, city, uf, price_table_id, payment_method, carrier, credit_limit, notes, status,
	created_at, updated_at`

// ClientRepo implementação de ClientRepository (pool ou tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador. Aceita pool ou tx.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.RazaoSocial, c.NomeFantasia, c.CNPJ, c.InscricaoEstadual, c.Email, c.Phone, c.ContactName,
		c.CEP, c.Address, c.City, c.UF, c.PriceTableID, c.PaymentMethod, c.Carrier, c.CreditLimit, c.Notes, c.Status,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID busca por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	if !isUUID(id) {
		return nil, nil
	}
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List ordena por razão social; search casa razão social, fantasia ou CNPJ.
func (r *ClientRepo) List(ctx context.Context, search string) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE $1 = ''
			OR razao_social ILIKE '%' || $1 || '%'
			OR nome_fantasia ILIKE '%' || $1 || '%'
			OR cnpj LIKE '%' || $1 || '%'
		ORDER BY razao_social`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update grava todos os campos editáveis.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET razao_social = $2, nome_fantasia = $3, cnpj = $4, inscricao_estadual = $5,
			email = $6, phone = $7, contact_name = $8, cep = $9, address = $10, city = $11, uf = $12,
			price_table_id = $13, payment_method = $14, carrier = $15, credit_limit = $16, notes = $17,
			status = $18, updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.RazaoSocial, c.NomeFantasia, c.CNPJ, c.InscricaoEstadual, c.Email, c.Phone, c.ContactName,
		c.CEP, c.Address, c.City, c.UF, c.PriceTableID, c.PaymentMethod, c.Carrier, c.CreditLimit, c.Notes,
		c.Status, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o cliente; usuários e pedidos vinculados ficam com client_id nulo.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.RazaoSocial, &c.NomeFantasia, &c.CNPJ, &c.InscricaoEstadual, &c.Email, &c.Phone, &c.ContactName,
		&c.CEP, &c.Address, &c.City, &c.UF, &c.PriceTableID, &c.PaymentMethod, &c.Carrier, &c.CreditLimit, &c.Notes,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
