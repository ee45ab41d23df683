package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, COALESCE(category_id::text, ''), subcategory, description, images,
	min_qty, sale_multiple, base_price, variations, status, created_at, updated_at`

// ProductRepo implementação de ProductRepository.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.CategoryID != "" && !isUUID(p.CategoryID) {
		return domain.NewValidationError("categoryId", "Categoria não encontrada")
	}
	variations, err := marshalVariations(p.Variations)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, name, category_id, subcategory, description, images, min_qty, sale_multiple,
			base_price, variations, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(ctx, query,
		p.ID, p.Name, nullIfEmpty(p.CategoryID), p.Subcategory, p.Description, nonNilStrings(p.Images),
		p.MinQty, p.SaleMultiple, p.BasePrice, variations, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidText(err) {
			return domain.NewValidationError("categoryId", "Categoria não encontrada")
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID busca por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List ordena por nome.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE ($1 = '' OR status = $1)
			AND ($2 = '' OR category_id::text = $2)
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, filter.Status, filter.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update grava todos os campos editáveis.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if p.CategoryID != "" && !isUUID(p.CategoryID) {
		return domain.NewValidationError("categoryId", "Categoria não encontrada")
	}
	variations, err := marshalVariations(p.Variations)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET name = $2, category_id = $3, subcategory = $4, description = $5, images = $6,
			min_qty = $7, sale_multiple = $8, base_price = $9, variations = $10, status = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Name, nullIfEmpty(p.CategoryID), p.Subcategory, p.Description, nonNilStrings(p.Images),
		p.MinQty, p.SaleMultiple, p.BasePrice, variations, p.Status, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidText(err) {
			return domain.NewValidationError("categoryId", "Categoria não encontrada")
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o produto. Pedidos guardam cópia dos itens e não são afetados.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p          entity.Product
		variations []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.Subcategory, &p.Description, &p.Images,
		&p.MinQty, &p.SaleMultiple, &p.BasePrice, &variations, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(variations) > 0 {
		if err := json.Unmarshal(variations, &p.Variations); err != nil {
			return nil, fmt.Errorf("decode variations: %w", err)
		}
	}
	return &p, nil
}

func marshalVariations(v []entity.Variation) ([]byte, error) {
	if v == nil {
		v = []entity.Variation{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode variations: %w", err)
	}
	return b, nil
}
