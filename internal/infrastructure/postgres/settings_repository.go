package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo guarda o documento único de configurações (id "global").
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devolve (nil, nil) enquanto ninguém salvou as configurações.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	var (
		s                                     entity.Settings
		priceTables, paymentMethods, carriers []byte
	)
	err := r.q.QueryRow(ctx,
		`SELECT id, price_tables, payment_methods, carriers, updated_at FROM settings WHERE id = $1`,
		entity.SettingsID,
	).Scan(&s.ID, &priceTables, &paymentMethods, &carriers, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	for _, d := range []struct {
		raw []byte
		dst *[]entity.Option
	}{
		{priceTables, &s.PriceTables},
		{paymentMethods, &s.PaymentMethods},
		{carriers, &s.Carriers},
	} {
		*d.dst = []entity.Option{}
		if len(d.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(d.raw, d.dst); err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
	}
	return &s, nil
}

// Save faz upsert do documento inteiro.
func (r *SettingsRepo) Save(ctx context.Context, s *entity.Settings) error {
	encode := func(o []entity.Option) ([]byte, error) {
		if o == nil {
			o = []entity.Option{}
		}
		return json.Marshal(o)
	}
	priceTables, err := encode(s.PriceTables)
	if err != nil {
		return fmt.Errorf("encode price tables: %w", err)
	}
	paymentMethods, err := encode(s.PaymentMethods)
	if err != nil {
		return fmt.Errorf("encode payment methods: %w", err)
	}
	carriers, err := encode(s.Carriers)
	if err != nil {
		return fmt.Errorf("encode carriers: %w", err)
	}

	query := `
		INSERT INTO settings (id, price_tables, payment_methods, carriers, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			price_tables = EXCLUDED.price_tables,
			payment_methods = EXCLUDED.payment_methods,
			carriers = EXCLUDED.carriers,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, entity.SettingsID, priceTables, paymentMethods, carriers, s.UpdatedAt); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
