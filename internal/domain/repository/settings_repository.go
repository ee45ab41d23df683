package repository

import (
	"context"

	"github.com/jhoicas/portal-b2b/internal/domain/entity"
)

// SettingsRepository porta do documento singleton de configurações.
type SettingsRepository interface {
	// Get devolve (nil, nil) se o documento ainda não existe.
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}
