package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

// SettingsUseCase listas de opções globais (tabelas de preço, pagamentos, transportadoras).
type SettingsUseCase struct {
	repo repository.SettingsRepository
	mu   sync.Mutex // serializa leitura-modificação-escrita do documento
	now  func() time.Time
}

// NewSettingsUseCase constrói o caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, now: time.Now}
}

// Get devolve as configurações, criando o documento vazio na primeira leitura.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.SettingsFromEntity(s)
	return &out, nil
}

// AddOption acrescenta {id: unix millis, label, active: true} à lista.
func (uc *SettingsUseCase) AddOption(ctx context.Context, list string, in dto.AddOptionRequest) (*dto.SettingsResponse, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, domain.NewValidationError("label", "Informe o nome da opção.")
	}
	return uc.mutate(ctx, list, func(opts *[]entity.Option, now time.Time) error {
		id := now.UnixMilli()
		for hasOption(*opts, strconv.FormatInt(id, 10)) {
			id++
		}
		*opts = append(*opts, entity.Option{ID: strconv.FormatInt(id, 10), Label: label, Active: true})
		return nil
	})
}

// ToggleOption inverte o active da opção.
func (uc *SettingsUseCase) ToggleOption(ctx context.Context, list, optionID string) (*dto.SettingsResponse, error) {
	return uc.mutate(ctx, list, func(opts *[]entity.Option, _ time.Time) error {
		for i := range *opts {
			if (*opts)[i].ID == optionID {
				(*opts)[i].Active = !(*opts)[i].Active
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Options opções ativas da lista mais a selecionada, mesmo que inativa.
func (uc *SettingsUseCase) Options(ctx context.Context, list, selected string) (*dto.OptionsResponse, error) {
	if !entity.IsValidOptionList(list) {
		return nil, invalidList()
	}
	s, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OptionsResponse{List: list, Options: entity.SelectableOptions(*s.List(list), selected)}, nil
}

func (uc *SettingsUseCase) mutate(ctx context.Context, list string, fn func(opts *[]entity.Option, now time.Time) error) (*dto.SettingsResponse, error) {
	if !entity.IsValidOptionList(list) {
		return nil, invalidList()
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if err := fn(s.List(list), now); err != nil {
		return nil, err
	}
	s.UpdatedAt = now
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	out := dto.SettingsFromEntity(s)
	return &out, nil
}

func (uc *SettingsUseCase) load(ctx context.Context) (*entity.Settings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	s = entity.NewSettings(uc.now())
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func hasOption(opts []entity.Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

func invalidList() error {
	return domain.NewValidationError("list", "Lista inválida. Use priceTables, paymentMethods ou carriers.")
}
