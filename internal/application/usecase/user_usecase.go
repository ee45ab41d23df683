package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// UserUseCase administração de usuários (status e papel).
type UserUseCase struct {
	repo     repository.UserRepository
	sessions ports.SessionInvalidator
	log      *logger.Logger
	now      func() time.Time
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository, sessions ports.SessionInvalidator, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, sessions: sessions, log: log.Component("users"), now: time.Now}
}

// List filtra por status quando informado.
func (uc *UserUseCase) List(ctx context.Context, status string) ([]dto.UserResponse, error) {
	if status != "" && !entity.IsValidStatus(status) {
		return nil, domain.NewValidationError("status", "Status inválido.")
	}
	list, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserFromEntity(u))
	}
	return out, nil
}

// SetStatus aprova, desativa ou reativa o usuário.
func (uc *UserUseCase) SetStatus(ctx context.Context, id, status string) (*dto.UserResponse, error) {
	if !entity.IsValidStatus(status) {
		return nil, domain.NewValidationError("status", "Status inválido.")
	}
	return uc.mutate(ctx, id, func(u *entity.User) { u.Status = status })
}

// SetRole troca o papel do usuário.
func (uc *UserUseCase) SetRole(ctx context.Context, id, role string) (*dto.UserResponse, error) {
	if !entity.IsValidRole(role) {
		return nil, domain.NewValidationError("role", "Papel inválido.")
	}
	return uc.mutate(ctx, id, func(u *entity.User) { u.Role = role })
}

func (uc *UserUseCase) mutate(ctx context.Context, id string, fn func(*entity.User)) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	fn(u)
	u.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	uc.sessions.Invalidate(ctx, u.ID)
	uc.log.Info().Str("user_id", u.ID).Str("role", u.Role).Str("status", u.Status).Msg("usuário alterado")
	out := dto.UserFromEntity(u)
	return &out, nil
}
