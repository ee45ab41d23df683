package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/auth"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/jwt"
)

// ProfileUseCase o próprio usuário editando nome, e-mail e senha.
type ProfileUseCase struct {
	users        repository.UserRepository
	sessions     ports.SessionInvalidator
	recentWindow time.Duration
	now          func() time.Time
}

// NewProfileUseCase recentWindow é o tempo, desde o login, em que o e-mail ainda pode ser trocado.
func NewProfileUseCase(users repository.UserRepository, sessions ports.SessionInvalidator, recentWindow time.Duration) *ProfileUseCase {
	return &ProfileUseCase{users: users, sessions: sessions, recentWindow: recentWindow, now: time.Now}
}

// Get perfil do usuário.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := dto.UserFromEntity(u)
	return &out, nil
}

// Update troca nome e e-mail. Trocar o e-mail exige login recente (iat do token).
func (uc *ProfileUseCase) Update(ctx context.Context, claims *jwt.Claims, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	u, err := uc.load(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && email != u.Email {
		if uc.now().Sub(claims.IssuedAtTime()) > uc.recentWindow {
			return nil, domain.ErrRecentLoginNeeded
		}
		u.Email = email
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		u.Name = name
	}
	u.UpdatedAt = uc.now()
	if err := uc.users.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.NewValidationError("email", "Erro ao atualizar perfil. Verifique se o e-mail é válido.")
		}
		return nil, err
	}
	uc.sessions.Invalidate(ctx, u.ID)
	out := dto.UserFromEntity(u)
	return &out, nil
}

// ChangePassword confere a senha atual e grava a nova.
func (uc *ProfileUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < auth.MinPasswordLength {
		return domain.NewValidationError("newPassword", "A senha deve ter pelo menos 6 caracteres.")
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.NewValidationError("confirmPassword", "As senhas não coincidem.")
	}
	u, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, in.CurrentPassword) {
		return domain.NewValidationError("currentPassword", "Senha atual incorreta.")
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}
	uc.sessions.Invalidate(ctx, u.ID)
	return nil
}

func (uc *ProfileUseCase) load(ctx context.Context, userID string) (*entity.User, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}
