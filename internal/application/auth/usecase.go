// Package auth cuida do cadastro, login, logout e redefinição de senha.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/jhoicas/portal-b2b/pkg/jwt"
	"github.com/jhoicas/portal-b2b/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength tamanho mínimo de senha.
const MinPasswordLength = 6

// ResetTokenTTL validade do link de redefinição.
const ResetTokenTTL = time.Hour

// bcryptCost custo do hash; os testes reduzem para acelerar.
var bcryptCost = bcrypt.DefaultCost

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Deps dependências do caso de uso.
type Deps struct {
	Users     repository.UserRepository
	Sessions  ports.SessionInvalidator
	Blacklist ports.TokenBlacklist
	Resets    ports.ResetTokenStore
	Mailer    ports.Mailer
	JWT       JWTConfig
	BaseURL   string // links enviados por e-mail
	Log       *logger.Logger
}

// AuthUseCase casos de uso de autenticação.
type AuthUseCase struct {
	users     repository.UserRepository
	sessions  ports.SessionInvalidator
	blacklist ports.TokenBlacklist
	resets    ports.ResetTokenStore
	mailer    ports.Mailer
	jwtCfg    JWTConfig
	baseURL   string
	log       *logger.Logger
	now       func() time.Time
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(d Deps) *AuthUseCase {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		users:     d.Users,
		sessions:  d.Sessions,
		blacklist: d.Blacklist,
		resets:    d.Resets,
		mailer:    d.Mailer,
		jwtCfg:    d.JWT,
		baseURL:   strings.TrimRight(d.BaseURL, "/"),
		log:       log.Component("auth"),
		now:       time.Now,
	}
}

// Register cria o usuário como cliente aguardando aprovação e já devolve a sessão.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(in.Password) < MinPasswordLength {
		return nil, domain.NewValidationError("password", "A senha deve ter pelo menos 6 caracteres.")
	}
	email := normalizeEmail(in.Email)
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		Role:         entity.RoleCliente,
		Status:       entity.StatusAguardandoAprovacao,
		CNPJ:         br.OnlyDigits(in.CNPJ),
		Phone:        strings.TrimSpace(in.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("novo cadastro aguardando aprovação")
	return uc.issue(user, "")
}

// Login confere as credenciais e decide o destino pós-login.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !CheckPassword(user.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status == entity.StatusInativo {
		return nil, domain.ErrAccountDisabled
	}
	return uc.issue(user, in.Redirect)
}

// Logout revoga o token até sua expiração natural.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	ttl := claims.ExpiresAtTime().Sub(uc.now())
	if err := uc.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ForgotPassword nunca revela se o e-mail existe; só falhas de envio voltam como erro.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	err := uc.RequestReset(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		uc.log.Debug().Msg("redefinição pedida para e-mail inexistente")
		return nil
	}
	return err
}

// RequestReset gera o token de uso único e envia o link. ErrUserNotFound se o e-mail não tiver conta.
func (uc *AuthUseCase) RequestReset(ctx context.Context, email string) error {
	user, err := uc.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	if err := uc.resets.Save(ctx, token, user.ID, ResetTokenTTL); err != nil {
		return fmt.Errorf("salvar token de redefinição: %w", err)
	}
	link := uc.baseURL + "/reset-password?token=" + token
	msg := ports.MailMessage{
		To:      user.Email,
		Subject: "Redefinição de senha",
		TextBody: fmt.Sprintf(
			"Olá %s,\n\nRecebemos um pedido para redefinir sua senha. Acesse o link abaixo (válido por 1 hora):\n\n%s\n\nSe você não fez o pedido, ignore este e-mail.\n",
			user.DisplayName("cliente"), link),
		HTMLBody: fmt.Sprintf(
			`<p>Olá %s,</p><p>Recebemos um pedido para redefinir sua senha. O link vale por 1 hora:</p><p><a href="%s">Redefinir senha</a></p><p>Se você não fez o pedido, ignore este e-mail.</p>`,
			user.DisplayName("cliente"), link),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("enviar e-mail de redefinição: %w", err)
	}
	return nil
}

// ResetPassword troca a senha usando o token recebido por e-mail.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if len(in.Password) < MinPasswordLength {
		return domain.NewValidationError("password", "A senha deve ter pelo menos 6 caracteres.")
	}
	userID, ok, err := uc.resets.Consume(ctx, in.Token)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewValidationError("token", "Link de redefinição inválido ou expirado.")
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	uc.sessions.Invalidate(ctx, userID)
	return nil
}

func (uc *AuthUseCase) issue(user *entity.User, requested string) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("gerar token: %w", err)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		Redirect:  LoginRedirect(user, requested),
		User:      dto.UserFromEntity(user),
	}, nil
}

// LoginRedirect destino após o login: pendentes vão para /pending; senão o
// redirect pedido (se for um caminho local) ou a home do papel.
func LoginRedirect(user *entity.User, requested string) string {
	if user.Status == entity.StatusAguardandoAprovacao {
		return "/pending"
	}
	if SafeRedirect(requested) {
		return requested
	}
	if user.Role == entity.RoleCliente {
		return "/app"
	}
	return "/admin"
}

// SafeRedirect aceita apenas caminhos locais ("/x", nunca "//host").
func SafeRedirect(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "/\\")
}

// HashPassword gera o hash bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash de senha: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compara senha e hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
