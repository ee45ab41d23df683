package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/infrastructure/memory"
	"github.com/jhoicas/portal-b2b/pkg/jwt"
	"github.com/jhoicas/portal-b2b/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

type captureMailer struct {
	sent []ports.MailMessage
}

func (m *captureMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

type fixture struct {
	uc        *AuthUseCase
	store     *memory.Store
	cache     *memory.ProfileCache
	blacklist *memory.TokenBlacklist
	mailer    *captureMailer
}

func newFixture() *fixture {
	f := &fixture{
		store:     memory.NewStore(),
		cache:     memory.NewProfileCache(),
		blacklist: memory.NewTokenBlacklist(),
		mailer:    &captureMailer{},
	}
	f.uc = NewAuthUseCase(Deps{
		Users:     f.store.Users,
		Sessions:  f.cache,
		Blacklist: f.blacklist,
		Resets:    memory.NewResetTokenStore(),
		Mailer:    f.mailer,
		JWT:       JWTConfig{Secret: "s3cr3t", ExpMinutes: 60, Issuer: "test"},
		BaseURL:   "https://portal.example.com/",
		Log:       logger.Nop(),
	})
	return f
}

func (f *fixture) seedUser(t *testing.T, email, password, role, status string) *entity.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	u := &entity.User{ID: email, Email: email, PasswordHash: hash, Role: role, Status: status, CreatedAt: time.Now()}
	require.NoError(t, f.store.Users.Create(context.Background(), u))
	return u
}

// ─── Register ─────────────────────────────────────────────────────────────────

func TestRegister_CriaClientePendente(t *testing.T) {
	f := newFixture()
	out, err := f.uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Loja", Email: "  Novo@Loja.com ", Password: "123456", CNPJ: "11.222.333/0001-81", Phone: "11999999999",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "/pending", out.Redirect)

	u, err := f.store.Users.GetByEmail(context.Background(), "novo@loja.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleCliente, u.Role)
	assert.Equal(t, entity.StatusAguardandoAprovacao, u.Status)
	assert.Equal(t, "11222333000181", u.CNPJ)
	assert.True(t, CheckPassword(u.PasswordHash, "123456"))
}

func TestRegister_SenhaCurta(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailRepetido(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "a@b.com", "123456", entity.RoleCliente, entity.StatusAtivo)
	_, err := f.uc.Register(context.Background(), dto.RegisterRequest{Email: "A@B.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ─── Login ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "cliente@b.com", "123456", entity.RoleCliente, entity.StatusAtivo)
	f.seedUser(t, "admin@b.com", "123456", entity.RoleAdmin, entity.StatusAtivo)
	f.seedUser(t, "off@b.com", "123456", entity.RoleCliente, entity.StatusInativo)
	ctx := context.Background()

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "cliente@b.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "/app", out.Redirect)

	out, err = f.uc.Login(ctx, dto.LoginRequest{Email: "admin@b.com", Password: "123456", Redirect: "/admin/orders"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/orders", out.Redirect)

	claims, err := jwt.Parse("s3cr3t", out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "cliente@b.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "ninguem@b.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "off@b.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestLoginRedirect_IgnoraDestinoExterno(t *testing.T) {
	u := &entity.User{Role: entity.RoleEquipe, Status: entity.StatusAtivo}
	assert.Equal(t, "/admin", LoginRedirect(u, "//evil.com"))
	assert.Equal(t, "/admin", LoginRedirect(u, "https://evil.com"))
	assert.Equal(t, "/admin/clients", LoginRedirect(u, "/admin/clients"))
}

// ─── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_RevogaToken(t *testing.T) {
	f := newFixture()
	f.seedUser(t, "a@b.com", "123456", entity.RoleCliente, entity.StatusAtivo)
	out, err := f.uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "123456"})
	require.NoError(t, err)
	claims, err := jwt.Parse("s3cr3t", out.Token)
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(context.Background(), claims))

	revoked, err := f.blacklist.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

// ─── Redefinição de senha ─────────────────────────────────────────────────────

func TestForgotPassword_EmailInexistenteNaoFalha(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.uc.ForgotPassword(context.Background(), "ninguem@b.com"))
	assert.Empty(t, f.mailer.sent)
}

func TestResetPassword_FluxoCompleto(t *testing.T) {
	f := newFixture()
	u := f.seedUser(t, "a@b.com", "123456", entity.RoleCliente, entity.StatusAtivo)
	ctx := context.Background()

	require.NoError(t, f.uc.ForgotPassword(ctx, "a@b.com"))
	require.Len(t, f.mailer.sent, 1)
	msg := f.mailer.sent[0]
	assert.Equal(t, "a@b.com", msg.To)

	const prefix = "https://portal.example.com/reset-password?token="
	i := strings.Index(msg.TextBody, prefix)
	require.GreaterOrEqual(t, i, 0)
	token := strings.Fields(msg.TextBody[i+len(prefix):])[0]

	require.NoError(t, f.cache.Set(ctx, u, time.Minute))
	require.NoError(t, f.uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: token, Password: "novasenha"}))

	stored, err := f.store.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, CheckPassword(stored.PasswordHash, "novasenha"))

	_, cached, err := f.cache.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, cached)

	// uso único
	err = f.uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: token, Password: "outrasenha"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
