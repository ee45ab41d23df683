package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	apphttp "github.com/jhoicas/portal-b2b/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/portal-b2b/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodGet, "/api/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apphttp.CodeUnauthorized, decodeError(t, resp).Code)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodGet, "/api/profile", "Bearer token.invalido.aqui", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretIncorreto_Retorna401(t *testing.T) {
	h := newHarness(t)
	tok, err := pkgjwt.Generate("outro-secret", "u1", entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := h.do(t, http.MethodGet, "/api/profile", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_PerfilAusente_Retorna401(t *testing.T) {
	h := newHarness(t)
	tok, err := pkgjwt.Generate(testJWTSecret, "sem-perfil", entity.RoleCliente, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := h.do(t, http.MethodGet, "/api/profile", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apphttp.CodeProfileMissing, decodeError(t, resp).Code)
}

func TestAuthMiddleware_CarregaPerfil(t *testing.T) {
	h := newHarness(t)
	u, bearer := h.seedUser(t, "ana@loja.com", entity.RoleCliente, entity.StatusAguardandoAprovacao, "")

	resp := h.do(t, http.MethodGet, "/api/profile", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.UserResponse
	decode(t, resp, &body)
	assert.Equal(t, u.ID, body.ID)
	assert.Equal(t, "ana@loja.com", body.Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionGuard e RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionGuard_AnonimoRecebeRedirectParaLogin(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodGet, "/api/app/cart", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/login?redirect=%2Fapp%2Fcart", decodeError(t, resp).Redirect)
}

func TestSessionGuard_PendenteVaiParaPending(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "novo@loja.com", entity.RoleCliente, entity.StatusAguardandoAprovacao, "")

	resp := h.do(t, http.MethodGet, "/api/app/products", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "/pending", body.Redirect)
	assert.Equal(t, "Seu cadastro está aguardando aprovação.", body.Message)
}

func TestSessionGuard_InativoBloqueado(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "fora@loja.com", entity.RoleCliente, entity.StatusInativo, "")

	resp := h.do(t, http.MethodGet, "/api/app/orders", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "/login?error=account_disabled", body.Redirect)
	assert.Equal(t, "Sua conta está desativada.", body.Message)
}

func TestSessionGuard_ClienteNoAdminVoltaParaApp(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")

	resp := h.do(t, http.MethodGet, "/api/admin/dashboard", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "/app", decodeError(t, resp).Redirect)
}

func TestSessionGuard_EquipeNoAppVaiParaAdmin(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "equipe@portal.com", entity.RoleEquipe, entity.StatusAtivo, "")

	resp := h.do(t, http.MethodGet, "/api/app/cart", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "/admin", decodeError(t, resp).Redirect)
}

func TestRequireRole_EquipeNaoGerenciaUsuarios(t *testing.T) {
	h := newHarness(t)
	_, equipe := h.seedUser(t, "equipe@portal.com", entity.RoleEquipe, entity.StatusAtivo, "")
	_, admin := h.seedUser(t, "admin@portal.com", entity.RoleAdmin, entity.StatusAtivo, "")

	resp := h.do(t, http.MethodGet, "/api/admin/users", equipe, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, apphttp.CodeForbidden, decodeError(t, resp).Code)

	resp = h.do(t, http.MethodGet, "/api/admin/users", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/api/admin/dashboard", equipe, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/session
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_Anonima(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, http.MethodGet, "/api/session", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SessionResponse
	decode(t, resp, &body)
	assert.Equal(t, dto.SessionAnonymous, body.State)
	assert.Nil(t, body.User)
}

func TestSession_Autenticada(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")

	resp := h.do(t, http.MethodGet, "/api/session", bearer, nil)
	var body dto.SessionResponse
	decode(t, resp, &body)
	assert.Equal(t, dto.SessionAuthenticated, body.State)
	require.NotNil(t, body.User)
	assert.Equal(t, "ze@loja.com", body.User.Email)
}

func TestSession_Guard(t *testing.T) {
	h := newHarness(t)
	_, bearer := h.seedUser(t, "ze@loja.com", entity.RoleCliente, entity.StatusAtivo, "c1")

	resp := h.do(t, http.MethodGet, "/api/session/guard?path=/admin/orders&area=admin", bearer, nil)
	var body dto.GuardResponse
	decode(t, resp, &body)
	assert.Equal(t, "redirect", body.Decision)
	assert.Equal(t, "/app", body.Location)

	resp = h.do(t, http.MethodGet, "/api/session/guard?path=/app&area=app", bearer, nil)
	decode(t, resp, &body)
	assert.Equal(t, "render", body.Decision)
}
