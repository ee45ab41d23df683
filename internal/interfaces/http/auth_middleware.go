package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/session"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/pkg/jwt"
)

// Locals keys preenchidas pelos middlewares de sessão.
const (
	LocalSession = "session"
	LocalUser    = "user"
	LocalClaims  = "claims"
)

// bearerToken extrai o token do header Authorization; "" se ausente ou mal formado.
func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func resolveSession(c *fiber.Ctx, sessions *session.Service) (*session.Session, error) {
	s, err := sessions.Resolve(c.UserContext(), bearerToken(c))
	if err != nil {
		return nil, err
	}
	c.Locals(LocalSession, s)
	if s.Claims != nil {
		c.Locals(LocalClaims, s.Claims)
	}
	if s.User != nil {
		c.Locals(LocalUser, s.User)
	}
	return s, nil
}

// OptionalAuth resolve a sessão quando houver token, sem bloquear a requisição.
func OptionalAuth(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := resolveSession(c, sessions); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}

// AuthMiddleware exige um token válido com perfil carregado.
func AuthMiddleware(sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if bearerToken(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "Faça login para continuar."})
		}
		s, err := resolveSession(c, sessions)
		if err != nil {
			return respondError(c, err)
		}
		switch s.State {
		case session.Authenticated:
			return c.Next()
		case session.ProfileMissing:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeProfileMissing, Message: "Perfil de usuário não encontrado."})
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "Sessão inválida ou expirada."})
		}
	}
}

// SessionGuard aplica a decisão do guard da área às rotas /api/<area>/*.
// Deve vir depois de OptionalAuth ou AuthMiddleware.
func SessionGuard(area string) fiber.Handler {
	roles := session.AreaRoles(area)
	return func(c *fiber.Ctx) error {
		d := session.Decide(GetSession(c), guardPath(c.Path()), roles)
		switch d.Kind {
		case session.Render:
			return c.Next()
		case session.Loading:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeProfileMissing, Message: "Perfil de usuário não encontrado."})
		}
		if strings.HasPrefix(d.Location, "/login") && GetUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: CodeUnauthorized, Message: "Faça login para continuar.", Redirect: d.Location,
			})
		}
		msg := "Você não tem permissão para acessar esta área."
		if d.Location == "/pending" {
			msg = "Seu cadastro está aguardando aprovação."
		} else if strings.Contains(d.Location, "account_disabled") {
			msg = "Sua conta está desativada."
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: msg, Redirect: d.Location})
	}
}

// guardPath traduz /api/app/cart em /app/cart, o caminho que o front-end protege.
func guardPath(p string) string {
	if strings.HasPrefix(p, "/api/") {
		return strings.TrimPrefix(p, "/api")
	}
	return p
}

// RequireRole restringe a rota aos papéis informados.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := GetUser(c)
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "Faça login para continuar."})
		}
		for _, r := range roles {
			if u.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: "Você não tem permissão para esta ação."})
	}
}

// GetSession sessão resolvida (nil se nenhum middleware de sessão rodou).
func GetSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(LocalSession).(*session.Session)
	return s
}

// GetUser usuário autenticado ou nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetClaims claims do token ou nil.
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	cl, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return cl
}

// GetUserID id do usuário autenticado ("" se anônimo).
func GetUserID(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.ID
	}
	return ""
}
