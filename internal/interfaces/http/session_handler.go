package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/session"
)

// SessionHandler expõe o estado da sessão e a decisão do guard para o front-end.
type SessionHandler struct{}

// NewSessionHandler constrói o handler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Get godoc
// @Summary      Estado da sessão
// @Description  anonymous, authenticated (com o perfil) ou profile_missing.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	s := GetSession(c)
	if s == nil {
		return c.JSON(dto.SessionResponse{State: dto.SessionAnonymous})
	}
	out := dto.SessionResponse{State: string(s.State)}
	if s.User != nil {
		u := dto.UserFromEntity(s.User)
		out.User = &u
	}
	return c.JSON(out)
}

// Guard godoc
// @Summary      Decisão do guard de rota
// @Tags         session
// @Produce      json
// @Param        path  query  string  true   "caminho pedido"
// @Param        area  query  string  false  "admin | app"
// @Success      200  {object}  dto.GuardResponse
// @Router       /api/session/guard [get]
func (h *SessionHandler) Guard(c *fiber.Ctx) error {
	path := c.Query("path", "/")
	d := session.Decide(GetSession(c), path, session.AreaRoles(c.Query("area")))
	return c.JSON(dto.GuardResponse{Decision: string(d.Kind), Location: d.Location})
}
