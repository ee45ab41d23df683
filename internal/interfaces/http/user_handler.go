package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/usecase"
)

// UserHandler gestão de usuários (somente admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        status  query  string  false  "ativo | inativo | aguardando_aprovacao"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Alterar status do usuário
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "usuário"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "status"
// @Success      200  {object}  dto.UserResponse
// @Router       /api/admin/users/{id}/status [patch]
func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateUserStatusRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetRole godoc
// @Summary      Alterar papel do usuário
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "usuário"
// @Param        body  body  dto.UpdateUserRoleRequest  true  "papel"
// @Success      200  {object}  dto.UserResponse
// @Router       /api/admin/users/{id}/role [patch]
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	var in dto.UpdateUserRoleRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SetRole(c.UserContext(), c.Params("id"), in.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
