package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/usecase"
)

// ClientHandler cadastro de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        search  query  string  false  "razão social, nome fantasia ou CNPJ"
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/admin/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe do cliente
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/clients/{id} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar cliente
// @Description  Com userId, aprova o usuário pendente e o vincula ao cliente na mesma transação.
// @Tags         clients
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "cliente"
// @Success      201  {object}  dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar cliente
// @Tags         clients
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "cliente"
// @Param        body  body  dto.ClientRequest  true  "cliente"
// @Success      200  {object}  dto.ClientResponse
// @Router       /api/admin/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir cliente
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "cliente"
// @Success      204
// @Router       /api/admin/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LookupCNPJ godoc
// @Summary      Consultar CNPJ
// @Description  Dados públicos para pré-preencher o cadastro.
// @Tags         clients
// @Security     BearerAuth
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ com ou sem máscara"
// @Success      200  {object}  dto.CNPJLookupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/cnpj/{cnpj} [get]
func (h *ClientHandler) LookupCNPJ(c *fiber.Ctx) error {
	out, err := h.uc.LookupCNPJ(c.UserContext(), c.Params("cnpj"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SendPasswordReset godoc
// @Summary      Enviar redefinição de senha ao cliente
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "cliente"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/clients/{id}/password-reset [post]
func (h *ClientHandler) SendPasswordReset(c *fiber.Ctx) error {
	if err := h.uc.SendPasswordReset(c.UserContext(), c.Params("id")); err != nil {
		return respondErrorWith(c, err, "Ocorreu um erro ao enviar o e-mail de recuperação.")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
