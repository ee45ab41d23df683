package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ordering"
)

// OrderHandler pedidos do cliente e do back-office.
type OrderHandler struct {
	uc *ordering.OrderUseCase
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(uc *ordering.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListMine godoc
// @Summary      Meus pedidos
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/app/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe do pedido
// @Description  Cliente só vê os próprios pedidos; equipe recebe também as transições permitidas.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/app/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      PDF do pedido
// @Tags         orders
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id  path  string  true  "pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/app/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.PDF(c.UserContext(), GetUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

// AdminList godoc
// @Summary      Pedidos do back-office
// @Tags         admin-orders
// @Security     BearerAuth
// @Produce      json
// @Param        filter  query  string  false  "pending | faturado | all"
// @Param        search  query  string  false  "cliente, id ou número"
// @Success      200  {array}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/orders [get]
func (h *OrderHandler) AdminList(c *fiber.Ctx) error {
	var q dto.AdminOrderQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, errInvalidBody)
	}
	out, err := h.uc.AdminList(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Board godoc
// @Summary      Kanban de pedidos
// @Tags         admin-orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.BoardColumn
// @Router       /api/admin/orders/board [get]
func (h *OrderHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Moves godoc
// @Summary      Aplicar movimentos do kanban
// @Description  Cada movimento é aplicado isoladamente; o resultado informa o status anterior para desfazer.
// @Tags         admin-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BoardMovesRequest  true  "movimentos"
// @Success      200  {array}  dto.BoardMoveResult
// @Router       /api/admin/orders/board/moves [post]
func (h *OrderHandler) Moves(c *fiber.Ctx) error {
	var in dto.BoardMovesRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.uc.ApplyMoves(c.UserContext(), GetUser(c), in.Moves))
}

// ChangeStatus godoc
// @Summary      Alterar status do pedido
// @Tags         admin-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "novo status"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), GetUser(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeFreight godoc
// @Summary      Alterar frete do pedido
// @Tags         admin-orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "pedido"
// @Param        body  body  dto.UpdateFreightRequest  true  "frete no formato 15,50"
// @Success      200  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/freight [patch]
func (h *OrderHandler) ChangeFreight(c *fiber.Ctx) error {
	var in dto.UpdateFreightRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody)
	}
	out, err := h.uc.ChangeFreight(c.UserContext(), GetUser(c), c.Params("id"), in.Freight)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
