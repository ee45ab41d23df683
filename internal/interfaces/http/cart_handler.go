package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ordering"
)

// HeaderIdempotencyKey chave que torna o checkout idempotente.
const HeaderIdempotencyKey = "Idempotency-Key"

// CartHandler carrinho e fechamento do pedido.
type CartHandler struct {
	cart     *ordering.CartUseCase
	checkout *ordering.CheckoutUseCase
}

// NewCartHandler constrói o handler.
func NewCartHandler(cart *ordering.CartUseCase, checkout *ordering.CheckoutUseCase) *CartHandler {
	return &CartHandler{cart: cart, checkout: checkout}
}

// Get godoc
// @Summary      Meu carrinho
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/app/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.cart.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Adicionar produto ao carrinho
// @Description  Soma à linha existente; respeita quantidade mínima e múltiplo de venda.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "produto e quantidade"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/app/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody)
	}
	if in.ProductID == "" {
		return respondError(c, validateStruct(&in))
	}
	out, err := h.cart.AddItem(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Alterar quantidade de uma linha
// @Description  Quantidade zero ou negativa remove a linha.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        productId  path  string                     true  "produto"
// @Param        body       body  dto.UpdateCartItemRequest  true  "quantidade"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/app/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody)
	}
	out, err := h.cart.UpdateItem(c.UserContext(), GetUserID(c), c.Params("productId"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Remover linha do carrinho
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Param        productId  path  string  true  "produto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/app/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.cart.RemoveItem(c.UserContext(), GetUserID(c), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Esvaziar carrinho
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Router       /api/app/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.cart.Clear(c.UserContext(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Fechar pedido
// @Description  Converte o carrinho em pedido. Repetir a mesma Idempotency-Key devolve o pedido já criado.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string               false  "chave de idempotência"
// @Param        body             body    dto.CheckoutRequest  true   "frete, CEP e observações"
// @Success      201  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/app/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return respondError(c, errInvalidBody)
		}
	}
	out, err := h.checkout.Checkout(c.UserContext(), GetUser(c), c.Get(HeaderIdempotencyKey), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
