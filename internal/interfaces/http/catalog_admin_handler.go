package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/usecase"
)

// CategoryHandler categorias e subcategorias.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorias
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/admin/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar categoria
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "nome"
// @Success      201  {object}  dto.CategoryResponse
// @Router       /api/admin/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renomear categoria
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "categoria"
// @Param        body  body  dto.CategoryRequest  true  "nome"
// @Success      200  {object}  dto.CategoryResponse
// @Router       /api/admin/categories/{id} [put]
func (h *CategoryHandler) Rename(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Rename(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir categoria
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  string  true  "categoria"
// @Success      204
// @Router       /api/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddSubcategory godoc
// @Summary      Adicionar subcategoria
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "categoria"
// @Param        body  body  dto.SubcategoryRequest  true  "nome"
// @Success      200  {object}  dto.CategoryResponse
// @Router       /api/admin/categories/{id}/subcategories [post]
func (h *CategoryHandler) AddSubcategory(c *fiber.Ctx) error {
	var in dto.SubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, errInvalidBody)
	}
	out, err := h.uc.AddSubcategory(c.UserContext(), c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveSubcategory godoc
// @Summary      Remover subcategoria
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Param        id    path  string  true  "categoria"
// @Param        name  path  string  true  "subcategoria"
// @Success      200  {object}  dto.CategoryResponse
// @Router       /api/admin/categories/{id}/subcategories/{name} [delete]
func (h *CategoryHandler) RemoveSubcategory(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return respondError(c, errInvalidBody)
	}
	out, err := h.uc.RemoveSubcategory(c.UserContext(), c.Params("id"), name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SettingsHandler listas de opções (tabelas de preço, pagamentos, transportadoras).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configurações
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/admin/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddOption godoc
// @Summary      Adicionar opção
// @Tags         settings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        list  path  string                true  "priceTables | paymentMethods | carriers"
// @Param        body  body  dto.AddOptionRequest  true  "rótulo"
// @Success      201  {object}  dto.SettingsResponse
// @Router       /api/admin/settings/{list}/options [post]
func (h *SettingsHandler) AddOption(c *fiber.Ctx) error {
	var in dto.AddOptionRequest
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AddOption(c.UserContext(), c.Params("list"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ToggleOption godoc
// @Summary      Ativar ou desativar opção
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        list      path  string  true  "lista"
// @Param        optionId  path  string  true  "opção"
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/admin/settings/{list}/options/{optionId}/toggle [patch]
func (h *SettingsHandler) ToggleOption(c *fiber.Ctx) error {
	out, err := h.uc.ToggleOption(c.UserContext(), c.Params("list"), c.Params("optionId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Opções selecionáveis
// @Description  Opções ativas mais a selecionada, mesmo inativa.
// @Tags         settings
// @Security     BearerAuth
// @Produce      json
// @Param        list      query  string  true   "lista"
// @Param        selected  query  string  false  "id atualmente selecionado"
// @Success      200  {object}  dto.OptionsResponse
// @Router       /api/settings/options [get]
func (h *SettingsHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.Options(c.UserContext(), c.Query("list"), c.Query("selected"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
