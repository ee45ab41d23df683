package http

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/usecase"
	"github.com/jhoicas/portal-b2b/internal/domain"
)

// MaxImageSize limite por arquivo no upload de imagens.
const MaxImageSize = 5 << 20

// ProductHandler catálogo (cliente) e CRUD de produtos (back-office).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler de produtos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo
// @Description  Só produtos ativos.
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Param        categoryId  query  string  false  "categoria"
// @Param        search      query  string  false  "nome ou descrição"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/app/products [get]
func (h *ProductHandler) Catalog(c *fiber.Ctx) error {
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, errInvalidBody)
	}
	out, err := h.uc.Catalog(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CatalogGet godoc
// @Summary      Produto do catálogo
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/app/products/{id} [get]
func (h *ProductHandler) CatalogGet(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"), true)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar produtos
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/admin/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe do produto
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"), false)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar produto
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "produto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
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
// @Summary      Editar produto
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "produto"
// @Param        body  body  dto.ProductRequest  true  "produto"
// @Success      200  {object}  dto.ProductResponse
// @Router       /api/admin/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
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
// @Summary      Excluir produto
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "produto"
// @Success      204
// @Router       /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadImages godoc
// @Summary      Enviar imagens
// @Description  multipart/form-data com um ou mais campos "files"; devolve as URLs públicas.
// @Tags         products
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "imagens"
// @Success      201  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/admin/products/images [post]
func (h *ProductHandler) UploadImages(c *fiber.Ctx) error {
	files, closeAll, err := imageUploads(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeAll()
	urls, err := h.uc.UploadImages(c.UserContext(), files)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URLs: urls})
}

// AttachImages godoc
// @Summary      Acrescentar imagens ao produto
// @Tags         products
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "produto"
// @Param        files  formData  file    true  "imagens"
// @Success      200  {object}  dto.ProductResponse
// @Router       /api/admin/products/{id}/images [post]
func (h *ProductHandler) AttachImages(c *fiber.Ctx) error {
	files, closeAll, err := imageUploads(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeAll()
	out, err := h.uc.AttachImages(c.UserContext(), c.Params("id"), files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// imageUploads abre os arquivos "files" do multipart; closeAll fecha todos.
func imageUploads(c *fiber.Ctx) ([]usecase.ImageUpload, func(), error) {
	noop := func() {}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, errInvalidBody
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return nil, noop, domain.NewValidationError("files", "Selecione ao menos uma imagem.")
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	uploads := make([]usecase.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		ct := fh.Header.Get(fiber.HeaderContentType)
		if !strings.HasPrefix(ct, "image/") {
			closeAll()
			return nil, noop, domain.NewValidationError("files", "Apenas arquivos de imagem são permitidos.")
		}
		if fh.Size > MaxImageSize {
			closeAll()
			return nil, noop, domain.NewValidationError("files", "Cada imagem deve ter no máximo 5 MB.")
		}
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		opened = append(opened, f)
		uploads = append(uploads, usecase.ImageUpload{
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Body:        io.Reader(f),
		})
	}
	return uploads, closeAll, nil
}
