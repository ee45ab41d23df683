package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/jhoicas/portal-b2b/pkg/logger"
)

// ImageUpload arquivo recebido no upload de imagens de produto.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ProductUseCase catálogo: CRUD do back-office, vitrine do cliente e imagens.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	storage    ports.BlobStorage // nil quando o upload não está configurado
	log        *logger.Logger
	now        func() time.Time
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, storage ports.BlobStorage, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, storage: storage, log: log.Component("products"), now: time.Now}
}

// List todos os produtos, com o nome da categoria.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return uc.withCategoryNames(ctx, list)
}

// Catalog produtos ativos, opcionalmente de uma categoria, com busca sem acento e sem caixa.
func (uc *ProductUseCase) Catalog(ctx context.Context, q dto.CatalogQuery) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx, repository.ProductFilter{Status: entity.ProductStatusAtivo, CategoryID: q.CategoryID})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(q.Search) != "" {
		matched := list[:0:0]
		for _, p := range list {
			if br.ContainsFold(p.Name, q.Search) {
				matched = append(matched, p)
			}
		}
		list = matched
	}
	return uc.withCategoryNames(ctx, list)
}

// Get produto por id. onlyActive esconde inativos (vitrine do cliente).
func (uc *ProductUseCase) Get(ctx context.Context, id string, onlyActive bool) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if onlyActive && !p.IsActive() {
		return nil, domain.ErrNotFound
	}
	out := dto.ProductFromEntity(p, uc.categoryName(ctx, p.CategoryID))
	return &out, nil
}

// Create cadastra o produto aplicando os defaults (mínimo 1, múltiplo 1, ativo).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	p := &entity.Product{ID: uuid.NewString(), CreatedAt: now}
	uc.apply(p, in, now)
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(p, uc.categoryName(ctx, p.CategoryID))
	return &out, nil
}

// Update sobrescreve o produto. Images nil mantém as imagens atuais.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.apply(p, in, uc.now())
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(p, uc.categoryName(ctx, p.CategoryID))
	return &out, nil
}

// Delete remove o produto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// UploadImages envia as imagens e devolve as URLs públicas, na ordem recebida.
func (uc *ProductUseCase) UploadImages(ctx context.Context, files []ImageUpload) ([]string, error) {
	if uc.storage == nil {
		return nil, domain.ErrUnavailable
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("files", "Selecione ao menos uma imagem.")
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		key := ImageKey(uc.now(), f.Filename)
		url, err := uc.storage.Upload(ctx, key, f.ContentType, f.Body, f.Size)
		if err != nil {
			return nil, fmt.Errorf("upload de %s: %w", f.Filename, err)
		}
		urls = append(urls, url)
	}
	uc.log.Info().Int("count", len(urls)).Msg("imagens de produto enviadas")
	return urls, nil
}

// AttachImages envia as imagens e as acrescenta às já existentes do produto.
func (uc *ProductUseCase) AttachImages(ctx context.Context, id string, files []ImageUpload) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	urls, err := uc.UploadImages(ctx, files)
	if err != nil {
		return nil, err
	}
	p.Images = append(p.Images, urls...)
	p.UpdatedAt = uc.now()
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ProductFromEntity(p, uc.categoryName(ctx, p.CategoryID))
	return &out, nil
}

// ImageKey chave do objeto: products/<unix millis>_<nome sanitizado>.
func ImageKey(now time.Time, filename string) string {
	return "products/" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + sanitizeFilename(filename)
}

func sanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if clean == "" {
		return "imagem"
	}
	return clean
}

func validateProduct(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CategoryID) == "" {
		return domain.NewValidationError("", "Preencha os campos obrigatórios (Nome, Categoria).")
	}
	if in.BasePrice.IsNegative() {
		return domain.NewValidationError("basePrice", "O preço não pode ser negativo.")
	}
	return nil
}

func (uc *ProductUseCase) apply(p *entity.Product, in dto.ProductRequest, now time.Time) {
	p.Name = strings.TrimSpace(in.Name)
	p.CategoryID = strings.TrimSpace(in.CategoryID)
	p.Subcategory = strings.TrimSpace(in.Subcategory)
	p.Description = in.Description
	if in.Images != nil {
		p.Images = append([]string{}, in.Images...)
	}
	p.MinQty = in.MinQty
	if p.MinQty < 1 {
		p.MinQty = 1
	}
	p.SaleMultiple = in.SaleMultiple
	if p.SaleMultiple < 1 {
		p.SaleMultiple = 1
	}
	p.BasePrice = in.BasePrice
	p.Status = in.Status
	if p.Status == "" {
		p.Status = entity.ProductStatusAtivo
	}
	p.Variations = make([]entity.Variation, 0, len(in.Variations))
	for _, v := range in.Variations {
		sku := strings.TrimSpace(v.SKU)
		if sku == "" {
			sku = generatedSKU(now)
		}
		p.Variations = append(p.Variations, entity.Variation{Name: strings.TrimSpace(v.Name), SKU: sku})
	}
	p.UpdatedAt = now
}

// generatedSKU SKU-<últimos 4 dígitos do unix millis>.
func generatedSKU(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 4 {
		ms = ms[len(ms)-4:]
	}
	return "SKU-" + ms
}

func (uc *ProductUseCase) load(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProductUseCase) categoryName(ctx context.Context, id string) string {
	if id == "" {
		return ""
	}
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil || c == nil {
		return ""
	}
	return c.Name
}

func (uc *ProductUseCase) withCategoryNames(ctx context.Context, list []*entity.Product) ([]dto.ProductResponse, error) {
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductFromEntity(p, names[p.CategoryID]))
	}
	return out, nil
}
