package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/portal-b2b/internal/application/dto"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/internal/domain/entity"
	"github.com/jhoicas/portal-b2b/internal/domain/repository"
)

// CategoryUseCase categorias e subcategorias.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, now: time.Now}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryFromEntity(c))
	}
	return out, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "Informe o nome da categoria.")
	}
	now := uc.now()
	c := &entity.Category{ID: uuid.NewString(), Name: name, Subcategories: []string{}, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.CategoryFromEntity(c)
	return &out, nil
}

// Rename troca o nome mantendo as subcategorias.
func (uc *CategoryUseCase) Rename(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "Informe o nome da categoria.")
	}
	return uc.mutate(ctx, id, func(c *entity.Category) bool {
		if c.Name == name {
			return false
		}
		c.Name = name
		return true
	})
}

// Delete remove a categoria; os produtos ficam sem categoria.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// AddSubcategory nome vazio é recusado; repetido é ignorado.
func (uc *CategoryUseCase) AddSubcategory(ctx context.Context, id, name string) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("name", "Informe o nome da subcategoria.")
	}
	return uc.mutate(ctx, id, func(c *entity.Category) bool { return c.AddSubcategory(name) })
}

func (uc *CategoryUseCase) RemoveSubcategory(ctx context.Context, id, name string) (*dto.CategoryResponse, error) {
	return uc.mutate(ctx, id, func(c *entity.Category) bool { return c.RemoveSubcategory(name) })
}

// mutate só grava quando fn indica mudança.
func (uc *CategoryUseCase) mutate(ctx context.Context, id string, fn func(*entity.Category) bool) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if fn(c) {
		c.UpdatedAt = uc.now()
		if err := uc.repo.Update(ctx, c); err != nil {
			return nil, err
		}
	}
	out := dto.CategoryFromEntity(c)
	return &out, nil
}
