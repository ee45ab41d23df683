package dto

import "time"

// CategoryRequest criação e renomeação.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// SubcategoryRequest adicionar ou remover subcategoria.
type SubcategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoria com subcategorias.
type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Subcategories []string  `json:"subcategories"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
