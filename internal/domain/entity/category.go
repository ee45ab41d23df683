package entity

import (
	"strings"
	"time"
)

// Category categoria de produtos; as subcategorias são apenas nomes embutidos.
type Category struct {
	ID            string
	Name          string
	Subcategories []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AddSubcategory acrescenta o nome (sem espaços nas pontas).
// Devolve false para nome vazio ou já existente.
func (c *Category) AddSubcategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, s := range c.Subcategories {
		if s == name {
			return false
		}
	}
	c.Subcategories = append(c.Subcategories, name)
	return true
}

// RemoveSubcategory remove todas as ocorrências do nome. Devolve false se nada mudou.
func (c *Category) RemoveSubcategory(name string) bool {
	kept := c.Subcategories[:0:0]
	for _, s := range c.Subcategories {
		if s != name {
			kept = append(kept, s)
		}
	}
	changed := len(kept) != len(c.Subcategories)
	c.Subcategories = kept
	return changed
}
