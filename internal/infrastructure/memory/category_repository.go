package memory

import (
	"slices"

	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/repository"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	categories []*entity.Category
	byID       map[string]*entity.Category
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(cat *seed.Catalog) *CategoryRepo {
	byID := make(map[string]*entity.Category, len(cat.Categories))
	for _, c := range cat.Categories {
		byID[c.ID] = c
	}
	return &CategoryRepo{categories: cat.Categories, byID: byID}
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	return slices.Clone(r.categories), nil
}
