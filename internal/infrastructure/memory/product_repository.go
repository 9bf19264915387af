package memory

import (
	"slices"

	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/repository"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la instantánea sembrada.
// Solo lectura: seguro entre goroutines sin bloqueos.
type ProductRepo struct {
	products []*entity.Product
	byID     map[string]*entity.Product
}

// NewProductRepository construye el adaptador a partir del catálogo cargado.
func NewProductRepository(cat *seed.Catalog) *ProductRepo {
	byID := make(map[string]*entity.Product, len(cat.Products))
	for _, p := range cat.Products {
		byID[p.ID] = p
	}
	return &ProductRepo{products: cat.Products, byID: byID}
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

// List devuelve una copia del slice; las entidades se comparten.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return slices.Clone(r.products), nil
}
