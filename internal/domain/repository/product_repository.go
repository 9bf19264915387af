package repository

import "github.com/jhoicas/perfectpolymers-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
// El catálogo es inmutable: no hay operaciones de escritura.
type ProductRepository interface {
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos (activos e inactivos) en el orden del origen de datos.
	List() ([]*entity.Product, error)
}
