package repository

import "github.com/jhoicas/perfectpolymers-api/internal/domain/entity"

// CategoryRepository define el puerto de lectura para Category (DIP).
type CategoryRepository interface {
	// GetByID devuelve (nil, nil) si la categoría no existe.
	GetByID(id string) (*entity.Category, error)
	// List devuelve raíces y subcategorías, activas o no, en el orden del origen de datos.
	List() ([]*entity.Category, error)
}
