package repository

import "github.com/jhoicas/perfectpolymers-api/internal/domain/entity"

// BlogRepository define el puerto de lectura para los artículos del blog.
type BlogRepository interface {
	GetBySlug(slug string) (*entity.BlogPost, error)
	List() ([]*entity.BlogPost, error)
}
