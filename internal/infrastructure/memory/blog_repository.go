package memory

import (
	"slices"

	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/repository"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

var _ repository.BlogRepository = (*BlogRepo)(nil)

// BlogRepo artículos del blog en memoria, indexados por slug.
type BlogRepo struct {
	posts  []*entity.BlogPost
	bySlug map[string]*entity.BlogPost
}

// NewBlogRepository construye el adaptador.
func NewBlogRepository(cat *seed.Catalog) *BlogRepo {
	bySlug := make(map[string]*entity.BlogPost, len(cat.Posts))
	for _, p := range cat.Posts {
		bySlug[p.Slug] = p
	}
	return &BlogRepo{posts: cat.Posts, bySlug: bySlug}
}

// GetBySlug devuelve (nil, nil) si no existe.
func (r *BlogRepo) GetBySlug(slug string) (*entity.BlogPost, error) {
	p, ok := r.bySlug[slug]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *BlogRepo) List() ([]*entity.BlogPost, error) {
	return slices.Clone(r.posts), nil
}
