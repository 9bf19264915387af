package usecase

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/repository"
)

// BlogUseCase consultas del blog. Solo se exponen artículos publicados.
type BlogUseCase struct {
	repo repository.BlogRepository
}

func NewBlogUseCase(repo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{repo: repo}
}

// List busca en título, extracto y autor (sin distinguir mayúsculas) y filtra por
// etiqueta exacta. Orden: más reciente primero.
func (uc *BlogUseCase) List(q dto.BlogQuery) (*dto.BlogListResponse, error) {
	posts, err := uc.published()
	if err != nil {
		return nil, err
	}
	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(q.Search))
	tag := strings.TrimSpace(q.Tag)

	items := make([]dto.BlogPostCard, 0, len(posts))
	for _, p := range posts {
		if search != "" &&
			!strings.Contains(fold.String(p.Title), search) &&
			!strings.Contains(fold.String(p.Excerpt), search) &&
			!strings.Contains(fold.String(p.Author), search) {
			continue
		}
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		items = append(items, toBlogCard(p))
	}
	return &dto.BlogListResponse{
		Items:          items,
		Total:          len(items),
		FiltersApplied: search != "" || tag != "",
	}, nil
}

// Tags etiquetas de los artículos publicados, ordenadas, con su número de artículos.
func (uc *BlogUseCase) Tags() (*dto.BlogTagsResponse, error) {
	posts, err := uc.published()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, p := range posts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}
	slices.Sort(tags)

	out := make([]dto.TagCount, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagCount{Tag: t, Count: counts[t]})
	}
	return &dto.BlogTagsResponse{Tags: out}, nil
}

// GetBySlug artículo publicado; en otro caso domain.ErrNotFound.
func (uc *BlogUseCase) GetBySlug(slug string) (*dto.BlogPostResponse, error) {
	p, err := uc.repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("obtener artículo: %w", err)
	}
	if p == nil || !p.IsPublished {
		return nil, fmt.Errorf("%w: artículo %q", domain.ErrNotFound, slug)
	}
	return &dto.BlogPostResponse{BlogPostCard: toBlogCard(p), Content: p.Content}, nil
}

func (uc *BlogUseCase) published() ([]*entity.BlogPost, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar artículos: %w", err)
	}
	out := make([]*entity.BlogPost, 0, len(all))
	for _, p := range all {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.BlogPost) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})
	return out, nil
}
