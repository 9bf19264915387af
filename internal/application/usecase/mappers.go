package usecase

import (
	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

func toProductCard(p *entity.Product) dto.ProductCard {
	return dto.ProductCard{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Family:       p.Family,
		GradeType:    string(p.GradeType),
		Summary:      p.Summary(),
		Applications: nonNil(p.Applications),
		IsFeatured:   p.IsFeatured,
	}
}

func toProductCards(products []*entity.Product) []dto.ProductCard {
	out := make([]dto.ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, toProductCard(p))
	}
	return out
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	props := make([]dto.PropertyResponse, 0, len(p.Properties))
	for _, prop := range p.Properties {
		props = append(props, dto.PropertyResponse{Name: prop.Name, Value: prop.Value})
	}
	return dto.ProductResponse{
		ID:               p.ID,
		Code:             p.Code,
		Name:             p.Name,
		Family:           p.Family,
		GradeType:        string(p.GradeType),
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Properties:       props,
		Applications:     nonNil(p.Applications),
		CategoryIDs:      nonNil(p.CategoryIDs),
		IsFeatured:       p.IsFeatured,
		CreatedAt:        p.CreatedAt,
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		SortOrder:   c.SortOrder,
	}
}

func toCategoryResponses(categories []*entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toBlogCard(p *entity.BlogPost) dto.BlogPostCard {
	return dto.BlogPostCard{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		CoverURL:    p.CoverURL,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		Tags:        nonNil(p.Tags),
	}
}

func toUSPResponses(usps []entity.USP) []dto.USPResponse {
	out := make([]dto.USPResponse, 0, len(usps))
	for _, u := range usps {
		out = append(out, dto.USPResponse{Title: u.Title, Description: u.Description, Icon: u.Icon})
	}
	return out
}

// nonNil evita "null" en el JSON para listas vacías.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
