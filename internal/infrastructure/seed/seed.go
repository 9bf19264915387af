// Package seed carga el catálogo estático (categorías, productos, blog y datos
// institucionales) desde catalog.yaml, incrustado en el binario.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/perfectpolymers-api/internal/domain/catalog"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

//go:embed catalog.yaml
var catalogYAML []byte

const dateLayout = "2006-01-02"

// Catalog instantánea inmutable del catálogo. No modificar las entidades devueltas.
type Catalog struct {
	Version    string
	Site       *entity.SiteInfo
	Categories []*entity.Category
	Products   []*entity.Product
	Posts      []*entity.BlogPost
}

// ── Esquema YAML ──────────────────────────────────────────────────────────────

type fileDoc struct {
	Version    string        `yaml:"version"`
	Site       siteDoc       `yaml:"site"`
	Categories []categoryDoc `yaml:"categories"`
	Products   []productDoc  `yaml:"products"`
	Posts      []postDoc     `yaml:"blog_posts"`
}

type siteDoc struct {
	CompanyName   string   `yaml:"company_name"`
	Address       []string `yaml:"address"`
	Phones        []string `yaml:"phones"`
	Emails        []string `yaml:"emails"`
	BusinessHours []string `yaml:"business_hours"`
	USPs          []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Icon        string `yaml:"icon"`
	} `yaml:"usps"`
}

type categoryDoc struct {
	ID          string `yaml:"id"`
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	ParentID    string `yaml:"parent_id"`
	SortOrder   int    `yaml:"sort_order"`
	IsActive    bool   `yaml:"is_active"`
}

type productDoc struct {
	ID               string    `yaml:"id"`
	Code             string    `yaml:"code"`
	Name             string    `yaml:"name"`
	Family           string    `yaml:"family"`
	GradeType        string    `yaml:"grade_type"`
	ShortDescription string    `yaml:"short_description"`
	Description      string    `yaml:"description"`
	Properties       yaml.Node `yaml:"properties"` // nodo crudo para conservar el orden de las claves
	Applications     []string  `yaml:"applications"`
	CategoryIDs      []string  `yaml:"category_ids"`
	IsFeatured       bool      `yaml:"is_featured"`
	IsActive         bool      `yaml:"is_active"`
	CreatedAt        string    `yaml:"created_at"`
}

type postDoc struct {
	ID          string   `yaml:"id"`
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Excerpt     string   `yaml:"excerpt"`
	Content     string   `yaml:"content"`
	CoverURL    string   `yaml:"cover_url"`
	Author      string   `yaml:"author"`
	PublishedAt string   `yaml:"published_at"`
	Tags        []string `yaml:"tags"`
	IsPublished bool     `yaml:"is_published"`
}

// ── Carga ─────────────────────────────────────────────────────────────────────

// Load parsea y valida el catálogo incrustado.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse parsea un documento de catálogo y verifica sus invariantes.
func Parse(data []byte) (*Catalog, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("seed: parsear yaml: %w", err)
	}

	out := &Catalog{
		Version:    doc.Version,
		Site:       toSite(doc.Site),
		Categories: make([]*entity.Category, 0, len(doc.Categories)),
		Products:   make([]*entity.Product, 0, len(doc.Products)),
		Posts:      make([]*entity.BlogPost, 0, len(doc.Posts)),
	}
	for _, c := range doc.Categories {
		out.Categories = append(out.Categories, &entity.Category{
			ID:          c.ID,
			Slug:        c.Slug,
			Name:        c.Name,
			Description: c.Description,
			ParentID:    c.ParentID,
			SortOrder:   c.SortOrder,
			IsActive:    c.IsActive,
		})
	}
	for _, p := range doc.Products {
		product, err := toProduct(p)
		if err != nil {
			return nil, err
		}
		out.Products = append(out.Products, product)
	}
	for _, p := range doc.Posts {
		published, err := time.Parse(dateLayout, p.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("seed: post %s: published_at: %w", p.ID, err)
		}
		out.Posts = append(out.Posts, &entity.BlogPost{
			ID:          p.ID,
			Slug:        p.Slug,
			Title:       p.Title,
			Excerpt:     p.Excerpt,
			Content:     p.Content,
			CoverURL:    p.CoverURL,
			Author:      p.Author,
			PublishedAt: published,
			Tags:        p.Tags,
			IsPublished: p.IsPublished,
		})
	}

	if err := catalog.Validate(out.Categories, out.Products); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return out, nil
}

func toSite(s siteDoc) *entity.SiteInfo {
	info := &entity.SiteInfo{
		CompanyName:   s.CompanyName,
		Address:       s.Address,
		Phones:        s.Phones,
		Emails:        s.Emails,
		BusinessHours: s.BusinessHours,
		USPs:          make([]entity.USP, 0, len(s.USPs)),
	}
	for _, u := range s.USPs {
		info.USPs = append(info.USPs, entity.USP{Title: u.Title, Description: u.Description, Icon: u.Icon})
	}
	return info
}

func toProduct(p productDoc) (*entity.Product, error) {
	created, err := time.Parse(dateLayout, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("seed: producto %s: created_at: %w", p.ID, err)
	}
	props, err := decodeProperties(&p.Properties)
	if err != nil {
		return nil, fmt.Errorf("seed: producto %s: %w", p.ID, err)
	}
	// El grado se guarda tal cual; catalog.Validate rechaza valores fuera del conjunto.
	grade := entity.GradeType(p.GradeType)
	if parsed, ok := entity.ParseGradeType(p.GradeType); ok {
		grade = parsed
	}
	return &entity.Product{
		ID:               p.ID,
		Code:             p.Code,
		Name:             p.Name,
		Family:           p.Family,
		GradeType:        grade,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Properties:       props,
		Applications:     p.Applications,
		CategoryIDs:      p.CategoryIDs,
		IsFeatured:       p.IsFeatured,
		IsActive:         p.IsActive,
		CreatedAt:        created,
	}, nil
}

// decodeProperties recorre el mapping en orden de aparición.
func decodeProperties(n *yaml.Node) ([]entity.Property, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("properties debe ser un mapping (línea %d)", n.Line)
	}
	props := make([]entity.Property, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var value any
		if err := n.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("propiedad %q: %w", n.Content[i].Value, err)
		}
		props = append(props, entity.Property{Name: n.Content[i].Value, Value: value})
	}
	return props, nil
}
