package usecase

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/catalog"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/repository"
)

// SiteUseCase contenido institucional: portada, contacto, opciones de formularios y sitemap.
type SiteUseCase struct {
	site       repository.SiteRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	blog       repository.BlogRepository
	sitemap    ports.SitemapRenderer
	baseURL    string
}

// NewSiteUseCase construye el caso de uso. baseURL es la URL pública del sitio (sin "/" final).
func NewSiteUseCase(
	site repository.SiteRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	blog repository.BlogRepository,
	sitemap ports.SitemapRenderer,
	baseURL string,
) *SiteUseCase {
	return &SiteUseCase{
		site:       site,
		products:   products,
		categories: categories,
		blog:       blog,
		sitemap:    sitemap,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Home productos destacados activos, categorías raíz activas y USPs.
func (uc *SiteUseCase) Home() (*dto.HomeResponse, error) {
	info, err := uc.site.Info()
	if err != nil {
		return nil, fmt.Errorf("datos del sitio: %w", err)
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}

	featured := make([]*entity.Product, 0)
	for _, p := range catalog.Apply(products, catalog.Filter{}, catalog.SortNone).Products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return &dto.HomeResponse{
		CompanyName: info.CompanyName,
		Featured:    toProductCards(featured),
		Categories:  toCategoryResponses(catalog.TopLevel(categories)),
		USPs:        toUSPResponses(info.USPs),
	}, nil
}

// Info datos de contacto de la empresa.
func (uc *SiteUseCase) Info() (*dto.SiteResponse, error) {
	info, err := uc.site.Info()
	if err != nil {
		return nil, fmt.Errorf("datos del sitio: %w", err)
	}
	return &dto.SiteResponse{
		CompanyName:   info.CompanyName,
		Address:       nonNil(info.Address),
		Phones:        nonNil(info.Phones),
		Emails:        nonNil(info.Emails),
		BusinessHours: nonNil(info.BusinessHours),
		USPs:          toUSPResponses(info.USPs),
	}, nil
}

// ContactTopics los ocho temas del formulario de contacto.
func (uc *SiteUseCase) ContactTopics() *dto.ContactTopicsResponse {
	return &dto.ContactTopicsResponse{Topics: slices.Clone(entity.ContactTopics)}
}

// RFQOptions grados y unidades admitidos en las líneas de una RFQ.
func (uc *SiteUseCase) RFQOptions() *dto.RFQOptionsResponse {
	grades := make([]string, 0, len(entity.GradeTypes))
	for _, g := range entity.GradeTypes {
		grades = append(grades, string(g))
	}
	return &dto.RFQOptionsResponse{
		GradeTypes:  grades,
		Units:       slices.Clone(entity.QuoteUnits),
		DefaultUnit: entity.DefaultQuoteUnit,
	}
}

// SitemapEntries páginas estáticas, categorías y subcategorías activas,
// productos activos y artículos publicados.
func (uc *SiteUseCase) SitemapEntries() ([]ports.SitemapEntry, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	posts, err := uc.blog.List()
	if err != nil {
		return nil, fmt.Errorf("listar artículos: %w", err)
	}

	entries := []ports.SitemapEntry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/products", ChangeFreq: "weekly", Priority: 0.9},
		{Path: "/rfq", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/contact", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/blog", ChangeFreq: "weekly", Priority: 0.6},
	}
	for _, root := range catalog.TopLevel(categories) {
		entries = append(entries, ports.SitemapEntry{Path: "/products/" + root.Slug, ChangeFreq: "weekly", Priority: 0.8})
		for _, sub := range catalog.Children(categories, root.ID) {
			entries = append(entries, ports.SitemapEntry{Path: "/products/" + root.Slug + "/" + sub.Slug, ChangeFreq: "weekly", Priority: 0.7})
		}
	}
	for _, p := range catalog.Apply(products, catalog.Filter{}, catalog.SortNone).Products {
		entries = append(entries, ports.SitemapEntry{Path: "/product/" + p.ID, LastMod: p.CreatedAt, ChangeFreq: "monthly", Priority: 0.7})
	}
	var latest time.Time
	for _, p := range posts {
		if !p.IsPublished {
			continue
		}
		if p.PublishedAt.After(latest) {
			latest = p.PublishedAt
		}
		entries = append(entries, ports.SitemapEntry{Path: "/blog/" + p.Slug, LastMod: p.PublishedAt, ChangeFreq: "yearly", Priority: 0.5})
	}
	for i := range entries {
		if entries[i].Path == "/blog" {
			entries[i].LastMod = latest
		}
	}
	return entries, nil
}

// Sitemap documento sitemap.xml listo para servir.
func (uc *SiteUseCase) Sitemap() ([]byte, error) {
	if uc.sitemap == nil {
		return nil, fmt.Errorf("generador de sitemap no configurado")
	}
	entries, err := uc.SitemapEntries()
	if err != nil {
		return nil, err
	}
	out, err := uc.sitemap.RenderSitemap(uc.baseURL, entries)
	if err != nil {
		return nil, fmt.Errorf("generar sitemap: %w", err)
	}
	return out, nil
}
