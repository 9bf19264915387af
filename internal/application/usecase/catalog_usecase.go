package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/catalog"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/repository"
)

// RelatedLimit máximo de productos relacionados en el detalle.
const RelatedLimit = 3

// CatalogUseCase consultas de solo lectura sobre el catálogo: listado con
// filtros, resolución de categorías, detalle, facetas y artefactos (CSV, ficha PDF).
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	site       repository.SiteRepository
	datasheet  ports.DatasheetRenderer
	exporter   ports.CatalogExporter
}

// NewCatalogUseCase construye el caso de uso. datasheet y exporter pueden ser nil
// si el proceso no expone esos artefactos.
func NewCatalogUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	site repository.SiteRepository,
	datasheet ports.DatasheetRenderer,
	exporter ports.CatalogExporter,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:   products,
		categories: categories,
		site:       site,
		datasheet:  datasheet,
		exporter:   exporter,
	}
}

// ListProducts aplica búsqueda, grados, familias y orden. Un grado o criterio
// de orden desconocido devuelve domain.ErrInvalidInput.
func (uc *CatalogUseCase) ListProducts(q dto.ProductQuery) (*dto.ProductListResponse, error) {
	key, err := catalog.ParseSortKey(q.Sort)
	if err != nil {
		return nil, err
	}
	filter := catalog.Filter{
		Search:   q.Search,
		Families: q.Families,
	}
	for _, g := range q.Grades {
		grade, ok := entity.ParseGradeType(g)
		if !ok {
			return nil, fmt.Errorf("%w: grade %q no soportado", domain.ErrInvalidInput, g)
		}
		filter.Grades = append(filter.Grades, grade)
	}

	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	res := catalog.Apply(products, filter, key)

	applied := dto.AppliedFilters{Search: filter.Search, Families: filter.Families, Sort: string(key)}
	for _, g := range filter.Grades {
		applied.Grades = append(applied.Grades, string(g))
	}
	return &dto.ProductListResponse{
		Items:          toProductCards(res.Products),
		Total:          len(res.Products),
		FiltersApplied: res.FiltersApplied,
		Filters:        applied,
	}, nil
}

// Facets grados y familias disponibles para el filtro.
func (uc *CatalogUseCase) Facets() (*dto.FacetsResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	f := catalog.BuildFacets(products)
	grades := make([]string, 0, len(f.Grades))
	for _, g := range f.Grades {
		grades = append(grades, string(g))
	}
	return &dto.FacetsResponse{Grades: grades, Families: f.Families}, nil
}

// GetProduct detalle con categorías activas y relacionados. Un producto
// inexistente o inactivo es domain.ErrNotFound.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.ProductDetailResponse, error) {
	p, err := uc.activeProduct(id)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	cats := make([]dto.CategoryResponse, 0, len(p.CategoryIDs))
	for _, cid := range p.CategoryIDs {
		c, err := uc.categories.GetByID(cid)
		if err != nil {
			return nil, fmt.Errorf("obtener categoría: %w", err)
		}
		if c != nil && c.IsActive {
			cats = append(cats, toCategoryResponse(c))
		}
	}

	return &dto.ProductDetailResponse{
		Product:    toProductResponse(p),
		Categories: cats,
		Related:    toProductCards(catalog.Related(products, p, RelatedLimit)),
	}, nil
}

// ResolveCategory resuelve /products/{slug}[/{subSlug}].
func (uc *CatalogUseCase) ResolveCategory(slug, subSlug string) (*dto.CategoryPageResponse, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	res, err := catalog.Resolve(categories, products, slug, subSlug)
	if err != nil {
		return nil, err
	}

	out := &dto.CategoryPageResponse{
		Category:      toCategoryResponse(res.Category),
		Subcategories: toCategoryResponses(res.Subcategories),
		Products:      toProductCards(res.Products),
		Total:         len(res.Products),
	}
	if res.Subcategory != nil {
		sub := toCategoryResponse(res.Subcategory)
		out.Subcategory = &sub
	}
	return out, nil
}

// CategoryTree raíces activas con sus subcategorías activas, por SortOrder.
func (uc *CatalogUseCase) CategoryTree() (*dto.CategoryTreeResponse, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	roots := catalog.TopLevel(categories)
	nodes := make([]dto.CategoryNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, dto.CategoryNode{
			CategoryResponse: toCategoryResponse(root),
			Subcategories:    toCategoryResponses(catalog.Children(categories, root.ID)),
		})
	}
	return &dto.CategoryTreeResponse{Categories: nodes}, nil
}

// ExportCSV escribe los productos activos en w.
func (uc *CatalogUseCase) ExportCSV(w io.Writer) error {
	if uc.exporter == nil {
		return fmt.Errorf("exportador no configurado")
	}
	products, err := uc.products.List()
	if err != nil {
		return fmt.Errorf("listar productos: %w", err)
	}
	categories, err := uc.categories.List()
	if err != nil {
		return fmt.Errorf("listar categorías: %w", err)
	}
	active := catalog.Apply(products, catalog.Filter{}, catalog.SortNone).Products
	if err := uc.exporter.ExportProducts(w, active, categories); err != nil {
		return fmt.Errorf("exportar catálogo: %w", err)
	}
	return nil
}

// Datasheet genera la ficha técnica PDF. Devuelve también el nombre de archivo sugerido.
func (uc *CatalogUseCase) Datasheet(id string) ([]byte, string, error) {
	if uc.datasheet == nil {
		return nil, "", fmt.Errorf("generador de fichas no configurado")
	}
	p, err := uc.activeProduct(id)
	if err != nil {
		return nil, "", err
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, "", fmt.Errorf("listar categorías: %w", err)
	}
	site, err := uc.site.Info()
	if err != nil {
		return nil, "", fmt.Errorf("datos del sitio: %w", err)
	}
	pdf, err := uc.datasheet.RenderDatasheet(p, categories, site)
	if err != nil {
		return nil, "", fmt.Errorf("generar ficha técnica: %w", err)
	}
	return pdf, DatasheetFilename(p), nil
}

func (uc *CatalogUseCase) activeProduct(id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil || !p.IsActive {
		return nil, fmt.Errorf("%w: producto %q", domain.ErrNotFound, id)
	}
	return p, nil
}

// DatasheetFilename nombre de archivo a partir del código ("PP 500P" -> "pp-500p-datasheet.pdf").
func DatasheetFilename(p *entity.Product) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(p.Code) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = p.ID
	}
	return name + "-datasheet.pdf"
}
