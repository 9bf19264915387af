// Package catalog contiene la lógica pura de consulta del catálogo: filtrado y
// ordenamiento de productos, resolución de categorías y validación de la
// consistencia del catálogo sembrado. No hace I/O ni mantiene estado.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// SortKey criterio de orden del listado.
type SortKey string

const (
	SortNone   SortKey = ""       // orden del catálogo
	SortName   SortKey = "name"   // por código, lexicográfico
	SortFamily SortKey = "family" // por familia, lexicográfico
	SortGrade  SortKey = "grade"  // por grado, lexicográfico
	SortNewest SortKey = "newest" // por fecha de creación descendente
)

// ParseSortKey valida el criterio recibido en la query. Vacío equivale a SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNone, SortName, SortFamily, SortGrade, SortNewest:
		return k, nil
	default:
		return SortNone, fmt.Errorf("%w: sort %q no soportado", domain.ErrInvalidInput, s)
	}
}

// Filter predicados del listado. Los conjuntos vacíos aceptan todo.
type Filter struct {
	Search   string
	Grades   []entity.GradeType
	Families []string
}

// IsZero indica que no hay ningún predicado aplicado. Una búsqueda de solo
// espacios es un predicado: coincide con códigos como "PP 500P".
func (f Filter) IsZero() bool {
	return f.Search == "" && len(f.Grades) == 0 && len(f.Families) == 0
}

// Result productos que cumplen el filtro, ya ordenados.
// FiltersApplied distingue un resultado vacío de "sin filtros".
type Result struct {
	Products       []*entity.Product
	FiltersApplied bool
}

// Apply filtra y ordena products. Los inactivos nunca forman parte del resultado.
// El orden es estable: los empates conservan el orden original.
func Apply(products []*entity.Product, f Filter, key SortKey) Result {
	fold := cases.Fold()
	search := fold.String(f.Search)

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil || !p.IsActive {
			continue
		}
		if search != "" && !matchesSearch(fold, p, search) {
			continue
		}
		if len(f.Grades) > 0 && !slices.Contains(f.Grades, p.GradeType) {
			continue
		}
		if len(f.Families) > 0 && !slices.Contains(f.Families, p.Family) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, key)
	return Result{Products: out, FiltersApplied: !f.IsZero()}
}

func matchesSearch(fold cases.Caser, p *entity.Product, search string) bool {
	return strings.Contains(fold.String(p.Code), search) ||
		(p.Name != "" && strings.Contains(fold.String(p.Name), search)) ||
		strings.Contains(fold.String(p.Family), search)
}

func sortProducts(products []*entity.Product, key SortKey) {
	if key == SortNone || len(products) < 2 {
		return
	}
	// collate.Collator no es seguro entre goroutines: uno por llamada.
	col := collate.New(language.English)
	switch key {
	case SortName:
		slices.SortStableFunc(products, func(a, b *entity.Product) int {
			return col.CompareString(a.Code, b.Code)
		})
	case SortFamily:
		slices.SortStableFunc(products, func(a, b *entity.Product) int {
			return col.CompareString(a.Family, b.Family)
		})
	case SortGrade:
		slices.SortStableFunc(products, func(a, b *entity.Product) int {
			return col.CompareString(string(a.GradeType), string(b.GradeType))
		})
	case SortNewest:
		slices.SortStableFunc(products, func(a, b *entity.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

// Facets opciones de filtro del listado.
type Facets struct {
	Grades   []entity.GradeType
	Families []string
}

// BuildFacets devuelve los grados en orden canónico y las familias de los
// productos activos, sin duplicados y ordenadas.
func BuildFacets(products []*entity.Product) Facets {
	seen := make(map[string]struct{})
	families := make([]string, 0)
	for _, p := range products {
		if p == nil || !p.IsActive {
			continue
		}
		if _, ok := seen[p.Family]; ok {
			continue
		}
		seen[p.Family] = struct{}{}
		families = append(families, p.Family)
	}
	slices.Sort(families)
	return Facets{
		Grades:   slices.Clone(entity.GradeTypes),
		Families: families,
	}
}
