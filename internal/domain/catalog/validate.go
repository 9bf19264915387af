package catalog

import (
	"errors"
	"fmt"

	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// Validate verifica los invariantes del catálogo sembrado:
//   - ids de categoría y producto únicos;
//   - el padre de una subcategoría existe y es raíz;
//   - slugs únicos entre hermanos;
//   - grado de cada producto dentro del conjunto cerrado;
//   - toda categoría referenciada por un producto existe.
//
// Devuelve todos los problemas encontrados unidos con errors.Join, envueltos en
// domain.ErrInvalidCatalog.
func Validate(categories []*entity.Category, products []*entity.Product) error {
	var errs []error

	byID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		if c.ID == "" || c.Slug == "" {
			errs = append(errs, fmt.Errorf("categoría %q: id y slug son obligatorios", c.Name))
			continue
		}
		if _, dup := byID[c.ID]; dup {
			errs = append(errs, fmt.Errorf("categoría %s: id duplicado", c.ID))
			continue
		}
		byID[c.ID] = c
	}

	type siblingKey struct{ parent, slug string }
	slugs := make(map[siblingKey]string, len(categories))
	for _, c := range categories {
		if c.ParentID != "" {
			parent, ok := byID[c.ParentID]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("categoría %s: padre %s no existe", c.ID, c.ParentID))
			case !parent.IsTopLevel():
				errs = append(errs, fmt.Errorf("categoría %s: padre %s no es raíz", c.ID, c.ParentID))
			}
		}
		k := siblingKey{parent: c.ParentID, slug: c.Slug}
		if other, dup := slugs[k]; dup && other != c.ID {
			errs = append(errs, fmt.Errorf("categoría %s: slug %q repetido con %s", c.ID, c.Slug, other))
			continue
		}
		slugs[k] = c.ID
	}

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" || p.Code == "" {
			errs = append(errs, fmt.Errorf("producto %q: id y code son obligatorios", p.Code))
			continue
		}
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("producto %s: id duplicado", p.ID))
		}
		seen[p.ID] = struct{}{}
		if !p.GradeType.Valid() {
			errs = append(errs, fmt.Errorf("producto %s: grade_type %q inválido", p.ID, p.GradeType))
		}
		for _, cid := range p.CategoryIDs {
			if _, ok := byID[cid]; !ok {
				errs = append(errs, fmt.Errorf("producto %s: categoría %s no existe", p.ID, cid))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
}
