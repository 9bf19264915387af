package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// Resolution resultado de resolver /products/{category}[/{subcategory}].
type Resolution struct {
	Category      *entity.Category
	Subcategory   *entity.Category   // nil si no se pidió o no existe bajo Category
	Subcategories []*entity.Category // subcategorías activas de Category, por SortOrder
	Products      []*entity.Product
}

// Resolve busca la categoría raíz activa con slug y, opcionalmente, la
// subcategoría activa subSlug entre sus hijas.
//
// Productos:
//   - con subcategoría: productos activos asignados a ella;
//   - sin subcategoría: productos activos asignados a la raíz o a cualquiera de sus hijas.
//
// Un subSlug que no resuelve entre las hijas activas de la raíz deja
// Subcategory en nil y se listan los productos de la raíz.
//
// Si no existe una raíz activa con ese slug devuelve domain.ErrNotFound.
func Resolve(categories []*entity.Category, products []*entity.Product, slug, subSlug string) (*Resolution, error) {
	var root *entity.Category
	for _, c := range categories {
		if c != nil && c.IsActive && c.IsTopLevel() && c.Slug == slug {
			root = c
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: categoría %q", domain.ErrNotFound, slug)
	}

	res := &Resolution{
		Category:      root,
		Subcategories: Children(categories, root.ID),
	}

	if subSlug != "" {
		for _, sub := range res.Subcategories {
			if sub.Slug == subSlug {
				res.Subcategory = sub
				break
			}
		}
	}

	var ids []string
	if res.Subcategory != nil {
		ids = []string{res.Subcategory.ID}
	} else {
		ids = make([]string, 0, len(res.Subcategories)+1)
		ids = append(ids, root.ID)
		for _, sub := range res.Subcategories {
			ids = append(ids, sub.ID)
		}
	}

	res.Products = make([]*entity.Product, 0)
	for _, p := range products {
		if p != nil && p.IsActive && p.InCategory(ids...) {
			res.Products = append(res.Products, p)
		}
	}
	return res, nil
}

// Children devuelve las subcategorías activas de parentID ordenadas por SortOrder
// (estable respecto al orden del origen de datos).
func Children(categories []*entity.Category, parentID string) []*entity.Category {
	out := make([]*entity.Category, 0)
	for _, c := range categories {
		if c != nil && c.IsActive && c.ParentID == parentID {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Category) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	return out
}

// TopLevel devuelve las categorías raíz activas ordenadas por SortOrder.
func TopLevel(categories []*entity.Category) []*entity.Category {
	return Children(categories, "")
}

// Related devuelve hasta limit productos activos de la misma familia que p, sin incluirlo.
func Related(products []*entity.Product, p *entity.Product, limit int) []*entity.Product {
	limit = max(limit, 0)
	out := make([]*entity.Product, 0, limit)
	for _, other := range products {
		if len(out) >= limit {
			break
		}
		if other == nil || !other.IsActive || other.ID == p.ID || other.Family != p.Family {
			continue
		}
		out = append(out, other)
	}
	return out
}
