package catalog_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/catalog"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

func fixtureCategories() []*entity.Category {
	return []*entity.Category{
		{ID: "1", Slug: "polymers", Name: "Polymers", SortOrder: 1, IsActive: true},
		{ID: "2", Slug: "chemicals", Name: "Chemicals", SortOrder: 2, IsActive: true},
		{ID: "3", Slug: "agro", Name: "Agro", SortOrder: 3, IsActive: false},
		{ID: "4", Slug: "recycled", Name: "Recycled Materials", SortOrder: 4, IsActive: true},
		{ID: "12", Slug: "polypropylene", Name: "Polypropylene (PP)", ParentID: "1", SortOrder: 2, IsActive: true},
		{ID: "11", Slug: "polyethylene", Name: "Polyethylene (PE)", ParentID: "1", SortOrder: 1, IsActive: true},
		{ID: "14", Slug: "polystyrene", Name: "Polystyrene (PS)", ParentID: "1", SortOrder: 4, IsActive: true},
		{ID: "15", Slug: "pet", Name: "PET", ParentID: "1", SortOrder: 5, IsActive: true},
		{ID: "17", Slug: "bio", Name: "Bio", ParentID: "1", SortOrder: 7, IsActive: false},
	}
}

func slugs(cs []*entity.Category) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Slug)
	}
	return out
}

func TestResolve_CategoriaInexistente_NotFound(t *testing.T) {
	for _, slug := range []string{"nope", "", "agro", "polypropylene"} {
		res, err := catalog.Resolve(fixtureCategories(), fixtureProducts(), slug, "")
		require.Error(t, err, "slug %q", slug)
		assert.True(t, errors.Is(err, domain.ErrNotFound), "slug %q debe dar NotFound", slug)
		assert.Nil(t, res)
	}
}

func TestResolve_Raiz_IncluyeSubcategoriasActivasOrdenadas(t *testing.T) {
	res, err := catalog.Resolve(fixtureCategories(), fixtureProducts(), "polymers", "")
	require.NoError(t, err)

	assert.Equal(t, "1", res.Category.ID)
	assert.Nil(t, res.Subcategory)
	assert.Equal(t, []string{"polyethylene", "polypropylene", "polystyrene", "pet"}, slugs(res.Subcategories))
	assert.Equal(t,
		[]string{"PP 500P", "HE3490-LS", "PET BC112", "PP Off Grade", "PE Recycled Clear", "PP 520L", "GPPS Crystal"},
		codes(res.Products))
}

func TestResolve_Subcategoria(t *testing.T) {
	res, err := catalog.Resolve(fixtureCategories(), fixtureProducts(), "polymers", "polypropylene")
	require.NoError(t, err)

	require.NotNil(t, res.Subcategory)
	assert.Equal(t, "12", res.Subcategory.ID)
	// p99 es inactivo aunque esté asignado a la subcategoría.
	assert.Equal(t, []string{"PP 500P", "PP Off Grade", "PP 520L"}, codes(res.Products))
}

func TestResolve_SubcategoriaDeOtroPadre_EsNil(t *testing.T) {
	res, err := catalog.Resolve(fixtureCategories(), fixtureProducts(), "chemicals", "polypropylene")
	require.NoError(t, err)
	assert.Nil(t, res.Subcategory, "la subcategoría debe pertenecer a la raíz resuelta")
	assert.Empty(t, res.Subcategories)
	assert.Empty(t, res.Products)
}

func TestResolve_SubcategoriaInactiva_EsNil(t *testing.T) {
	res, err := catalog.Resolve(fixtureCategories(), fixtureProducts(), "polymers", "bio")
	require.NoError(t, err)
	assert.Nil(t, res.Subcategory)
	assert.Equal(t, []string{"PP 500P", "HE3490-LS", "PET BC112", "PP Off Grade", "PE Recycled Clear", "PP 520L", "GPPS Crystal"}, codes(res.Products))
}

func TestResolve_SubcategoriaInexistente_ListaLaRaiz(t *testing.T) {
	res, err := catalog.Resolve(fixtureCategories(), fixtureProducts(), "polymers", "no-such-sub")
	require.NoError(t, err)

	assert.Equal(t, "1", res.Category.ID)
	assert.Nil(t, res.Subcategory)
	assert.Equal(t, []string{"polyethylene", "polypropylene", "polystyrene", "pet"}, slugs(res.Subcategories))
	assert.Equal(t, []string{"PP 500P", "HE3490-LS", "PET BC112", "PP Off Grade", "PE Recycled Clear", "PP 520L", "GPPS Crystal"}, codes(res.Products))
}

func TestResolve_RaizContieneCadaSubconjunto(t *testing.T) {
	cats := fixtureCategories()
	products := fixtureProducts()

	root, err := catalog.Resolve(cats, products, "polymers", "")
	require.NoError(t, err)
	inRoot := make(map[string]bool, len(root.Products))
	for _, p := range root.Products {
		inRoot[p.ID] = true
	}

	for _, sub := range root.Subcategories {
		res, err := catalog.Resolve(cats, products, "polymers", sub.Slug)
		require.NoError(t, err)
		for _, p := range res.Products {
			assert.True(t, inRoot[p.ID], "%s de %s debe estar en la raíz", p.Code, sub.Slug)
		}
	}
}

func TestResolve_AsignacionDirectaALaRaiz(t *testing.T) {
	res, err := catalog.Resolve(fixtureCategories(), fixtureProducts(), "recycled", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"PE Recycled Clear"}, codes(res.Products))
}

func TestRelated_MismaFamiliaSinIncluirseMax3(t *testing.T) {
	products := fixtureProducts()
	extra := product("p20", "PP 600", "PP", entity.GradePrime, "2024-01-01")
	extra2 := product("p21", "PP 700", "PP", entity.GradePrime, "2024-01-01")
	products = append(products, extra, extra2)

	got := catalog.Related(products, products[0], 3)
	assert.Equal(t, []string{"PP Off Grade", "PP 520L", "PP 600"}, codes(got))
}

func TestRelated_LimiteNoPositivo(t *testing.T) {
	products := fixtureProducts()
	for _, limit := range []int{0, -1} {
		assert.NotPanics(t, func() {
			assert.Empty(t, catalog.Related(products, products[0], limit))
		}, "limit %d", limit)
	}
}

func TestChildren_SortOrderExtremos(t *testing.T) {
	cats := []*entity.Category{
		{ID: "a", Slug: "max", SortOrder: math.MaxInt, IsActive: true},
		{ID: "b", Slug: "min", SortOrder: math.MinInt, IsActive: true},
		{ID: "c", Slug: "cero", SortOrder: 0, IsActive: true},
	}
	assert.Equal(t, []string{"min", "cero", "max"}, slugs(catalog.TopLevel(cats)))
}

func TestTopLevel(t *testing.T) {
	assert.Equal(t, []string{"polymers", "chemicals", "recycled"}, slugs(catalog.TopLevel(fixtureCategories())))
}
