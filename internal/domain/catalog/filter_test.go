package catalog_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/catalog"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func product(id, code, family string, grade entity.GradeType, created string, cats ...string) *entity.Product {
	return &entity.Product{
		ID: id, Code: code, Family: family, GradeType: grade,
		IsActive: true, CreatedAt: day(created), CategoryIDs: cats,
	}
}

// fixtureProducts imita el catálogo sembrado con un producto inactivo adicional.
func fixtureProducts() []*entity.Product {
	inactive := product("p99", "PP 999X", "PP", entity.GradePrime, "2024-06-01", "12")
	inactive.IsActive = false
	named := product("p8", "GPPS Crystal", "PS", entity.GradePrime, "2024-03-01", "14")
	named.Name = "Crystal polystyrene"
	return []*entity.Product{
		product("p1", "PP 500P", "PP", entity.GradePrime, "2024-01-01", "12"),
		product("p2", "HE3490-LS", "HDPE", entity.GradePrime, "2024-01-05", "11"),
		product("p3", "PET BC112", "PET", entity.GradePrime, "2024-02-01", "15"),
		product("p5", "PP Off Grade", "PP", entity.GradeOffGrade, "2024-01-01", "12"),
		product("p6", "PE Recycled Clear", "LDPE", entity.GradeRecycled, "2024-02-10", "11", "4"),
		product("p7", "PP 520L", "PP", entity.GradePrime, "2024-01-01", "12"),
		inactive,
		named,
	}
}

func codes(ps []*entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Code)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SearchPP_ConservaOrdenRelativo(t *testing.T) {
	products := []*entity.Product{
		product("p1", "PP 500P", "PP", entity.GradePrime, "2024-01-01"),
		product("p7", "PP 520L", "PP", entity.GradePrime, "2024-01-01"),
		product("p2", "HE3490-LS", "HDPE", entity.GradePrime, "2024-01-01"),
		product("p3", "PET BC112", "PET", entity.GradePrime, "2024-01-01"),
	}
	// "PP" aparece en PP 500P y PP 520L; HDPE no contiene "pp" y PET tampoco.
	res := catalog.Apply(products, catalog.Filter{Search: "PP"}, catalog.SortNone)

	if diff := cmp.Diff([]string{"PP 500P", "PP 520L"}, codes(res.Products)); diff != "" {
		t.Errorf("resultado inesperado (-want +got):\n%s", diff)
	}
	assert.True(t, res.FiltersApplied)
}

func TestApply_SinFiltros_DevuelveActivosEnOrden(t *testing.T) {
	products := fixtureProducts()
	res := catalog.Apply(products, catalog.Filter{}, catalog.SortNone)

	want := []string{"PP 500P", "HE3490-LS", "PET BC112", "PP Off Grade", "PE Recycled Clear", "PP 520L", "GPPS Crystal"}
	if diff := cmp.Diff(want, codes(res.Products)); diff != "" {
		t.Errorf("activos en orden original (-want +got):\n%s", diff)
	}
	assert.False(t, res.FiltersApplied, "sin filtros no debe marcarse como filtrado")
}

func TestApply_NuncaIncluyeInactivos(t *testing.T) {
	filters := []catalog.Filter{
		{},
		{Search: "999"},
		{Families: []string{"PP"}},
		{Grades: []entity.GradeType{entity.GradePrime}},
		{Search: "pp", Families: []string{"PP"}, Grades: []entity.GradeType{entity.GradePrime}},
	}
	for _, f := range filters {
		for _, key := range []catalog.SortKey{catalog.SortNone, catalog.SortName, catalog.SortNewest} {
			res := catalog.Apply(fixtureProducts(), f, key)
			for _, p := range res.Products {
				assert.True(t, p.IsActive, "producto inactivo %s en resultado (filtro %+v)", p.Code, f)
			}
		}
	}
}

func TestApply_SearchCaseInsensitiveSobreNombreYFamilia(t *testing.T) {
	res := catalog.Apply(fixtureProducts(), catalog.Filter{Search: "crystal POLY"}, catalog.SortNone)
	assert.Equal(t, []string{"GPPS Crystal"}, codes(res.Products), "debe buscar en el nombre")

	res = catalog.Apply(fixtureProducts(), catalog.Filter{Search: "ldpe"}, catalog.SortNone)
	assert.Equal(t, []string{"PE Recycled Clear"}, codes(res.Products), "debe buscar en la familia")
}

func TestApply_SearchSoloEspacios_EsUnPredicado(t *testing.T) {
	res := catalog.Apply(fixtureProducts(), catalog.Filter{Search: " "}, catalog.SortNone)

	assert.True(t, res.FiltersApplied)
	assert.Equal(t,
		[]string{"PP 500P", "PET BC112", "PP Off Grade", "PE Recycled Clear", "PP 520L", "GPPS Crystal"},
		codes(res.Products))
}

func TestApply_GradosYFamiliasSeCombinanConAND(t *testing.T) {
	f := catalog.Filter{
		Grades:   []entity.GradeType{entity.GradeOffGrade, entity.GradeRecycled},
		Families: []string{"PP"},
	}
	res := catalog.Apply(fixtureProducts(), f, catalog.SortNone)
	assert.Equal(t, []string{"PP Off Grade"}, codes(res.Products))
}

func TestApply_ResultadoVacioConFiltros(t *testing.T) {
	res := catalog.Apply(fixtureProducts(), catalog.Filter{Search: "nylon"}, catalog.SortName)
	assert.Empty(t, res.Products)
	assert.NotNil(t, res.Products, "el vacío debe ser una lista, no nil")
	assert.True(t, res.FiltersApplied)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SortName_Idempotente(t *testing.T) {
	first := catalog.Apply(fixtureProducts(), catalog.Filter{}, catalog.SortName)
	second := catalog.Apply(first.Products, catalog.Filter{}, catalog.SortName)

	want := []string{"GPPS Crystal", "HE3490-LS", "PE Recycled Clear", "PET BC112", "PP 500P", "PP 520L", "PP Off Grade"}
	if diff := cmp.Diff(want, codes(first.Products)); diff != "" {
		t.Errorf("orden por código (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(codes(first.Products), codes(second.Products)); diff != "" {
		t.Errorf("reordenar por código debe ser idempotente (-first +second):\n%s", diff)
	}
}

func TestApply_SortFamily_EstableEnEmpates(t *testing.T) {
	res := catalog.Apply(fixtureProducts(), catalog.Filter{Families: []string{"PP"}}, catalog.SortFamily)
	// Todos son PP: el orden original se conserva.
	assert.Equal(t, []string{"PP 500P", "PP Off Grade", "PP 520L"}, codes(res.Products))
}

func TestApply_SortGrade(t *testing.T) {
	res := catalog.Apply(fixtureProducts(), catalog.Filter{}, catalog.SortGrade)
	got := make([]entity.GradeType, 0, len(res.Products))
	for _, p := range res.Products {
		got = append(got, p.GradeType)
	}
	want := []entity.GradeType{
		entity.GradeOffGrade,
		entity.GradePrime, entity.GradePrime, entity.GradePrime, entity.GradePrime, entity.GradePrime,
		entity.GradeRecycled,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "PP 500P", res.Products[1].Code, "los empates conservan el orden original")
}

func TestApply_SortNewest_DescendenteYEstable(t *testing.T) {
	res := catalog.Apply(fixtureProducts(), catalog.Filter{}, catalog.SortNewest)
	want := []string{"GPPS Crystal", "PE Recycled Clear", "PET BC112", "HE3490-LS", "PP 500P", "PP Off Grade", "PP 520L"}
	if diff := cmp.Diff(want, codes(res.Products)); diff != "" {
		t.Errorf("orden por fecha (-want +got):\n%s", diff)
	}
}

func TestApply_NoModificaLaEntrada(t *testing.T) {
	products := fixtureProducts()
	before := codes(products)
	_ = catalog.Apply(products, catalog.Filter{}, catalog.SortName)
	assert.Equal(t, before, codes(products))
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]catalog.SortKey{
		"":        catalog.SortNone,
		"name":    catalog.SortName,
		" Family": catalog.SortFamily,
		"GRADE":   catalog.SortGrade,
		"newest":  catalog.SortNewest,
	}
	for in, want := range cases {
		got, err := catalog.ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := catalog.ParseSortKey("price")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildFacets(t *testing.T) {
	f := catalog.BuildFacets(fixtureProducts())
	assert.Equal(t, entity.GradeTypes, f.Grades)
	assert.Equal(t, []string{"HDPE", "LDPE", "PET", "PP", "PS"}, f.Families)
}
