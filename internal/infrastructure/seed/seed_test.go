package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

func TestLoad_CatalogoIncrustado(t *testing.T) {
	cat, err := seed.Load()
	require.NoError(t, err, "el catálogo incrustado debe ser válido")

	assert.NotEmpty(t, cat.Version)
	assert.Len(t, cat.Categories, 9)
	assert.Len(t, cat.Products, 10)
	assert.Len(t, cat.Posts, 6)
	require.NotNil(t, cat.Site)
	assert.Equal(t, "Perfect Polymers FZC", cat.Site.CompanyName)
	assert.Len(t, cat.Site.USPs, 4)
}

func TestLoad_PropiedadesConservanOrdenYTipo(t *testing.T) {
	cat, err := seed.Load()
	require.NoError(t, err)

	var p5 *entity.Product
	for _, p := range cat.Products {
		if p.ID == "p5" {
			p5 = p
		}
	}
	require.NotNil(t, p5)
	assert.Equal(t, entity.GradeOffGrade, p5.GradeType)
	require.Len(t, p5.Properties, 3)
	assert.Equal(t, "mfi", p5.Properties[0].Name)
	assert.Equal(t, "8-15", p5.Properties[0].Value)
	assert.Equal(t, "cost_effective", p5.Properties[2].Name)
	assert.Equal(t, true, p5.Properties[2].Value)
	assert.Equal(t, 2024, p5.CreatedAt.Year())
}

func TestParse_GradoInvalido(t *testing.T) {
	doc := []byte(`
version: "test"
categories:
  - {id: "1", slug: polymers, name: Polymers, sort_order: 1, is_active: true}
products:
  - {id: x1, code: "X 1", family: PP, grade_type: Premium, description: d, category_ids: ["1"], is_active: true, created_at: "2024-01-01"}
`)
	_, err := seed.Parse(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestParse_FechaInvalida(t *testing.T) {
	doc := []byte(`
products:
  - {id: x1, code: "X 1", family: PP, grade_type: Prime, created_at: "01/01/2024"}
`)
	_, err := seed.Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at")
}

func TestParse_PropiedadesNoMapping(t *testing.T) {
	doc := []byte(`
products:
  - {id: x1, code: "X 1", family: PP, grade_type: Prime, created_at: "2024-01-01", properties: [a, b]}
`)
	_, err := seed.Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")
}
