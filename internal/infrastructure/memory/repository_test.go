package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/memory"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

func loadCatalog(t *testing.T) *seed.Catalog {
	t.Helper()
	cat, err := seed.Load()
	require.NoError(t, err)
	return cat
}

func TestProductRepo_GetByID(t *testing.T) {
	repo := memory.NewProductRepository(loadCatalog(t))

	p, err := repo.GetByID("p3")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "PET BC112", p.Code)

	missing, err := repo.GetByID("p404")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_ListDevuelveCopia(t *testing.T) {
	repo := memory.NewProductRepository(loadCatalog(t))

	first, err := repo.List()
	require.NoError(t, err)
	first[0] = nil

	second, err := repo.List()
	require.NoError(t, err)
	assert.NotNil(t, second[0], "modificar el slice devuelto no debe alterar el repositorio")
	assert.Len(t, second, 10)
}

func TestCategoryRepo(t *testing.T) {
	repo := memory.NewCategoryRepository(loadCatalog(t))

	c, err := repo.GetByID("12")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "polypropylene", c.Slug)
	assert.Equal(t, "1", c.ParentID)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 9)
}

func TestBlogRepo_GetBySlug(t *testing.T) {
	repo := memory.NewBlogRepository(loadCatalog(t))

	p, err := repo.GetBySlug("polymer-selection-guide")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Dr. Ahmed Al-Rashid", p.Author)

	missing, err := repo.GetBySlug("nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSiteRepo_Info(t *testing.T) {
	info, err := memory.NewSiteRepository(loadCatalog(t)).Info()
	require.NoError(t, err)
	assert.Contains(t, info.Phones, "+971 58 8792355 (UAE)")
}
