package usecase_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/application/usecase"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/memory"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

type fakeDatasheet struct{ got *entity.Product }

func (f *fakeDatasheet) RenderDatasheet(p *entity.Product, _ []*entity.Category, _ *entity.SiteInfo) ([]byte, error) {
	f.got = p
	return []byte("%PDF-fake"), nil
}

type fakeExporter struct{ codes []string }

func (f *fakeExporter) ExportProducts(w io.Writer, products []*entity.Product, _ []*entity.Category) error {
	for _, p := range products {
		f.codes = append(f.codes, p.Code)
	}
	_, err := io.WriteString(w, "ok")
	return err
}

type fakeSitemap struct {
	base    string
	entries []ports.SitemapEntry
}

func (f *fakeSitemap) RenderSitemap(base string, entries []ports.SitemapEntry) ([]byte, error) {
	f.base, f.entries = base, entries
	return []byte("<urlset/>"), nil
}

type fixture struct {
	cat       *seed.Catalog
	catalog   *usecase.CatalogUseCase
	blog      *usecase.BlogUseCase
	site      *usecase.SiteUseCase
	datasheet *fakeDatasheet
	exporter  *fakeExporter
	sitemap   *fakeSitemap
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := seed.Load()
	require.NoError(t, err)

	products := memory.NewProductRepository(cat)
	categories := memory.NewCategoryRepository(cat)
	site := memory.NewSiteRepository(cat)
	blog := memory.NewBlogRepository(cat)

	f := &fixture{cat: cat, datasheet: &fakeDatasheet{}, exporter: &fakeExporter{}, sitemap: &fakeSitemap{}}
	f.catalog = usecase.NewCatalogUseCase(products, categories, site, f.datasheet, f.exporter)
	f.blog = usecase.NewBlogUseCase(blog)
	f.site = usecase.NewSiteUseCase(site, products, categories, blog, f.sitemap, "https://perfectpolymers.co/")
	return f
}
