package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
)

func TestHome(t *testing.T) {
	f := newFixture(t)
	out, err := f.site.Home()
	require.NoError(t, err)
	assert.Equal(t, []string{"PP 500P", "HE3490-LS", "PET BC112", "ABS Grade A"}, cardCodes(out.Featured))
	require.Len(t, out.Categories, 3)
	assert.Equal(t, "polymers", out.Categories[0].Slug)
	assert.Len(t, out.USPs, 4)
}

func TestSiteInfoYOpciones(t *testing.T) {
	f := newFixture(t)
	info, err := f.site.Info()
	require.NoError(t, err)
	assert.Equal(t, "Perfect Polymers FZC", info.CompanyName)

	assert.Len(t, f.site.ContactTopics().Topics, 8)
	opts := f.site.RFQOptions()
	assert.Equal(t, []string{"Prime", "Off Spec", "Off Grade", "Recycled"}, opts.GradeTypes)
	assert.Equal(t, "MT", opts.DefaultUnit)
}

func TestSitemap(t *testing.T) {
	f := newFixture(t)
	out, err := f.site.Sitemap()
	require.NoError(t, err)
	assert.Equal(t, "<urlset/>", string(out))
	assert.Equal(t, "https://perfectpolymers.co", f.sitemap.base)

	paths := make(map[string]ports.SitemapEntry, len(f.sitemap.entries))
	for _, e := range f.sitemap.entries {
		paths[e.Path] = e
	}
	for _, p := range []string{"/", "/products", "/rfq", "/products/polymers", "/products/polymers/pet", "/product/p10", "/blog/polymer-selection-guide"} {
		assert.Contains(t, paths, p)
	}
	// 6 estáticas + 3 raíces + 6 subcategorías + 10 productos + 6 artículos.
	assert.Len(t, f.sitemap.entries, 31)
	assert.Equal(t, 2024, paths["/blog"].LastMod.Year())
}
