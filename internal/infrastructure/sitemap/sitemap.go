// Package sitemap serializa las URLs públicas del sitio en formato sitemaps.org 0.9.
package sitemap

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var _ ports.SitemapRenderer = (*Renderer)(nil)

// Renderer implementa ports.SitemapRenderer sobre etree.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

// RenderSitemap genera <urlset> con un <url> por entrada. Las rutas se escapan
// (p. ej. slugs con espacios) y se resuelven contra baseURL.
func (r *Renderer) RenderSitemap(baseURL string, entries []ports.SitemapEntry) ([]byte, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("sitemap: url base inválida %q", baseURL)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", namespace)

	for _, e := range entries {
		ref, err := url.Parse(e.Path)
		if err != nil {
			ref = &url.URL{Path: e.Path}
		}
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(base.ResolveReference(ref).String())
		if !e.LastMod.IsZero() {
			u.CreateElement("lastmod").SetText(e.LastMod.UTC().Format("2006-01-02"))
		}
		if e.ChangeFreq != "" {
			u.CreateElement("changefreq").SetText(e.ChangeFreq)
		}
		if e.Priority > 0 {
			u.CreateElement("priority").SetText(strconv.FormatFloat(e.Priority, 'f', 1, 64))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sitemap: serializar: %w", err)
	}
	return out, nil
}
