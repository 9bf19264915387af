package ports

import (
	"io"
	"time"

	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// DatasheetRenderer genera la ficha técnica PDF de un producto.
type DatasheetRenderer interface {
	RenderDatasheet(p *entity.Product, categories []*entity.Category, site *entity.SiteInfo) ([]byte, error)
}

// QuoteRenderer genera el resumen PDF de una RFQ (adjunto del correo a ventas).
type QuoteRenderer interface {
	RenderQuote(rfq *entity.QuoteRequest, site *entity.SiteInfo) ([]byte, error)
}

// SitemapEntry URL pública del sitio.
type SitemapEntry struct {
	Path       string // relativo a la URL base, con "/" inicial
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SitemapRenderer serializa el sitemap en formato sitemaps.org.
type SitemapRenderer interface {
	RenderSitemap(baseURL string, entries []SitemapEntry) ([]byte, error)
}

// CatalogExporter escribe el catálogo en un formato tabular.
type CatalogExporter interface {
	ExportProducts(w io.Writer, products []*entity.Product, categories []*entity.Category) error
}
