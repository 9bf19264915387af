// Package app arma los casos de uso sobre el catálogo sembrado. Lo comparten el
// servidor HTTP (cmd/api) y la CLI de operación (cmd/catalogctl).
package app

import (
	"time"

	"github.com/jhoicas/perfectpolymers-api/internal/application/lead"
	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/application/usecase"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/export"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/memory"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/pdf"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/sitemap"
)

// Options parámetros de armado.
type Options struct {
	BaseURL       string              // URL pública del sitio (sitemap, QR de fichas)
	Submitter     ports.LeadSubmitter // nil = formularios deshabilitados (CLI)
	SubmitTimeout time.Duration
}

// Container casos de uso listos para los adaptadores de entrada.
type Container struct {
	Catalog   *seed.Catalog
	CatalogUC *usecase.CatalogUseCase
	BlogUC    *usecase.BlogUseCase
	SiteUC    *usecase.SiteUseCase
	ContactUC *lead.ContactUseCase
	RFQUC     *lead.RFQUseCase
}

// New construye repositorios en memoria, renderizadores y casos de uso.
func New(cat *seed.Catalog, opts Options) *Container {
	productRepo := memory.NewProductRepository(cat)
	categoryRepo := memory.NewCategoryRepository(cat)
	blogRepo := memory.NewBlogRepository(cat)
	siteRepo := memory.NewSiteRepository(cat)

	c := &Container{
		Catalog: cat,
		CatalogUC: usecase.NewCatalogUseCase(
			productRepo, categoryRepo, siteRepo,
			pdf.NewDatasheetGenerator(opts.BaseURL),
			export.NewCSVExporter(),
		),
		BlogUC: usecase.NewBlogUseCase(blogRepo),
		SiteUC: usecase.NewSiteUseCase(
			siteRepo, productRepo, categoryRepo, blogRepo,
			sitemap.NewRenderer(), opts.BaseURL,
		),
	}
	if opts.Submitter != nil {
		v := lead.NewValidator()
		leadOpts := lead.Options{Timeout: opts.SubmitTimeout}
		c.ContactUC = lead.NewContactUseCase(opts.Submitter, v, leadOpts)
		c.RFQUC = lead.NewRFQUseCase(opts.Submitter, v, leadOpts)
	}
	return c
}
