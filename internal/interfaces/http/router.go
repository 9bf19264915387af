package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/perfectpolymers-api/internal/application/lead"
	"github.com/jhoicas/perfectpolymers-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	BlogUC    *usecase.BlogUseCase
	SiteUC    *usecase.SiteUseCase
	ContactUC *lead.ContactUseCase
	RFQUC     *lead.RFQUseCase

	Logger      zerolog.Logger
	CORSOrigins string // vacío = "*"

	// Limitador de los POST de formularios. LimiterStorage nil = memoria local.
	RateLimitMax    int
	RateLimitWindow time.Duration
	LimiterStorage  fiber.Storage
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	origins := deps.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	site := NewSiteHandler(deps.SiteUC)
	app.Get("/sitemap.xml", site.Sitemap)

	api := app.Group("/api")
	api.Get("/home", site.Home)
	api.Get("/site", site.Info)
	api.Get("/contact/topics", site.ContactTopics)
	api.Get("/rfq/options", site.RFQOptions)

	// Catálogo. /products/:category comparte prefijo con /products, se registra después.
	catalog := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalog.ListProducts)
	api.Get("/products/:category/:subcategory?", catalog.Category)
	api.Get("/product/:id", catalog.GetProduct)
	api.Get("/product/:id/datasheet", catalog.Datasheet)
	api.Get("/categories", catalog.CategoryTree)
	api.Get("/catalog/filters", catalog.Facets)
	api.Get("/catalog/export.csv", catalog.ExportCSV)

	blog := NewBlogHandler(deps.BlogUC)
	api.Get("/blog", blog.List)
	api.Get("/blog/tags", blog.Tags)
	api.Get("/blog/:slug", blog.GetBySlug)

	// Formularios (limitados por IP)
	leads := NewLeadHandler(deps.ContactUC, deps.RFQUC)
	limit := RateLimit(deps.RateLimitMax, deps.RateLimitWindow, deps.LimiterStorage)
	api.Post("/contact", limit, leads.Contact)
	api.Post("/rfq", limit, leads.RFQ)
}
