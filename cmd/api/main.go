package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/perfectpolymers-api/docs"
	"github.com/jhoicas/perfectpolymers-api/internal/app"
	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/formsubmit"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/leadlog"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/mailer"
	infrapdf "github.com/jhoicas/perfectpolymers-api/internal/infrastructure/pdf"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/perfectpolymers-api/internal/interfaces/http"
	"github.com/jhoicas/perfectpolymers-api/pkg/config"
	"github.com/jhoicas/perfectpolymers-api/pkg/logger"
)

// @title        Perfect Polymers API
// @version      1.0
// @description  Catálogo de polímeros, blog y formularios de contacto / RFQ del sitio de Perfect Polymers.
// @BasePath     /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run arranca el servidor y bloquea hasta SIGINT/SIGTERM. Los errores de
// arranque se devuelven para que los defer (log, Redis) se ejecuten.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("lead_sink", cfg.Lead.Sink).
		Msg("iniciando aplicación")

	cat, err := seed.Load()
	if err != nil {
		log.Error().Err(err).Msg("cargar catálogo")
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	log.Info().
		Str("version", cat.Version).
		Int("products", len(cat.Products)).
		Int("categories", len(cat.Categories)).
		Int("posts", len(cat.Posts)).
		Msg("catálogo cargado")

	submitter, err := newSubmitter(cfg, cat, log)
	if err != nil {
		log.Error().Err(err).Msg("receptor de formularios")
		return fmt.Errorf("receptor de formularios: %w", err)
	}

	c := app.New(cat, app.Options{
		BaseURL:       cfg.Site.BaseURL,
		Submitter:     submitter,
		SubmitTimeout: cfg.Lead.SubmitTimeout,
	})

	// Limitador compartido en Redis si está configurado; si no, memoria del proceso.
	var limiterStorage fiber.Storage
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		store, err := redisstore.New(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("conexión a Redis")
			return fmt.Errorf("conexión a Redis: %w", err)
		}
		defer store.Close()
		limiterStorage = store
	}

	fapp := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Lead.SubmitTimeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	fapp.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (requiere docs/swagger.json,
	// generado con `catalogctl openapi`).
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		fapp.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Perfect Polymers API",
		}))
	}
	fapp.Get("/api/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	fapp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "catalog_version": cat.Version})
	})

	httpRouter.Router(fapp, httpRouter.RouterDeps{
		CatalogUC:       c.CatalogUC,
		BlogUC:          c.BlogUC,
		SiteUC:          c.SiteUC,
		ContactUC:       c.ContactUC,
		RFQUC:           c.RFQUC,
		Logger:          log.Zerolog(),
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		RateLimitMax:    cfg.RateLimit.Max,
		RateLimitWindow: cfg.RateLimit.Window,
		LimiterStorage:  limiterStorage,
	})

	go func() {
		if err := fapp.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Espera a que terminen los envíos de formularios en curso.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Lead.SubmitTimeout+5*time.Second)
	defer cancel()

	if err := fapp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// newSubmitter elige el receptor de formularios según LEAD_SINK.
func newSubmitter(cfg *config.Config, cat *seed.Catalog, log *logger.Logger) (ports.LeadSubmitter, error) {
	switch cfg.Lead.Sink {
	case config.SinkFormSubmit:
		return formsubmit.NewClient(cfg.Lead.FormSubmitEndpoint, cfg.Site.BaseURL, &http.Client{
			Timeout: cfg.Lead.SubmitTimeout + 5*time.Second,
		}), nil
	case config.SinkSMTP:
		return mailer.New(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
		}, infrapdf.NewQuoteGenerator(), cat.Site)
	case config.SinkLog:
		return leadlog.New(log.Zerolog()), nil
	default:
		return nil, fmt.Errorf("LEAD_SINK %q no soportado", cfg.Lead.Sink)
	}
}
