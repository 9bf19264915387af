// catalogctl comandos de operación sobre el catálogo incrustado: validar el
// YAML, generar sitemap, exportar CSV, fichas PDF y el documento OpenAPI.
package main

import (
	"os"

	"github.com/jhoicas/perfectpolymers-api/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: os.Getenv("APP_ENV"), Level: os.Getenv("LOG_LEVEL")})
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("catalogctl")
		os.Exit(1)
	}
}
