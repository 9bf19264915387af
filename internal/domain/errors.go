package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrValidation       = errors.New("validación fallida")
	ErrSubmissionFailed = errors.New("envío del formulario fallido")
	ErrInvalidCatalog   = errors.New("catálogo inconsistente")
)
