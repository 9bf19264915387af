package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/lead"
	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain"
)

// Mensajes visibles en el sitio (en inglés).
const (
	msgSubmissionFailed = "Failed to send your request. Please try again."
	msgValidation       = "Please correct the highlighted fields."
	msgRateLimited      = "Too many requests. Please wait a moment and try again."
)

// respondError traduce errores de dominio y de aplicación a HTTP. backTo es el
// enlace de vuelta incluido en los 404.
func respondError(c *fiber.Ctx, err error, notFoundMsg, backTo string) error {
	var ve *lead.ValidationError
	var se *ports.SubmissionError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: msgValidation,
			Fields:  ve.Fields,
		})
	case errors.As(err, &se):
		status := fiber.StatusBadGateway
		if se.Kind == ports.SubmissionTimeout {
			status = fiber.StatusGatewayTimeout
		}
		logFrom(c).Warn().Err(err).Str("kind", string(se.Kind)).Int("upstream_status", se.StatusCode).Msg("envío de formulario fallido")
		return c.Status(status).JSON(dto.SubmissionErrorResponse{
			Code:    "SUBMISSION_FAILED",
			Message: msgSubmissionFailed,
			Kind:    string(se.Kind),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg, BackTo: backTo})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	default:
		logFrom(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// logFrom devuelve el logger de la petición (con request id) o uno nulo.
func logFrom(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localLogger).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}
