package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// LeadSubmitter define el puerto de salida hacia el receptor externo de los
// formularios (formsubmit.co, SMTP o log en desarrollo).
// El contexto debe llevar un timeout: es la única operación bloqueante del servicio.
type LeadSubmitter interface {
	SubmitContact(ctx context.Context, msg *entity.ContactMessage) error
	SubmitQuote(ctx context.Context, rfq *entity.QuoteRequest) error
}

// SubmissionKind clase de fallo del envío, propagada hasta la respuesta HTTP.
type SubmissionKind string

const (
	SubmissionNetwork SubmissionKind = "network"
	SubmissionTimeout SubmissionKind = "timeout"
	SubmissionServer  SubmissionKind = "server"
)

// SubmissionError fallo de un LeadSubmitter. errors.Is(err, domain.ErrSubmissionFailed) es true.
type SubmissionError struct {
	Kind       SubmissionKind
	StatusCode int // código HTTP del receptor, 0 si no hubo respuesta
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("envío fallido (%s, status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("envío fallido (%s): %v", e.Kind, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func (e *SubmissionError) Is(target error) bool {
	return target == domain.ErrSubmissionFailed
}

// SubmissionKindOf devuelve la clase del fallo; los errores sin clasificar cuentan como server.
func SubmissionKindOf(err error) SubmissionKind {
	var se *SubmissionError
	if errors.As(err, &se) {
		return se.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return SubmissionTimeout
	}
	return SubmissionServer
}
