// Package leadlog registra los formularios en el log en lugar de enviarlos.
// Es el receptor por defecto en desarrollo (LEAD_SINK=log).
package leadlog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/formsubmit"
)

var _ ports.LeadSubmitter = (*Sink)(nil)

type Sink struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Sink {
	return &Sink{log: log.With().Str("component", "leadlog").Logger()}
}

func (s *Sink) SubmitContact(ctx context.Context, msg *entity.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info().
		Str("id", msg.ID).
		Str("topic", msg.Topic).
		Str("email", msg.Email).
		Str("company", msg.Company).
		Int("message_len", len(msg.Message)).
		Msg("formulario de contacto recibido")
	return nil
}

func (s *Sink) SubmitQuote(ctx context.Context, rfq *entity.QuoteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info().
		Str("id", rfq.ID).
		Str("status", rfq.Status).
		Str("company", rfq.CompanyName).
		Str("destination", rfq.Destination).
		Int("items", len(rfq.Items)).
		Str("products", formsubmit.FormatItems(rfq.Items)).
		Msg("rfq recibida")
	return nil
}
