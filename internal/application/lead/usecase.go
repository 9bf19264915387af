package lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// DefaultSubmitTimeout tiempo máximo de un envío al receptor externo.
const DefaultSubmitTimeout = 15 * time.Second

const (
	contactTitle   = "Message Sent Successfully!"
	contactMessage = "Thank you for contacting us. We'll get back to you within 24 hours."
	rfqTitle       = "RFQ Submitted Successfully!"
	rfqMessage     = "We'll review your request and respond within 24 hours during business days."
)

// Options parámetros comunes de los casos de uso de captación.
type Options struct {
	Timeout time.Duration    // 0 = DefaultSubmitTimeout
	Now     func() time.Time // nil = time.Now
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultSubmitTimeout
	}
	return o.Timeout
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now().UTC()
	}
	return o.Now()
}

// ContactUseCase valida el formulario de contacto y lo entrega al LeadSubmitter.
type ContactUseCase struct {
	submitter ports.LeadSubmitter
	validator *Validator
	opts      Options
	inflight  inflight
}

// NewContactUseCase construye el caso de uso inyectando el puerto LeadSubmitter.
func NewContactUseCase(submitter ports.LeadSubmitter, v *Validator, opts Options) *ContactUseCase {
	return &ContactUseCase{submitter: submitter, validator: v, opts: opts}
}

// Submit valida y envía. Sin reintentos: un fallo del receptor se devuelve como
// *ports.SubmissionError para que el cliente decida volver a enviar.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactRequest) (*dto.LeadResponse, error) {
	msg, err := uc.validator.Contact(in)
	if err != nil {
		return nil, err
	}

	v, _, err := uc.inflight.do("contact", msg, func() (any, error) {
		out := *msg
		out.ID = uuid.New().String()
		out.CreatedAt = uc.opts.now()

		// Sin la cancelación del cliente: el resultado se comparte con los duplicados.
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.opts.timeout())
		defer cancel()
		if err := uc.submitter.SubmitContact(sctx, &out); err != nil {
			return nil, asSubmissionError(err)
		}
		return &dto.LeadResponse{
			ID:          out.ID,
			Title:       contactTitle,
			Message:     contactMessage,
			SubmittedAt: out.CreatedAt,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("enviar contacto: %w", err)
	}
	return v.(*dto.LeadResponse), nil
}

// RFQUseCase valida la solicitud de cotización y la entrega al LeadSubmitter
// con estado pending y fecha asignada por el servidor.
type RFQUseCase struct {
	submitter ports.LeadSubmitter
	validator *Validator
	opts      Options
	inflight  inflight
}

func NewRFQUseCase(submitter ports.LeadSubmitter, v *Validator, opts Options) *RFQUseCase {
	return &RFQUseCase{submitter: submitter, validator: v, opts: opts}
}

func (uc *RFQUseCase) Submit(ctx context.Context, in dto.RFQRequest) (*dto.LeadResponse, error) {
	rfq, err := uc.validator.RFQ(in)
	if err != nil {
		return nil, err
	}

	v, _, err := uc.inflight.do("rfq", rfq, func() (any, error) {
		out := *rfq
		out.ID = uuid.New().String()
		out.Status = entity.QuoteStatusPending
		out.SubmittedAt = uc.opts.now()

		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.opts.timeout())
		defer cancel()
		if err := uc.submitter.SubmitQuote(sctx, &out); err != nil {
			return nil, asSubmissionError(err)
		}
		return &dto.LeadResponse{
			ID:          out.ID,
			Status:      out.Status,
			Title:       rfqTitle,
			Message:     rfqMessage,
			SubmittedAt: out.SubmittedAt,
			Items:       len(out.Items),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("enviar rfq: %w", err)
	}
	return v.(*dto.LeadResponse), nil
}

func asSubmissionError(err error) error {
	var se *ports.SubmissionError
	if errors.As(err, &se) {
		return err
	}
	return &ports.SubmissionError{Kind: ports.SubmissionKindOf(err), Err: err}
}
