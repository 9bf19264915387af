// Package mailer entrega los formularios por SMTP al buzón de ventas. Las RFQ
// llevan adjunto el resumen en PDF.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/formsubmit"
)

var _ ports.LeadSubmitter = (*Mailer)(nil)

// Config servidor SMTP y direcciones. Username vacío = sin autenticación.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// sendFunc permite sustituir el envío real en tests.
type sendFunc func(ctx context.Context, msg *mail.Msg) error

// Mailer adaptador SMTP del puerto LeadSubmitter.
type Mailer struct {
	cfg    Config
	quotes ports.QuoteRenderer
	site   *entity.SiteInfo
	send   sendFunc
}

// New construye el adaptador. quotes puede ser nil (RFQ sin adjunto).
func New(cfg Config, quotes ports.QuoteRenderer, site *entity.SiteInfo) (*Mailer, error) {
	if cfg.Host == "" || cfg.From == "" || cfg.To == "" {
		return nil, fmt.Errorf("mailer: SMTP_HOST, SMTP_FROM y SMTP_TO son obligatorios")
	}
	m := &Mailer{cfg: cfg, quotes: quotes, site: site}
	m.send = m.dialAndSend
	return m, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(20 * time.Second),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mailer: crear cliente: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// SubmitContact envía el mensaje de contacto con Reply-To al remitente.
func (m *Mailer) SubmitContact(ctx context.Context, c *entity.ContactMessage) error {
	msg, err := m.ContactMessage(c)
	if err != nil {
		return err
	}
	return m.deliver(ctx, msg)
}

// SubmitQuote envía la RFQ con el resumen PDF adjunto.
func (m *Mailer) SubmitQuote(ctx context.Context, rfq *entity.QuoteRequest) error {
	msg, err := m.QuoteMessage(rfq)
	if err != nil {
		return err
	}
	return m.deliver(ctx, msg)
}

// ContactMessage construye el correo del formulario de contacto.
func (m *Mailer) ContactMessage(c *entity.ContactMessage) (*mail.Msg, error) {
	msg, err := m.newMsg(c.Email)
	if err != nil {
		return nil, err
	}
	msg.Subject("Contact form: " + c.Topic)

	var b strings.Builder
	field(&b, "Reference", c.ID)
	field(&b, "Name", c.Name)
	field(&b, "Email", c.Email)
	field(&b, "Phone", c.Phone)
	field(&b, "Company", c.Company)
	field(&b, "Topic", c.Topic)
	field(&b, "Sent at", c.CreatedAt.UTC().Format(time.RFC1123))
	b.WriteString("\n")
	b.WriteString(c.Message)
	b.WriteString("\n")
	msg.SetBodyString(mail.TypeTextPlain, b.String())
	return msg, nil
}

// QuoteMessage construye el correo de la RFQ; el PDF se adjunta si hay generador.
func (m *Mailer) QuoteMessage(rfq *entity.QuoteRequest) (*mail.Msg, error) {
	msg, err := m.newMsg(rfq.Email)
	if err != nil {
		return nil, err
	}
	msg.Subject(fmt.Sprintf("RFQ from %s (%d products)", rfq.CompanyName, len(rfq.Items)))

	var b strings.Builder
	field(&b, "Reference", rfq.ID)
	field(&b, "Status", rfq.Status)
	field(&b, "Contact name", rfq.ContactName)
	field(&b, "Company", rfq.CompanyName)
	field(&b, "Email", rfq.Email)
	field(&b, "Phone", rfq.Phone)
	field(&b, "Destination", rfq.Destination)
	field(&b, "Submitted at", rfq.SubmittedAt.UTC().Format(time.RFC1123))
	b.WriteString("\nProducts:\n")
	b.WriteString(formsubmit.FormatItems(rfq.Items))
	b.WriteString("\n")
	if rfq.Notes != "" {
		b.WriteString("\nNotes:\n" + rfq.Notes + "\n")
	}
	msg.SetBodyString(mail.TypeTextPlain, b.String())

	if m.quotes != nil && m.site != nil {
		pdf, err := m.quotes.RenderQuote(rfq, m.site)
		if err != nil {
			return nil, fmt.Errorf("mailer: adjunto rfq: %w", err)
		}
		msg.AttachReader("rfq-"+shortID(rfq.ID)+".pdf", bytes.NewReader(pdf))
	}
	return msg, nil
}

func (m *Mailer) newMsg(replyTo string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("mailer: from: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("mailer: to: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return nil, fmt.Errorf("mailer: reply-to: %w", err)
		}
	}
	return msg, nil
}

func (m *Mailer) deliver(ctx context.Context, msg *mail.Msg) error {
	if err := m.send(ctx, msg); err != nil {
		return &ports.SubmissionError{Kind: kindOf(ctx, err), Err: err}
	}
	return nil
}

func kindOf(ctx context.Context, err error) ports.SubmissionKind {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return ports.SubmissionTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ports.SubmissionTimeout
		}
		return ports.SubmissionNetwork
	}
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		return ports.SubmissionServer
	}
	return ports.SubmissionNetwork
}

func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
