// Package formsubmit entrega los formularios de contacto y RFQ al endpoint AJAX
// de formsubmit.co, que los reenvía por correo al buzón de ventas.
package formsubmit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

var _ ports.LeadSubmitter = (*Client)(nil)

// DefaultEndpoint buzón público del sitio.
const DefaultEndpoint = "https://formsubmit.co/ajax/info@perfectpolymers.co"

// Client adaptador HTTP del puerto LeadSubmitter. El timeout efectivo lo fija
// el contexto del caso de uso; httpClient.Timeout es solo un tope de seguridad.
type Client struct {
	endpoint   string
	origin     string
	httpClient *http.Client
}

// NewClient construye el cliente. origin se envía como cabecera Origin/Referer
// (formsubmit.co rechaza peticiones AJAX sin origen).
func NewClient(endpoint, origin string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{endpoint: endpoint, origin: strings.TrimRight(origin, "/"), httpClient: httpClient}
}

// formsubmit responde {"success": "true"|"false", "message": "..."}; success
// puede llegar como string o bool.
type submitResponse struct {
	Success any    `json:"success"`
	Message string `json:"message"`
}

// SubmitContact envía el mensaje de contacto.
func (c *Client) SubmitContact(ctx context.Context, msg *entity.ContactMessage) error {
	payload := map[string]string{
		"_subject":  "Contact form: " + msg.Topic,
		"_template": "table",
		"_captcha":  "false",
		"reference": msg.ID,
		"name":      msg.Name,
		"email":     msg.Email,
		"phone":     msg.Phone,
		"company":   msg.Company,
		"topic":     msg.Topic,
		"message":   msg.Message,
		"sent_at":   msg.CreatedAt.UTC().Format(time.RFC3339),
	}
	return c.post(ctx, payload)
}

// SubmitQuote envía la RFQ con sus líneas en texto plano.
func (c *Client) SubmitQuote(ctx context.Context, rfq *entity.QuoteRequest) error {
	payload := map[string]string{
		"_subject":     fmt.Sprintf("RFQ from %s (%d products)", rfq.CompanyName, len(rfq.Items)),
		"_template":    "table",
		"_captcha":     "false",
		"reference":    rfq.ID,
		"status":       rfq.Status,
		"name":         rfq.ContactName,
		"company":      rfq.CompanyName,
		"email":        rfq.Email,
		"phone":        rfq.Phone,
		"destination":  rfq.Destination,
		"notes":        rfq.Notes,
		"products":     FormatItems(rfq.Items),
		"submitted_at": rfq.SubmittedAt.UTC().Format(time.RFC3339),
	}
	return c.post(ctx, payload)
}

// FormatItems una línea por producto: "1. PP 500P | Prime | 25 MT".
func FormatItems(items []entity.QuoteLineItem) string {
	lines := make([]string, 0, len(items))
	for i, it := range items {
		grade := string(it.GradeType)
		if grade == "" {
			grade = "Any grade"
		}
		lines = append(lines, fmt.Sprintf("%d. %s | %s | %s %s", i+1, it.ProductCode, grade, it.Quantity.String(), it.Unit))
	}
	return strings.Join(lines, "\n")
}

func (c *Client) post(ctx context.Context, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("formsubmit: serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("formsubmit: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
		req.Header.Set("Referer", c.origin+"/")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ports.SubmissionError{Kind: transportKind(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return &ports.SubmissionError{Kind: transportKind(ctx, err), StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ports.SubmissionError{
			Kind:       ports.SubmissionServer,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(raw), 200)),
		}
	}

	var out submitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return &ports.SubmissionError{Kind: ports.SubmissionServer, StatusCode: resp.StatusCode, Err: fmt.Errorf("respuesta no JSON: %w", err)}
	}
	if ok, _ := cast.ToBoolE(out.Success); !ok {
		return &ports.SubmissionError{
			Kind:       ports.SubmissionServer,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("rechazado: %s", nonEmpty(out.Message, "sin mensaje")),
		}
	}
	return nil
}

func transportKind(ctx context.Context, err error) ports.SubmissionKind {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return ports.SubmissionTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ports.SubmissionTimeout
	}
	return ports.SubmissionNetwork
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
