package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

type stubQuotes struct{ calls int }

func (s *stubQuotes) RenderQuote(*entity.QuoteRequest, *entity.SiteInfo) ([]byte, error) {
	s.calls++
	return []byte("%PDF-1.3 stub"), nil
}

func testConfig() Config {
	return Config{Host: "smtp.example.com", Port: 587, From: "web@perfectpolymers.co", To: "sales@perfectpolymers.co"}
}

func render(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestNew_RequiereDirecciones(t *testing.T) {
	_, err := New(Config{Host: "smtp.example.com"}, nil, nil)
	assert.Error(t, err)
}

func TestContactMessage(t *testing.T) {
	m, err := New(testConfig(), nil, nil)
	require.NoError(t, err)

	msg, err := m.ContactMessage(&entity.ContactMessage{
		ID: "c-1", Name: "Amina Yusuf", Email: "amina@example.com",
		Topic: "Bulk Orders", Message: "Need 200 MT of PP 500P.",
		CreatedAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	raw := render(t, msg)
	assert.Contains(t, raw, "Subject: Contact form: Bulk Orders")
	assert.Contains(t, raw, "Reply-To: <amina@example.com>")
	assert.Contains(t, raw, "To: <sales@perfectpolymers.co>")
	assert.Contains(t, raw, "Need 200 MT of PP 500P.")
	assert.NotContains(t, raw, "Phone:", "los campos vacíos se omiten")
}

func TestQuoteMessage_AdjuntaPDF(t *testing.T) {
	quotes := &stubQuotes{}
	m, err := New(testConfig(), quotes, &entity.SiteInfo{CompanyName: "Perfect Polymers FZC"})
	require.NoError(t, err)

	msg, err := m.QuoteMessage(&entity.QuoteRequest{
		ID: "3f1c2d4e-aaaa", ContactName: "Amina", CompanyName: "Gulf Plastics LLC",
		Email: "amina@example.com", Status: entity.QuoteStatusPending,
		Items: []entity.QuoteLineItem{{ProductCode: "PP 500P", Quantity: decimal.NewFromInt(25), Unit: "MT"}},
	})
	require.NoError(t, err)

	raw := render(t, msg)
	assert.Equal(t, 1, quotes.calls)
	assert.Contains(t, raw, "Subject: RFQ from Gulf Plastics LLC (1 products)")
	assert.Contains(t, raw, "1. PP 500P | Any grade | 25 MT")
	assert.Contains(t, raw, `filename="rfq-3f1c2d4e.pdf"`)
}

func TestSubmit_ClasificaErrores(t *testing.T) {
	m, err := New(testConfig(), nil, nil)
	require.NoError(t, err)

	m.send = func(context.Context, *mail.Msg) error { return nil }
	require.NoError(t, m.SubmitContact(context.Background(), &entity.ContactMessage{Email: "a@b.co", Topic: "Other"}))

	m.send = func(context.Context, *mail.Msg) error { return errors.New("connection refused") }
	err = m.SubmitContact(context.Background(), &entity.ContactMessage{Email: "a@b.co", Topic: "Other"})
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	assert.Equal(t, ports.SubmissionNetwork, ports.SubmissionKindOf(err))

	m.send = func(context.Context, *mail.Msg) error { return context.DeadlineExceeded }
	err = m.SubmitQuote(context.Background(), &entity.QuoteRequest{Email: "a@b.co"})
	assert.Equal(t, ports.SubmissionTimeout, ports.SubmissionKindOf(err))
}
