package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/pdf"
	"github.com/jhoicas/perfectpolymers-api/internal/infrastructure/seed"
)

func TestDatasheet_TodosLosProductos(t *testing.T) {
	cat, err := seed.Load()
	require.NoError(t, err)

	gen := pdf.NewDatasheetGenerator("https://perfectpolymers.co")
	for _, p := range cat.Products {
		out, err := gen.RenderDatasheet(p, cat.Categories, cat.Site)
		require.NoError(t, err, p.Code)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "%s: no es un PDF", p.Code)
	}
}

func TestDatasheet_SinURLBaseNiPropiedades(t *testing.T) {
	site := &entity.SiteInfo{CompanyName: "Perfect Polymers FZC"}
	p := &entity.Product{ID: "x", Code: "X 1", Family: "PP", GradeType: entity.GradePrime, Description: "d"}

	out, err := pdf.NewDatasheetGenerator("").RenderDatasheet(p, nil, site)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestQuote(t *testing.T) {
	cat, err := seed.Load()
	require.NoError(t, err)

	rfq := &entity.QuoteRequest{
		ID:          "3f1c2d4e-0000-4000-8000-000000000001",
		ContactName: "Amina Yusuf",
		CompanyName: "Gulf Plastics LLC",
		Email:       "amina@example.com",
		Phone:       "+971501234567",
		Destination: "Jebel Ali, UAE",
		Notes:       "CFR Jebel Ali, delivery in March.",
		Status:      entity.QuoteStatusPending,
		SubmittedAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		Items: []entity.QuoteLineItem{
			{ProductCode: "PP 500P", GradeType: entity.GradePrime, Quantity: decimal.NewFromInt(25), Unit: "MT"},
			{ProductCode: "HE3490-LS", Quantity: decimal.RequireFromString("12.5"), Unit: "MT"},
		},
	}
	out, err := pdf.NewQuoteGenerator().RenderQuote(rfq, cat.Site)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
