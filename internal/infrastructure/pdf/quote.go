package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

var _ ports.QuoteRenderer = (*QuoteGenerator)(nil)

// QuoteGenerator resumen imprimible de una RFQ recibida.
type QuoteGenerator struct{}

func NewQuoteGenerator() *QuoteGenerator { return &QuoteGenerator{} }

// RenderQuote genera el PDF y devuelve sus bytes.
func (g *QuoteGenerator) RenderQuote(rfq *entity.QuoteRequest, site *entity.SiteInfo) ([]byte, error) {
	m := maroto.New(newConfig("Request for Quote "+rfq.ID, site.CompanyName))

	m.AddRows(companyHeader(site, "REQUEST FOR QUOTE", rfq.SubmittedAt.UTC().Format("02 Jan 2006 15:04 MST")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Company Information"))
	m.AddRows(
		keyValueRow("Contact Name", rfq.ContactName, true),
		keyValueRow("Company Name", rfq.CompanyName, false),
		keyValueRow("Email Address", rfq.Email, true),
		keyValueRow("Phone Number", rfq.Phone, false),
		keyValueRow("Destination", rfq.Destination, true),
		keyValueRow("Reference", rfq.ID, false),
		keyValueRow("Status", rfq.Status, true),
	)

	m.AddRows(sectionTitle("Requested Products"))
	m.AddRows(itemsHeaderRow())
	for i, it := range rfq.Items {
		m.AddRows(itemRow(i+1, it))
	}

	if rfq.Notes != "" {
		m.AddRows(sectionTitle("Special Requirements or Notes"))
		m.AddRows(paragraph(rfq.Notes))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footer("We'll review your request and respond within 24 hours during business days."))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar resumen rfq: %w", err)
	}
	return doc.GetBytes(), nil
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Product Code", 5, align.Left),
		h("Grade", 3, align.Left),
		h("Quantity", 2, align.Right),
		h("Unit", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

func itemRow(n int, it entity.QuoteLineItem) core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New(fmt.Sprint(n), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(it.ProductCode, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(nonEmpty(string(it.GradeType), "Any"), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(it.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
	)
}
