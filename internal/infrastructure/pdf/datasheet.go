package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

var _ ports.DatasheetRenderer = (*DatasheetGenerator)(nil)

// DatasheetGenerator ficha técnica de producto. Si baseURL no está vacío incluye
// un QR con el enlace a la página del producto.
type DatasheetGenerator struct {
	baseURL string
}

// NewDatasheetGenerator construye el generador.
func NewDatasheetGenerator(baseURL string) *DatasheetGenerator {
	return &DatasheetGenerator{baseURL: strings.TrimRight(baseURL, "/")}
}

// RenderDatasheet genera el PDF y devuelve sus bytes.
func (g *DatasheetGenerator) RenderDatasheet(p *entity.Product, categories []*entity.Category, site *entity.SiteInfo) ([]byte, error) {
	m := maroto.New(newConfig(p.Code+" Technical Datasheet", site.CompanyName))

	m.AddRows(companyHeader(site, "TECHNICAL DATASHEET", p.Code))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(identityRow(p, categoryNames(p, categories)))

	m.AddRows(sectionTitle("Description"))
	m.AddRows(paragraph(p.Description))

	if len(p.Properties) > 0 {
		m.AddRows(sectionTitle("Typical Properties"))
		for i, prop := range p.Properties {
			m.AddRows(keyValueRow(propertyLabel(prop.Name), propertyValue(prop.Value), i%2 == 0))
		}
	}

	if len(p.Applications) > 0 {
		m.AddRows(sectionTitle("Applications"))
		m.AddRows(paragraph("- " + strings.Join(p.Applications, "\n- ")))
	}

	if g.baseURL != "" {
		m.AddRows(row.New(4))
		m.AddRows(qrRow(g.baseURL + "/product/" + p.ID))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footer("Typical values are for guidance only and do not constitute a specification. " +
		"Request a quote for certificates of analysis and availability."))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha técnica: %w", err)
	}
	return doc.GetBytes(), nil
}

// identityRow: familia, grado y categorías del producto.
func identityRow(p *entity.Product, cats []string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 10, Top: top})
	}
	return row.New(22).Add(
		col.New(4).Add(
			label("PRODUCT", 2),
			value(nonEmpty(p.Name, p.Code), 7),
			label("FAMILY", 13),
			value(p.Family, 17),
		),
		col.New(4).Add(
			label("GRADE", 2),
			value(string(p.GradeType), 7),
		),
		col.New(4).Add(
			label("CATEGORIES", 2),
			value(nonEmpty(strings.Join(cats, ", "), "-"), 7),
		),
	)
}

func qrRow(url string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(url, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Product page", props.Text{Style: fontstyle.Bold, Size: 8, Top: 8, Left: 3, Color: colorPrimary}),
			text.New(url, props.Text{Size: 8, Top: 14, Left: 3, Color: colorGray}),
		),
	)
}

// categoryNames nombres de las categorías activas del producto en el orden de CategoryIDs.
func categoryNames(p *entity.Product, categories []*entity.Category) []string {
	byID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	out := make([]string, 0, len(p.CategoryIDs))
	for _, id := range p.CategoryIDs {
		if c, ok := byID[id]; ok && c.IsActive {
			out = append(out, c.Name)
		}
	}
	return out
}
