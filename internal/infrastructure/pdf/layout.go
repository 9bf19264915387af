// Package pdf genera los documentos PDF del sitio con Maroto v2: la ficha
// técnica de producto y el resumen de una RFQ adjunto al correo de ventas.
package pdf

import (
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	domain "github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// charsPerLine aproximación de caracteres por línea a tamaño 9 en una columna de 12.
const charsPerLine = 105

func newConfig(title, author string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
}

// companyHeader: nombre de la empresa (izq) y título del documento (der).
func companyHeader(site *domain.SiteInfo, title, subtitle string) core.Row {
	contact := strings.Join(append(nonNil(site.Phones), nonNil(site.Emails)...), "  |  ")
	return row.New(20).Add(
		col.New(7).Add(
			text.New(site.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(strings.Join(site.Address, ", "), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(contact, props.Text{
				Size: 7, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

// paragraph fila con altura estimada según la longitud del texto.
func paragraph(s string) core.Row {
	lines := 1
	for _, l := range strings.Split(s, "\n") {
		lines += len(l) / charsPerLine
	}
	return row.New(float64(lines)*4.5 + 2).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 9, Top: 1}),
	))
}

// keyValueRow fila de dos columnas (etiqueta | valor).
func keyValueRow(key, value string, shaded bool) core.Row {
	r := row.New(6).Add(
		col.New(4).Add(text.New(key, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5, Left: 2})),
		col.New(8).Add(text.New(value, props.Text{Size: 8, Top: 1.5, Left: 1})),
	)
	if shaded {
		r.WithStyle(&props.Cell{BackgroundColor: colorLight})
	}
	return r
}

func footer(s string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 6.5, Color: colorGray, Top: 3, Align: align.Center}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// propertyLabel "heat_resistance" -> "Heat Resistance", "mfi" -> "MFI".
func propertyLabel(name string) string {
	switch strings.ToLower(name) {
	case "mfi", "iv":
		return strings.ToUpper(name)
	}
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// propertyValue representa el escalar de una propiedad (bool como Yes/No).
func propertyValue(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return "-"
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
