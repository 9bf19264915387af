// Package export vuelca el catálogo en CSV para distribuidores y hojas de cálculo.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"

	"github.com/jhoicas/perfectpolymers-api/internal/application/ports"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

var _ ports.CatalogExporter = (*CSVExporter)(nil)

// productRow columna por campo; las listas se unen con "; ".
type productRow struct {
	ID           string `csv:"id"`
	Code         string `csv:"code"`
	Name         string `csv:"name"`
	Family       string `csv:"family"`
	GradeType    string `csv:"grade_type"`
	Categories   string `csv:"categories"`
	Summary      string `csv:"summary"`
	Properties   string `csv:"properties"`
	Applications string `csv:"applications"`
	Featured     bool   `csv:"featured"`
	CreatedAt    string `csv:"created_at"`
}

// CSVExporter implementa ports.CatalogExporter con gocsv.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// ExportProducts escribe cabecera + una fila por producto, en el orden recibido.
func (e *CSVExporter) ExportProducts(w io.Writer, products []*entity.Product, categories []*entity.Category) error {
	slugs := make(map[string]string, len(categories))
	for _, c := range categories {
		slugs[c.ID] = c.Slug
	}

	rows := make([]*productRow, 0, len(products))
	for _, p := range products {
		cats := make([]string, 0, len(p.CategoryIDs))
		for _, id := range p.CategoryIDs {
			if s, ok := slugs[id]; ok {
				cats = append(cats, s)
			}
		}
		props := make([]string, 0, len(p.Properties))
		for _, prop := range p.Properties {
			props = append(props, prop.Name+"="+cast.ToString(prop.Value))
		}
		rows = append(rows, &productRow{
			ID:           p.ID,
			Code:         p.Code,
			Name:         p.Name,
			Family:       p.Family,
			GradeType:    string(p.GradeType),
			Categories:   strings.Join(cats, "; "),
			Summary:      p.Summary(),
			Properties:   strings.Join(props, "; "),
			Applications: strings.Join(p.Applications, "; "),
			Featured:     p.IsFeatured,
			CreatedAt:    p.CreatedAt.Format("2006-01-02"),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("export: csv: %w", err)
	}
	return nil
}
