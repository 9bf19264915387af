package entity

import "time"

// Property atributo técnico del producto (mfi, density, ...). El significado
// depende de la familia; el valor es un escalar (string, número o bool).
type Property struct {
	Name  string
	Value any
}

// Product producto del catálogo de polímeros.
// Code es la clave de búsqueda en la práctica aunque no se garantiza única.
// CategoryIDs es la asociación explícita producto↔categoría (muchos a muchos).
type Product struct {
	ID               string
	Code             string
	Name             string // opcional
	Family           string // PP, HDPE, PVC, ...
	GradeType        GradeType
	ShortDescription string // opcional
	Description      string
	Properties       []Property // en el orden del origen de datos
	Applications     []string
	CategoryIDs      []string
	IsFeatured       bool
	IsActive         bool
	CreatedAt        time.Time
}

// Summary devuelve la descripción corta si existe, si no la completa.
func (p *Product) Summary() string {
	if p.ShortDescription != "" {
		return p.ShortDescription
	}
	return p.Description
}

// InCategory indica si el producto está asignado a alguna de las categorías dadas.
func (p *Product) InCategory(ids ...string) bool {
	for _, own := range p.CategoryIDs {
		for _, id := range ids {
			if own == id {
				return true
			}
		}
	}
	return false
}

// PropertyMap devuelve las propiedades como mapa (para serialización JSON).
func (p *Product) PropertyMap() map[string]any {
	m := make(map[string]any, len(p.Properties))
	for _, prop := range p.Properties {
		m[prop.Name] = prop.Value
	}
	return m
}
