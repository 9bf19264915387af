package entity

// Category categoría del catálogo. El árbol tiene dos niveles: categorías raíz
// (ParentID vacío) y sus subcategorías.
type Category struct {
	ID          string
	Slug        string // único entre hermanos con el mismo padre
	Name        string
	Description string
	ParentID    string // vacío si es raíz
	SortOrder   int
	IsActive    bool
}

// IsTopLevel indica si la categoría es raíz.
func (c *Category) IsTopLevel() bool {
	return c.ParentID == ""
}
