package dto

import "time"

// ProductQuery parámetros del listado. Grades y Families vacíos aceptan todo.
type ProductQuery struct {
	Search   string
	Grades   []string
	Families []string
	Sort     string
}

// PropertyResponse propiedad técnica; la lista conserva el orden del catálogo.
type PropertyResponse struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ProductCard producto en listados (tarjeta).
type ProductCard struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name,omitempty"`
	Family       string   `json:"family"`
	GradeType    string   `json:"grade_type"`
	Summary      string   `json:"summary"`
	Applications []string `json:"applications"`
	IsFeatured   bool     `json:"is_featured"`
}

// ProductResponse detalle completo de un producto.
type ProductResponse struct {
	ID               string             `json:"id"`
	Code             string             `json:"code"`
	Name             string             `json:"name,omitempty"`
	Family           string             `json:"family"`
	GradeType        string             `json:"grade_type"`
	ShortDescription string             `json:"short_description,omitempty"`
	Description      string             `json:"description"`
	Properties       []PropertyResponse `json:"properties"`
	Applications     []string           `json:"applications"`
	CategoryIDs      []string           `json:"category_ids"`
	IsFeatured       bool               `json:"is_featured"`
	CreatedAt        time.Time          `json:"created_at"`
}

// AppliedFilters eco de los filtros efectivos.
type AppliedFilters struct {
	Search   string   `json:"q,omitempty"`
	Grades   []string `json:"grade,omitempty"`
	Families []string `json:"family,omitempty"`
	Sort     string   `json:"sort,omitempty"`
}

// ProductListResponse resultado del motor de filtrado. Un resultado vacío con
// filters_applied=true significa "sin coincidencias".
type ProductListResponse struct {
	Items          []ProductCard  `json:"items"`
	Total          int            `json:"total"`
	FiltersApplied bool           `json:"filters_applied"`
	Filters        AppliedFilters `json:"filters"`
}

// ProductDetailResponse producto con sus categorías y hasta 3 relacionados.
type ProductDetailResponse struct {
	Product    ProductResponse    `json:"product"`
	Categories []CategoryResponse `json:"categories"`
	Related    []ProductCard      `json:"related"`
}

// CategoryResponse categoría del catálogo.
type CategoryResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

// CategoryNode categoría raíz con sus subcategorías activas.
type CategoryNode struct {
	CategoryResponse
	Subcategories []CategoryResponse `json:"subcategories"`
}

// CategoryTreeResponse árbol de categorías activas.
type CategoryTreeResponse struct {
	Categories []CategoryNode `json:"categories"`
}

// CategoryPageResponse resolución de /products/{category}[/{subcategory}].
type CategoryPageResponse struct {
	Category      CategoryResponse   `json:"category"`
	Subcategory   *CategoryResponse  `json:"subcategory"`
	Subcategories []CategoryResponse `json:"subcategories"`
	Products      []ProductCard      `json:"products"`
	Total         int                `json:"total"`
}

// FacetsResponse opciones de filtro del listado.
type FacetsResponse struct {
	Grades   []string `json:"grades"`
	Families []string `json:"families"`
}
