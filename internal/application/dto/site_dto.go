package dto

type USPResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// SiteResponse datos institucionales (contacto, pie de página).
type SiteResponse struct {
	CompanyName   string        `json:"company_name"`
	Address       []string      `json:"address"`
	Phones        []string      `json:"phones"`
	Emails        []string      `json:"emails"`
	BusinessHours []string      `json:"business_hours"`
	USPs          []USPResponse `json:"usps"`
}

// HomeResponse contenido de la portada.
type HomeResponse struct {
	CompanyName string             `json:"company_name"`
	Featured    []ProductCard      `json:"featured"`
	Categories  []CategoryResponse `json:"categories"`
	USPs        []USPResponse      `json:"usps"`
}
