package entity

// USP propuesta de valor mostrada en la portada.
type USP struct {
	Title       string
	Description string
	Icon        string
}

// SiteInfo datos institucionales de la empresa (portada, contacto, pie de página).
type SiteInfo struct {
	CompanyName   string
	Address       []string
	Phones        []string
	Emails        []string
	BusinessHours []string
	USPs          []USP
}
