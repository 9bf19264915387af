package dto

import "time"

// ContactRequest entrada del formulario de contacto.
type ContactRequest struct {
	Name    string `json:"name" validate:"min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,min=8,max=20"`
	Company string `json:"company" validate:"max=100"`
	Topic   string `json:"topic" validate:"required,contact_topic"`
	Message string `json:"message" validate:"min=10,max=1000"`
}

// QuoteItemRequest línea de producto de la RFQ. Quantity acepta número o texto
// ("25", 25, "12.5"); una línea sin código o sin cantidad se descarta.
type QuoteItemRequest struct {
	ProductCode string `json:"product_code" validate:"max=100"`
	GradeType   string `json:"grade_type" validate:"omitempty,grade_type"`
	Quantity    any    `json:"quantity" swaggertype:"string" example:"25"`
	Unit        string `json:"unit" validate:"omitempty,quote_unit"`
}

// RFQRequest entrada del formulario de solicitud de cotización.
type RFQRequest struct {
	ContactName string             `json:"contact_name" validate:"min=2,max=100"`
	CompanyName string             `json:"company_name" validate:"min=2,max=100"`
	Email       string             `json:"email" validate:"required,email,max=255"`
	Phone       string             `json:"phone" validate:"min=8,max=20"`
	Destination string             `json:"destination" validate:"min=2,max=100"`
	Notes       string             `json:"notes" validate:"max=1000"`
	Items       []QuoteItemRequest `json:"items" validate:"dive"`
}

// LeadResponse confirmación de un formulario aceptado por el receptor externo.
type LeadResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status,omitempty"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	Items       int       `json:"items,omitempty"`
}

// ValidationErrorResponse 422 con un mensaje por campo (claves = nombres JSON).
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// SubmissionErrorResponse 502/504 con la clase del fallo.
type SubmissionErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// ContactTopicsResponse temas admitidos por el formulario de contacto.
type ContactTopicsResponse struct {
	Topics []string `json:"topics"`
}

// RFQOptionsResponse valores admitidos en las líneas de una RFQ.
type RFQOptionsResponse struct {
	GradeTypes  []string `json:"grade_types"`
	Units       []string `json:"units"`
	DefaultUnit string   `json:"default_unit"`
}
