package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContactTopics lista cerrada de temas del formulario de contacto.
var ContactTopics = []string{
	"General Inquiry",
	"Product Information",
	"Pricing Request",
	"Technical Support",
	"Partnership Opportunities",
	"Bulk Orders",
	"Quality Concerns",
	"Other",
}

// QuoteUnits unidades admitidas en las líneas de una RFQ. MT es la unidad por defecto.
var QuoteUnits = []string{"MT", "KG", "LB", "FCL"}

// DefaultQuoteUnit unidad asignada cuando la línea no indica ninguna.
const DefaultQuoteUnit = "MT"

// QuoteStatusPending estado asignado por el servidor a una RFQ recién recibida.
const QuoteStatusPending = "pending"

// ContactMessage mensaje del formulario de contacto ya validado.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Company   string
	Topic     string
	Message   string
	CreatedAt time.Time
}

// QuoteLineItem línea de producto solicitada en una RFQ.
type QuoteLineItem struct {
	ProductCode string
	GradeType   GradeType // vacío si el cliente no indicó grado
	Quantity    decimal.Decimal
	Unit        string
}

// QuoteRequest solicitud de cotización (Request For Quote) ya validada.
type QuoteRequest struct {
	ID          string
	ContactName string
	CompanyName string
	Email       string
	Phone       string
	Destination string
	Notes       string
	Items       []QuoteLineItem
	Status      string
	SubmittedAt time.Time
}
