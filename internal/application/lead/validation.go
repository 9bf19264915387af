// Package lead valida y envía los formularios de captación (contacto y RFQ).
package lead

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/perfectpolymers-api/internal/application/dto"
	"github.com/jhoicas/perfectpolymers-api/internal/domain"
	"github.com/jhoicas/perfectpolymers-api/internal/domain/entity"
)

// Mensajes visibles por el usuario final (en inglés, como el sitio).
const (
	msgNoCompleteItem = "Please add at least one product with code and quantity"
	msgQuantity       = "Please enter a valid quantity"
	msgQuantityPos    = "Quantity must be greater than 0"
)

// ValidationError fallo de validación con un mensaje por campo (claves = nombres JSON,
// p. ej. "email" o "items[1].unit"). errors.Is(err, domain.ErrValidation) es true.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == domain.ErrValidation
}

// Validator esquemas de los formularios sobre go-playground/validator.
// Es seguro entre goroutines (validator.Validate cachea por tipo).
type Validator struct {
	v *validator.Validate
}

// NewValidator registra las reglas propias del dominio: contact_topic, grade_type y quote_unit.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("contact_topic", func(fl validator.FieldLevel) bool {
		return slices.Contains(entity.ContactTopics, fl.Field().String())
	})
	_ = v.RegisterValidation("grade_type", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseGradeType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("quote_unit", func(fl validator.FieldLevel) bool {
		return slices.Contains(entity.QuoteUnits, strings.ToUpper(fl.Field().String()))
	})
	return &Validator{v: v}
}

// Contact normaliza (trim) y valida el formulario de contacto.
func (val *Validator) Contact(in dto.ContactRequest) (*entity.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Topic = strings.TrimSpace(in.Topic)
	in.Message = strings.TrimSpace(in.Message)

	fields := make(map[string]string)
	if err := val.v.Struct(in); err != nil {
		if err := collect(err, fields); err != nil {
			return nil, err
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return &entity.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
		Topic:   in.Topic,
		Message: in.Message,
	}, nil
}

// RFQ normaliza y valida la solicitud de cotización. La regla "al menos una línea
// con código y cantidad" se evalúa siempre, aunque fallen los datos de contacto.
// Solo las líneas completas pasan a la QuoteRequest.
func (val *Validator) RFQ(in dto.RFQRequest) (*entity.QuoteRequest, error) {
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Destination = strings.TrimSpace(in.Destination)
	in.Notes = strings.TrimSpace(in.Notes)
	items := make([]dto.QuoteItemRequest, len(in.Items))
	for i, it := range in.Items {
		it.ProductCode = strings.TrimSpace(it.ProductCode)
		it.GradeType = strings.TrimSpace(it.GradeType)
		it.Unit = strings.TrimSpace(it.Unit)
		items[i] = it
	}
	in.Items = items

	fields := make(map[string]string)
	if err := val.v.Struct(in); err != nil {
		if err := collect(err, fields); err != nil {
			return nil, err
		}
	}

	lines := make([]entity.QuoteLineItem, 0, len(in.Items))
	for i, it := range in.Items {
		qty, ok := parseQuantity(it.Quantity, fmt.Sprintf("items[%d].quantity", i), fields)
		if !ok || it.ProductCode == "" {
			continue
		}
		line := entity.QuoteLineItem{
			ProductCode: it.ProductCode,
			Quantity:    qty,
			Unit:        entity.DefaultQuoteUnit,
		}
		if g, ok := entity.ParseGradeType(it.GradeType); ok {
			line.GradeType = g
		}
		if it.Unit != "" {
			line.Unit = strings.ToUpper(it.Unit)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		fields["items"] = msgNoCompleteItem
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return &entity.QuoteRequest{
		ContactName: in.ContactName,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Destination: in.Destination,
		Notes:       in.Notes,
		Items:       lines,
	}, nil
}

// parseQuantity devuelve ok=false para cantidades vacías (línea incompleta) o inválidas;
// estas últimas además registran el mensaje en fields.
func parseQuantity(raw any, key string, fields map[string]string) (decimal.Decimal, bool) {
	s, err := cast.ToStringE(raw)
	if err != nil {
		fields[key] = msgQuantity
		return decimal.Zero, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	qty, err := decimal.NewFromString(s)
	if err != nil {
		fields[key] = msgQuantity
		return decimal.Zero, false
	}
	if !qty.IsPositive() {
		fields[key] = msgQuantityPos
		return decimal.Zero, false
	}
	return qty, true
}

// collect traduce validator.ValidationErrors a mensajes por campo. Conserva el
// primer mensaje de cada campo. Devuelve error si la validación no pudo ejecutarse.
func collect(err error, fields map[string]string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar formulario: %w", err)
	}
	for _, fe := range verrs {
		key := fe.Namespace()
		if _, rest, ok := strings.Cut(key, "."); ok {
			key = rest
		}
		if _, dup := fields[key]; dup {
			continue
		}
		fields[key] = message(fe)
	}
	return nil
}

var labels = map[string]string{
	"name":         "Name",
	"contact_name": "Name",
	"email":        "Email",
	"phone":        "Phone number",
	"company":      "Company name",
	"company_name": "Company name",
	"message":      "Message",
	"destination":  "Destination",
	"notes":        "Notes",
	"product_code": "Product code",
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "email":
		return "Please enter a valid email address"
	case "contact_topic":
		return "Please select a topic"
	case "grade_type":
		return "Please select a valid grade type"
	case "quote_unit":
		return "Please select a valid unit"
	case "required":
		switch field {
		case "email":
			return "Please enter a valid email address"
		case "topic":
			return "Please select a topic"
		}
		return label(field) + " is required"
	case "min":
		if field == "phone" {
			return "Please enter a valid phone number"
		}
		return fmt.Sprintf("%s must be at least %s characters", label(field), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label(field), fe.Param())
	}
	return "Invalid value"
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}
