package dto

// ErrorResponse cuerpo de error HTTP.
// BackTo solo se informa en los 404 del catálogo (enlace de regreso al listado).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	BackTo  string `json:"back_to,omitempty"`
}
