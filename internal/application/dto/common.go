package dto

// Códigos de error devueltos junto al mensaje.
const (
	CodeMissingID   = "MISSING_ID"
	CodeInvalidID   = "INVALID_ID"
	CodeInvalidBody = "INVALID_BODY"
	CodeValidation  = "VALIDATION"
	CodeInternal    = "INTERNAL"
)

// ErrorResponse cuerpo de error HTTP: {"error": "...", "code": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
