package cliente

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/clientes-api/internal/domain"
)

// ValidationError lista los campos que no pasan la validación de entrada.
type ValidationError struct {
	Campos []string
}

func (e *ValidationError) Error() string {
	return "campos inválidos o faltantes: " + strings.Join(e.Campos, ", ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Usar el nombre JSON del campo en los errores
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validar traduce validator.ValidationErrors a *ValidationError.
func validar(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	campos := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		campos = append(campos, fe.Field())
	}
	return &ValidationError{Campos: campos}
}
