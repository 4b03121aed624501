package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/clientes-api/internal/domain"
)

// LayoutFecha formato de fecha de nacimiento en la API.
const LayoutFecha = "2006-01-02"

// Fecha fecha calendario sin hora (UTC, medianoche).
type Fecha struct {
	time.Time
}

// NuevaFecha trunca t a su día calendario.
func NuevaFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseFecha acepta "2006-01-02" o un timestamp RFC3339 (del que se toma el día).
func ParseFecha(s string) (Fecha, error) {
	if t, err := time.Parse(LayoutFecha, s); err == nil {
		return NuevaFecha(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha %q inválida: %w", s, domain.ErrInvalidInput)
	}
	return NuevaFecha(t.UTC()), nil
}

// String devuelve la fecha en LayoutFecha; vacío si es cero.
func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(LayoutFecha)
}

// MarshalJSON serializa como "2006-01-02"; la fecha cero es "".
func (f Fecha) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON acepta "", null, "2006-01-02" o RFC3339.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = Fecha{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha: %w", domain.ErrInvalidInput)
	}
	if s == "" {
		*f = Fecha{}
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
