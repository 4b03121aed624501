package entity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jhoicas/clientes-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TipoDocumento tipo de documento de identidad del cliente.
type TipoDocumento string

const (
	TipoDocDNI       TipoDocumento = "DNI"
	TipoDocPasaporte TipoDocumento = "Pasaporte"
	TipoDocCedula    TipoDocumento = "Cédula"
)

// TiposDocumento en el orden en que se ofrecen en el formulario.
var TiposDocumento = []TipoDocumento{TipoDocDNI, TipoDocPasaporte, TipoDocCedula}

// Valido indica si t es uno de los tipos soportados (forma canónica).
func (t TipoDocumento) Valido() bool {
	for _, v := range TiposDocumento {
		if t == v {
			return true
		}
	}
	return false
}

// ParseTipoDocumento acepta la forma canónica o variantes sin tilde y en
// cualquier capitalización ("cedula", "PASAPORTE") y devuelve la canónica.
func ParseTipoDocumento(s string) (TipoDocumento, error) {
	clave := claveTipo(s)
	if clave == "" {
		return "", fmt.Errorf("tipoDoc vacío: %w", domain.ErrInvalidInput)
	}
	for _, v := range TiposDocumento {
		if claveTipo(string(v)) == clave {
			return v, nil
		}
	}
	return "", fmt.Errorf("tipoDoc %q no soportado: %w", s, domain.ErrInvalidInput)
}

func claveTipo(s string) string {
	sinTildes := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(sinTildes, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return cases.Fold().String(out)
}
