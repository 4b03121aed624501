// Package clientes es el cliente de la API de clientes: un Client HTTP y un Store
// con el estado de la vista (lista, borrador del formulario, edición en curso).
package clientes

// Cliente registro tal como lo devuelve la API.
type Cliente struct {
	IDCliente       int64  `json:"idCliente"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	TipoDoc         string `json:"tipoDoc"`
	NroDoc          string `json:"nroDoc"`
	FechaNacimiento string `json:"fechaNacimiento"` // YYYY-MM-DD
	Mail            string `json:"mail"`
}

// FormData borrador del formulario: un cliente sin id. Los vacíos no se envían
// (en una actualización, ausente = sin cambio).
type FormData struct {
	Nombre          string `json:"nombre,omitempty"`
	Apellido        string `json:"apellido,omitempty"`
	TipoDoc         string `json:"tipoDoc,omitempty"`
	NroDoc          string `json:"nroDoc,omitempty"`
	FechaNacimiento string `json:"fechaNacimiento,omitempty"`
	Mail            string `json:"mail,omitempty"`
	Contrasena      string `json:"contraseña,omitempty"`
}

// TiposDocumento opciones del selector de tipo de documento.
var TiposDocumento = []string{"DNI", "Pasaporte", "Cédula"}

// DefaultFormData formulario vacío con tipo de documento DNI.
func DefaultFormData() FormData {
	return FormData{TipoDoc: "DNI"}
}

// Campo nombre de un campo editable del formulario (el mismo que en JSON).
type Campo string

const (
	CampoNombre          Campo = "nombre"
	CampoApellido        Campo = "apellido"
	CampoTipoDoc         Campo = "tipoDoc"
	CampoNroDoc          Campo = "nroDoc"
	CampoFechaNacimiento Campo = "fechaNacimiento"
	CampoMail            Campo = "mail"
	CampoContrasena      Campo = "contraseña"
)

// Campos todos los campos del formulario en orden de presentación.
var Campos = []Campo{
	CampoNombre, CampoApellido, CampoTipoDoc, CampoNroDoc, CampoFechaNacimiento, CampoMail, CampoContrasena,
}

// Set asigna value al campo indicado. false si el campo no existe.
func (f *FormData) Set(campo Campo, value string) bool {
	switch campo {
	case CampoNombre:
		f.Nombre = value
	case CampoApellido:
		f.Apellido = value
	case CampoTipoDoc:
		f.TipoDoc = value
	case CampoNroDoc:
		f.NroDoc = value
	case CampoFechaNacimiento:
		f.FechaNacimiento = value
	case CampoMail:
		f.Mail = value
	case CampoContrasena:
		f.Contrasena = value
	default:
		return false
	}
	return true
}

// Get devuelve el valor actual del campo ("" si no existe).
func (f FormData) Get(campo Campo) string {
	switch campo {
	case CampoNombre:
		return f.Nombre
	case CampoApellido:
		return f.Apellido
	case CampoTipoDoc:
		return f.TipoDoc
	case CampoNroDoc:
		return f.NroDoc
	case CampoFechaNacimiento:
		return f.FechaNacimiento
	case CampoMail:
		return f.Mail
	case CampoContrasena:
		return f.Contrasena
	}
	return ""
}

// faltantes lista los campos requeridos vacíos. La contraseña solo es requerida al crear.
func (f FormData) faltantes(creando bool) []string {
	var out []string
	for _, c := range Campos {
		if c == CampoTipoDoc || (c == CampoContrasena && !creando) {
			continue
		}
		if f.Get(c) == "" {
			out = append(out, string(c))
		}
	}
	return out
}

// Row fila de la tabla de clientes.
type Row struct {
	ID        int64
	Nombre    string // nombre y apellido
	Documento string // tipo y número
	Mail      string
}
