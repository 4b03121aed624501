package dto

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// ClienteFormData body para POST /api/clientes (cliente sin id).
type ClienteFormData struct {
	Nombre          string       `json:"nombre" validate:"required"`
	Apellido        string       `json:"apellido" validate:"required"`
	TipoDoc         string       `json:"tipoDoc"` // vacío = DNI
	NroDoc          string       `json:"nroDoc" validate:"required"`
	FechaNacimiento entity.Fecha `json:"fechaNacimiento" validate:"required"`
	Mail            string       `json:"mail" validate:"required"`
	Contrasena      string       `json:"contraseña" validate:"required"`
}

// UpdateClienteRequest body para PUT /api/clientes: idCliente más los campos a cambiar.
// Un campo ausente (nil) no se modifica; contraseña vacía tampoco.
type UpdateClienteRequest struct {
	IDCliente       int64         `json:"idCliente"`
	Nombre          *string       `json:"nombre" validate:"omitnil,min=1"`
	Apellido        *string       `json:"apellido" validate:"omitnil,min=1"`
	TipoDoc         *string       `json:"tipoDoc"`
	NroDoc          *string       `json:"nroDoc" validate:"omitnil,min=1"`
	FechaNacimiento *entity.Fecha `json:"fechaNacimiento"`
	Mail            *string       `json:"mail" validate:"omitnil,min=1"`
	Contrasena      *string       `json:"contraseña"`
}

// DeleteClienteRequest body para DELETE /api/clientes.
type DeleteClienteRequest struct {
	IDCliente int64 `json:"idCliente"`
}

// ClienteResponse cliente en respuestas (sin credencial).
type ClienteResponse struct {
	IDCliente       int64        `json:"idCliente"`
	Nombre          string       `json:"nombre"`
	Apellido        string       `json:"apellido"`
	TipoDoc         string       `json:"tipoDoc"`
	NroDoc          string       `json:"nroDoc"`
	FechaNacimiento entity.Fecha `json:"fechaNacimiento"`
	Mail            string       `json:"mail"`
}

// ToClienteResponse proyecta la entidad hacia la API.
func ToClienteResponse(c *entity.Cliente) *ClienteResponse {
	if c == nil {
		return nil
	}
	return &ClienteResponse{
		IDCliente:       c.ID,
		Nombre:          c.Nombre,
		Apellido:        c.Apellido,
		TipoDoc:         string(c.TipoDoc),
		NroDoc:          c.NroDoc,
		FechaNacimiento: c.FechaNacimiento,
		Mail:            c.Mail,
	}
}
