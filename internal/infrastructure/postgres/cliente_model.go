package postgres

import (
	"time"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ClienteModel fila de la tabla "Cliente".
type ClienteModel struct {
	IDCliente       int64     `gorm:"column:idCliente;primaryKey;autoIncrement"`
	Nombre          string    `gorm:"column:nombre;not null"`
	Apellido        string    `gorm:"column:apellido;not null"`
	TipoDoc         string    `gorm:"column:tipoDoc;not null"`
	NroDoc          string    `gorm:"column:nroDoc;not null"`
	FechaNacimiento time.Time `gorm:"column:fechaNacimiento;type:date;not null"`
	Mail            string    `gorm:"column:mail;not null"`
	Contrasena      string    `gorm:"column:contrasena;not null"`
}

// TableName nombre de la tabla.
func (ClienteModel) TableName() string {
	return "Cliente"
}

func (m *ClienteModel) toEntity() *entity.Cliente {
	return &entity.Cliente{
		ID:              m.IDCliente,
		Nombre:          m.Nombre,
		Apellido:        m.Apellido,
		TipoDoc:         entity.TipoDocumento(m.TipoDoc),
		NroDoc:          m.NroDoc,
		FechaNacimiento: entity.NuevaFecha(m.FechaNacimiento),
		Mail:            m.Mail,
		ContrasenaHash:  m.Contrasena,
	}
}

func clienteModelFrom(c *entity.Cliente) *ClienteModel {
	return &ClienteModel{
		IDCliente:       c.ID,
		Nombre:          c.Nombre,
		Apellido:        c.Apellido,
		TipoDoc:         string(c.TipoDoc),
		NroDoc:          c.NroDoc,
		FechaNacimiento: c.FechaNacimiento.Time,
		Mail:            c.Mail,
		Contrasena:      c.ContrasenaHash,
	}
}

// columnasCambios traduce cambios parciales a columna -> valor para Updates.
func columnasCambios(c entity.ClienteCambios) map[string]any {
	cols := make(map[string]any)
	if c.Nombre != nil {
		cols["nombre"] = *c.Nombre
	}
	if c.Apellido != nil {
		cols["apellido"] = *c.Apellido
	}
	if c.TipoDoc != nil {
		cols["tipoDoc"] = string(*c.TipoDoc)
	}
	if c.NroDoc != nil {
		cols["nroDoc"] = *c.NroDoc
	}
	if c.FechaNacimiento != nil {
		cols["fechaNacimiento"] = c.FechaNacimiento.Time
	}
	if c.Mail != nil {
		cols["mail"] = *c.Mail
	}
	if c.ContrasenaHash != nil {
		cols["contrasena"] = *c.ContrasenaHash
	}
	return cols
}
