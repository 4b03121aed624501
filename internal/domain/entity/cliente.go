package entity

// Cliente representa un cliente de la ticketera (datos de contacto e identidad).
type Cliente struct {
	ID              int64
	Nombre          string
	Apellido        string
	TipoDoc         TipoDocumento
	NroDoc          string
	FechaNacimiento Fecha
	Mail            string
	ContrasenaHash  string // bcrypt; nunca se expone hacia afuera
}

// ClienteCambios cambios parciales sobre un cliente existente. nil = sin cambio.
type ClienteCambios struct {
	Nombre          *string
	Apellido        *string
	TipoDoc         *TipoDocumento
	NroDoc          *string
	FechaNacimiento *Fecha
	Mail            *string
	ContrasenaHash  *string
}

// Vacio indica si no hay ningún campo a modificar.
func (c ClienteCambios) Vacio() bool {
	return c.Nombre == nil && c.Apellido == nil && c.TipoDoc == nil && c.NroDoc == nil &&
		c.FechaNacimiento == nil && c.Mail == nil && c.ContrasenaHash == nil
}

// Aplicar copia sobre cl los campos presentes en c.
func (c ClienteCambios) Aplicar(cl *Cliente) {
	if c.Nombre != nil {
		cl.Nombre = *c.Nombre
	}
	if c.Apellido != nil {
		cl.Apellido = *c.Apellido
	}
	if c.TipoDoc != nil {
		cl.TipoDoc = *c.TipoDoc
	}
	if c.NroDoc != nil {
		cl.NroDoc = *c.NroDoc
	}
	if c.FechaNacimiento != nil {
		cl.FechaNacimiento = *c.FechaNacimiento
	}
	if c.Mail != nil {
		cl.Mail = *c.Mail
	}
	if c.ContrasenaHash != nil {
		cl.ContrasenaHash = *c.ContrasenaHash
	}
}
