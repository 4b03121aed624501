package entity_test

import (
	"testing"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestClienteCambios_Aplicar(t *testing.T) {
	cl := entity.Cliente{
		ID:       5,
		Nombre:   "Ana",
		Apellido: "Diaz",
		TipoDoc:  entity.TipoDocDNI,
		NroDoc:   "123",
		Mail:     "a@x.com",
	}
	mail := "new@x.com"
	cambios := entity.ClienteCambios{Mail: &mail}

	assert.False(t, cambios.Vacio())
	cambios.Aplicar(&cl)

	assert.Equal(t, "new@x.com", cl.Mail)
	assert.Equal(t, "Ana", cl.Nombre)
	assert.Equal(t, int64(5), cl.ID)
	assert.True(t, entity.ClienteCambios{}.Vacio())
}
