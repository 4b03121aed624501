package entity_test

import (
	"testing"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTipoDocumento_Variantes(t *testing.T) {
	casos := map[string]entity.TipoDocumento{
		"DNI":         entity.TipoDocDNI,
		"dni":         entity.TipoDocDNI,
		" Pasaporte ": entity.TipoDocPasaporte,
		"PASAPORTE":   entity.TipoDocPasaporte,
		"Cédula":      entity.TipoDocCedula,
		"cedula":      entity.TipoDocCedula,
		"CÉDULA":      entity.TipoDocCedula,
	}
	for in, want := range casos {
		got, err := entity.ParseTipoDocumento(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.True(t, got.Valido())
	}
}

func TestParseTipoDocumento_Invalido(t *testing.T) {
	for _, in := range []string{"", "   ", "RUT", "licencia"} {
		_, err := entity.ParseTipoDocumento(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}

func TestTipoDocumento_ValidoSoloCanonico(t *testing.T) {
	assert.False(t, entity.TipoDocumento("cedula").Valido())
	assert.True(t, entity.TipoDocCedula.Valido())
}
