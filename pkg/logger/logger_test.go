package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("cualquiera"))
}

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	l.Named("clientes").Info().Int64("id_cliente", 7).Msg("cliente creado")
	l.Debug().Msg("no debe aparecer")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cliente creado", entry["message"])
	assert.Equal(t, "clientes", entry["component"])
	assert.EqualValues(t, 7, entry["id_cliente"])
	assert.NotContains(t, buf.String(), "no debe aparecer")
}

func TestNop_NoEscribe(t *testing.T) {
	l := Nop()
	l.Error().Msg("silencio")
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}
