package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/clientes-api/internal/application/cliente"
	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/internal/testutil"
	"github.com/jhoicas/clientes-api/pkg/clientes"
)

func newStore(t *testing.T) *clientes.Store {
	t.Helper()
	uc := cliente.NewUseCase(testutil.NewClienteRepo(), cliente.Config{BcryptCost: bcrypt.MinCost}, nil)
	app := apphttp.NewApp(apphttp.ServerConfig{Name: "clientes-test"}, apphttp.RouterDeps{ClienteUC: uc}, nil)
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return clientes.NewStore(clientes.NewClient(srv.URL, time.Second), nil)
}

func TestRun_AltaEdicionBaja(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, run(ctx, store, []string{
		"add", "-nombre", "Ana", "-apellido", "Diaz", "-nroDoc", "123",
		"-fechaNacimiento", "1990-01-01", "-mail", "a@x.com", "-contraseña", "secret",
	}, &out))
	assert.Contains(t, out.String(), "Ana Diaz")
	assert.Contains(t, out.String(), "DNI 123")

	out.Reset()
	require.NoError(t, run(ctx, store, []string{"edit", "1", "-mail", "new@x.com"}, &out))
	assert.Contains(t, out.String(), "new@x.com")

	out.Reset()
	require.NoError(t, run(ctx, store, []string{"delete", "1"}, &out))
	assert.NotContains(t, out.String(), "Ana")
}

func TestRun_Errores(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	var out bytes.Buffer

	assert.Error(t, run(ctx, store, []string{"edit", "7"}, &out))
	assert.Error(t, run(ctx, store, []string{"delete", "x"}, &out))
	assert.Error(t, run(ctx, store, []string{"add", "-nombre", "Ana"}, &out))
	assert.Error(t, run(ctx, store, []string{"otro"}, &out))
}
