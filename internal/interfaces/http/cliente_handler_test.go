package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jhoicas/clientes-api/docs"
	"github.com/jhoicas/clientes-api/internal/application/cliente"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const anaJSON = `{"nombre":"Ana","apellido":"Diaz","tipoDoc":"DNI","nroDoc":"123","fechaNacimiento":"1990-01-01","mail":"a@x.com","contraseña":"secret"}`

// buildTestApp arma la app completa sobre el repositorio en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *testutil.ClienteRepo) {
	t.Helper()
	repo := testutil.NewClienteRepo()
	uc := cliente.NewUseCase(repo, cliente.Config{BcryptCost: bcrypt.MinCost}, nil)
	app := apphttp.NewApp(apphttp.ServerConfig{Name: "clientes-test"}, apphttp.RouterDeps{ClienteUC: uc}, nil)
	return app, repo
}

// doJSON lanza la petición y devuelve status y cuerpo decodificado en out (si no es nil).
func doJSON(t *testing.T, app *fiber.App, method, path, body string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func seedAna(repo *testutil.ClienteRepo, id int64) {
	f, _ := entity.ParseFecha("1990-01-01")
	repo.Seed(entity.Cliente{
		ID:              id,
		Nombre:          "Ana",
		Apellido:        "Diaz",
		TipoDoc:         entity.TipoDocDNI,
		NroDoc:          "123",
		FechaNacimiento: f,
		Mail:            "a@x.com",
		ContrasenaHash:  "hash",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios end-to-end
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: alta completa → 201 con idCliente asignado y sin contraseña.
func TestClientes_CrearDevuelve201ConID(t *testing.T) {
	app, _ := buildTestApp(t)

	var body map[string]any
	status := doJSON(t, app, http.MethodPost, "/api/clientes", anaJSON, &body)

	assert.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 1, body["idCliente"])
	assert.Equal(t, "Ana", body["nombre"])
	assert.Equal(t, "1990-01-01", body["fechaNacimiento"])
	assert.NotContains(t, body, "contraseña", "la credencial nunca se devuelve")
}

// Escenario B: PUT con idCliente existente → 200, solo cambia mail.
func TestClientes_ActualizarParcial(t *testing.T) {
	app, repo := buildTestApp(t)
	seedAna(repo, 5)

	var body map[string]any
	status := doJSON(t, app, http.MethodPut, "/api/clientes", `{"idCliente":5,"mail":"new@x.com"}`, &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "new@x.com", body["mail"])
	assert.Equal(t, "Ana", body["nombre"])
	assert.Equal(t, "Diaz", body["apellido"])
	assert.Equal(t, "DNI", body["tipoDoc"])
	assert.Equal(t, "1990-01-01", body["fechaNacimiento"])
}

// Escenario C: PUT sin idCliente → 400 "ID es requerido" y sin mutación.
func TestClientes_ActualizarSinID(t *testing.T) {
	app, repo := buildTestApp(t)

	var body map[string]any
	status := doJSON(t, app, http.MethodPut, "/api/clientes", `{"mail":"new@x.com"}`, &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ID es requerido", body["error"])
	assert.Equal(t, "MISSING_ID", body["code"])
	assert.Zero(t, repo.Mutaciones)
}

// Escenario D: DELETE de un id inexistente → error del almacén → 500.
func TestClientes_EliminarInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	var body map[string]any
	status := doJSON(t, app, http.MethodDelete, "/api/clientes", `{"idCliente":999}`, &body)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, "INTERNAL", body["code"])
}

// Escenario E: tabla vacía → 200 con [] (nunca null).
func TestClientes_ListarVacio(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// Resto de casos
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_CrearYListar(t *testing.T) {
	app, _ := buildTestApp(t)

	var creado map[string]any
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/api/clientes", anaJSON, &creado))

	var lista []map[string]any
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/api/clientes", "", &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, creado["idCliente"], lista[0]["idCliente"])
}

func TestClientes_CrearIgnoraIDDelCuerpo(t *testing.T) {
	app, _ := buildTestApp(t)

	body := strings.Replace(anaJSON, "{", `{"idCliente":77,`, 1)
	var creado map[string]any
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/api/clientes", body, &creado))
	assert.EqualValues(t, 1, creado["idCliente"])
}

func TestClientes_CrearSinCamposRequeridos(t *testing.T) {
	app, repo := buildTestApp(t)

	var body map[string]any
	status := doJSON(t, app, http.MethodPost, "/api/clientes", `{"nombre":"Ana"}`, &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["error"], "apellido")
	assert.Zero(t, repo.Mutaciones)
}

func TestClientes_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	var body map[string]any
	status := doJSON(t, app, http.MethodPost, "/api/clientes", `{"nombre":`, &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", body["code"])

	status = doJSON(t, app, http.MethodPost, "/api/clientes",
		strings.Replace(anaJSON, "1990-01-01", "01/01/1990", 1), &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestClientes_EliminarSinID(t *testing.T) {
	app, repo := buildTestApp(t)

	var body map[string]any
	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodDelete, "/api/clientes", `{}`, &body))
	assert.Equal(t, "ID es requerido", body["error"])

	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodDelete, "/api/clientes", "", &body))
	assert.Equal(t, "MISSING_ID", body["code"])
	assert.Zero(t, repo.Mutaciones)
}

func TestClientes_Eliminar(t *testing.T) {
	app, repo := buildTestApp(t)
	seedAna(repo, 3)

	var body map[string]any
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodDelete, "/api/clientes", `{"idCliente":3}`, &body))
	assert.NotEmpty(t, body["message"])
	_, ok := repo.Get(3)
	assert.False(t, ok)
}

func TestClientes_RutasConIDEnPath(t *testing.T) {
	app, repo := buildTestApp(t)
	seedAna(repo, 5)

	var body map[string]any
	// El id de la ruta tiene prioridad sobre el del cuerpo.
	status := doJSON(t, app, http.MethodPut, "/api/clientes/5", `{"idCliente":9,"nombre":"Anita"}`, &body)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 5, body["idCliente"])
	assert.Equal(t, "Anita", body["nombre"])

	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodDelete, "/api/clientes/5", "", &body))
	_, ok := repo.Get(5)
	assert.False(t, ok)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodDelete, "/api/clientes/abc", "", &body))
	assert.Equal(t, "INVALID_ID", body["code"])
}

func TestClientes_ErrorDelAlmacen(t *testing.T) {
	app, repo := buildTestApp(t)
	repo.Fail = errors.New("conexión perdida")

	var body map[string]any
	status := doJSON(t, app, http.MethodGet, "/api/clientes", "", &body)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "conexión perdida")
}

func TestHealthYRequestID(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "clientes-test", body["service"])
}

func TestRutaInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	var body map[string]any
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/api/otra", "", &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestDocsJSON(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/docs.json", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/clientes")
	assert.Contains(t, paths, "/api/clientes/{id}")
}
