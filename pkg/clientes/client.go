package clientes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const clientesPath = "/api/clientes"

// APIError respuesta de error de la API ({"error","code"}) con su status HTTP.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

// Client cliente HTTP de /api/clientes.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient construye el cliente contra baseURL (ej. http://localhost:8080).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP permite inyectar el *http.Client (tests, transportes propios).
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// List GET /api/clientes.
func (c *Client) List(ctx context.Context) ([]Cliente, error) {
	var out []Cliente
	if err := c.do(ctx, http.MethodGet, clientesPath, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Cliente{}
	}
	return out, nil
}

// Create POST /api/clientes.
func (c *Client) Create(ctx context.Context, in FormData) (*Cliente, error) {
	var out Cliente
	if err := c.do(ctx, http.MethodPost, clientesPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type updateBody struct {
	IDCliente int64 `json:"idCliente"`
	FormData
}

// Update PUT /api/clientes/{id}; el cuerpo lleva también idCliente.
func (c *Client) Update(ctx context.Context, id int64, in FormData) (*Cliente, error) {
	var out Cliente
	path := clientesPath + "/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodPut, path, updateBody{IDCliente: id, FormData: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /api/clientes/{id}.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := clientesPath + "/" + strconv.FormatInt(id, 10)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("armar petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if json.NewDecoder(resp.Body).Decode(&eb) == nil && eb.Error != "" {
			apiErr.Message, apiErr.Code = eb.Error, eb.Code
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}
