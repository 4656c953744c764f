package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doPost(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

// Alta completa: 201 con el estado derivado y los valores por defecto.
func TestCreateProduct_Completo(t *testing.T) {
	app := buildTestApp(&stubRepo{})

	resp := doPost(t, app, "/api/products/", `{"name":"bolso","costPrice":80}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.JSONEq(t, `"bolso"`, string(body["name"]))
	assert.JSONEq(t, `1`, string(body["quantity"]))
	assert.JSONEq(t, `"available"`, string(body["status"]))
}

// Sin costPrice el registro se rechaza: el costo en cero contaminaría todos
// los totales del dashboard.
func TestCreateProduct_SinCostoRechazado(t *testing.T) {
	app := buildTestApp(&stubRepo{})

	resp := doPost(t, app, "/api/products/", `{"name":"bolso"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body["code"])
}

// name vacío: mismo contrato de validación.
func TestCreateProduct_SinNombreRechazado(t *testing.T) {
	app := buildTestApp(&stubRepo{})

	resp := doPost(t, app, "/api/products/", `{"costPrice":80}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
