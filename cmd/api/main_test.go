package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const committedSwaggerSpec = "../../docs/swagger.json"

// TestSwaggerSpec_CommittedAndValid: the docs UI middleware panics when its
// spec file is missing, so the spec must ship with the tree and parse.
func TestSwaggerSpec_CommittedAndValid(t *testing.T) {
	raw, err := os.ReadFile(committedSwaggerSpec)
	require.NoError(t, err, "docs/swagger.json must be committed")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Equal(t, "2.0", spec.Swagger)
	for _, path := range []string{
		"/inventory/movements",
		"/inventory/aggregations/mutasi",
		"/inventory/items",
		"/inventory/receive",
		"/inventory/dispatch",
		"/consignments/dispatch",
		"/warehouses/sync",
	} {
		assert.Contains(t, spec.Paths, path)
	}
}

// TestSwaggerMiddleware_MountsOverCommittedSpec mounts the middleware the way
// main does and checks the docs UI answers.
func TestSwaggerMiddleware_MountsOverCommittedSpec(t *testing.T) {
	app := fiber.New()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: committedSwaggerSpec,
		Path:     "docs",
		Title:    "Kepabeanan API",
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
