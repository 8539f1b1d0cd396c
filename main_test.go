package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"katalog/internal/config"
	"katalog/internal/repositories"
)

func testApp() *App {
	return NewApp(config.Config{AppPort: ":0"}, repositories.NewMockProductRepository(), nil)
}

func request(t *testing.T, a *App, method, path string, body []byte) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := a.fiber.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestHealthCheck(t *testing.T) {
	resp, body := request(t, testApp(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Server is running!", body["message"])
}

func TestRouteNotFound(t *testing.T) {
	resp, body := request(t, testApp(), http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestSecurityHeadersApplied(t *testing.T) {
	resp, _ := request(t, testApp(), http.MethodGet, "/health", nil)

	assert.Equal(t, "nosniff", resp.Header.Get(fiber.HeaderXContentTypeOptions))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "default-src 'self'")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestProductFlowThroughFullStack(t *testing.T) {
	a := testApp()

	// Create runs through the whole middleware chain, sanitizer included.
	resp, body := request(t, a, http.MethodPost, "/api/products/",
		[]byte(`{"name":"Widget","price":10,"image":"http://x.com/i.png","$where":"1"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product created successfully", body["message"])

	resp, body = request(t, a, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product not found", body["message"])
}
