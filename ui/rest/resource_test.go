package rest_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	domainCache "github.com/AzielCF/az-drive/domains/cache"
	"github.com/AzielCF/az-drive/ui/rest"
	"github.com/AzielCF/az-drive/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, domainCache.ICacheUsecase) {
	cache := usecase.NewCacheService(30*time.Minute, 0, nil)
	resource := usecase.NewResourceService(cache)

	app := fiber.New()
	rest.InitRestResource(app, resource, cache)
	rest.InitRestHealth(app)
	return app, cache
}

func TestRestRead_Hit(t *testing.T) {
	app, cache := newTestApp()
	cache.Store("doc1", domainCache.DocumentContent{}, "Hello world", domainCache.KindDocument)

	resp, err := app.Test(httptest.NewRequest("GET", "/resource/read?uri=gdrive://docs/doc1/chunk/0-5", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Hello", string(body))
}

func TestRestRead_Miss(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/resource/read?uri=gdrive://files/unknown/content", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var result struct {
		Error      string `json:"error"`
		Hint       string `json:"hint"`
		Suggestion string `json:"suggestion"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "cache miss for unknown", result.Error)
	assert.NotEmpty(t, result.Hint)
}

func TestRestRead_MissingURI(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/resource/read", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRestCacheStats(t *testing.T) {
	app, cache := newTestApp()
	cache.Store("doc1", domainCache.DocumentContent{}, "text", domainCache.KindDocument)

	resp, err := app.Test(httptest.NewRequest("GET", "/cache/stats", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Code    string `json:"code"`
		Results struct {
			Size int `json:"size"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "SUCCESS", envelope.Code)
	assert.Equal(t, 1, envelope.Results.Size)
}

func TestRestHealth(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
