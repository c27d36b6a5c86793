package rest

import (
	domainCache "github.com/AzielCF/az-drive/domains/cache"
	domainResource "github.com/AzielCF/az-drive/domains/resource"
	"github.com/AzielCF/az-drive/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Resource struct {
	Service      domainResource.IResourceUsecase
	CacheService domainCache.ICacheUsecase
}

func InitRestResource(app fiber.Router, service domainResource.IResourceUsecase, cacheService domainCache.ICacheUsecase) Resource {
	rest := Resource{Service: service, CacheService: cacheService}
	app.Get("/resource/read", rest.Read)
	app.Get("/cache/stats", rest.CacheStats)
	app.Post("/cache/sweep", rest.CacheSweep)

	return rest
}

// Read resolves a gdrive:// address: plain text on a hit, a structured JSON
// error object otherwise.
func (handler *Resource) Read(c *fiber.Ctx) error {
	uri := c.Query("uri")
	if uri == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ResponseData{
			Status:  400,
			Code:    "VALIDATION_ERROR",
			Message: "query parameter uri is required",
		})
	}

	result := handler.Service.Read(uri)
	if result.Content != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(*result.Content)
	}

	status := fiber.StatusNotFound
	if result.Err == "" {
		// Legacy addresses resolve outside the cache; report where to go.
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(result)
}

func (handler *Resource) CacheStats(c *fiber.Ctx) error {
	stats := handler.CacheService.Stats()

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache stats",
		Results: stats,
	})
}

func (handler *Resource) CacheSweep(c *fiber.Ctx) error {
	removed := handler.CacheService.Sweep()

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache sweep finished",
		Results: map[string]any{
			"removed": removed,
		},
	})
}
