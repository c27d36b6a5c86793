package rest

import (
	"github.com/AzielCF/az-drive/config"
	"github.com/gofiber/fiber/v2"
)

type Health struct{}

func InitRestHealth(app fiber.Router) Health {
	rest := Health{}
	app.Get("/health", rest.Check)

	return rest
}

func (handler *Health) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": config.AppVersion,
	})
}
