package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *Handler, log *zap.Logger) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD",
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))

	// Calendar feed
	app.Get("/calendars/:city", handler.GetCalendar)

	// API v1 routes
	api := app.Group("/api/v1")
	api.Get("/health", handler.GetHealth)
	api.Get("/cities", handler.GetCities)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})
}

// parseCityName extracts the city name from a /calendars/:city path
// segment, tolerating an omitted .ics suffix.
func parseCityName(raw string) (string, error) {
	city := strings.TrimSuffix(raw, ".ics")
	if city == "" {
		return "", fiber.ErrBadRequest
	}
	return city, nil
}
