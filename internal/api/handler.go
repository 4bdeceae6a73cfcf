package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"jmacal/internal/services"
	"jmacal/internal/store"
)

type Handler struct {
	generator *services.Generator
	store     *store.FileStore
	logger    *zap.Logger
}

func NewHandler(generator *services.Generator, fileStore *store.FileStore, logger *zap.Logger) *Handler {
	return &Handler{
		generator: generator,
		store:     fileStore,
		logger:    logger,
	}
}

// GetCalendar handles GET /calendars/:city.ics
func (h *Handler) GetCalendar(c *fiber.Ctx) error {
	city, err := parseCityName(c.Params("city"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "City parameter is required",
		})
	}

	doc, err := h.store.Read(city)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No calendar for city",
				"city":  city,
			})
		}

		h.logger.Error("Failed to read calendar",
			zap.String("city", city),
			zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read calendar",
		})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	return c.SendString(doc)
}

// GetCities handles GET /api/v1/cities
func (h *Handler) GetCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cities": h.generator.Cities(),
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"calendars": len(h.store.Cities()),
	})
}

var startTime = time.Now()
