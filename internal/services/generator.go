package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"jmacal/internal/forecast"
	"jmacal/internal/ical"
	"jmacal/internal/jma"
	"jmacal/internal/store"
)

// Generator turns the configured cities into calendar files: fetch the
// forecast for each city's area code, aggregate it into daily events,
// render the calendar document and write it out. Cities are processed one
// at a time; every failure is isolated to its city.
type Generator struct {
	cities map[string]string // city name -> area code
	client *jma.Client
	store  *store.FileStore
	logger *zap.Logger
}

func NewGenerator(cities map[string]string, client *jma.Client, fileStore *store.FileStore, logger *zap.Logger) *Generator {
	return &Generator{
		cities: cities,
		client: client,
		store:  fileStore,
		logger: logger,
	}
}

// GenerateAll runs one full generation pass. An empty city mapping means
// the config was missing or unreadable; the pass logs and does nothing.
func (g *Generator) GenerateAll(ctx context.Context) {
	if len(g.cities) == 0 {
		g.logger.Warn("No cities configured, nothing to generate")
		return
	}

	startTime := time.Now()
	successCount := 0
	failureCount := 0

	// Stable iteration order keeps runs comparable in the logs.
	names := make([]string, 0, len(g.cities))
	for name := range g.cities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, city := range names {
		if g.generateCity(ctx, city, g.cities[city]) {
			successCount++
		} else {
			failureCount++
		}
	}

	g.logger.Info("Calendar generation completed",
		zap.Int("cities", len(names)),
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("success", successCount),
		zap.Int("failure", failureCount))
}

func (g *Generator) generateCity(ctx context.Context, city, areaCode string) bool {
	reports, err := g.client.Forecast(ctx, areaCode)
	if err != nil {
		// Already logged by the client; the city is skipped.
		return false
	}

	events := forecast.Aggregate(city, reports)
	if len(events) == 0 {
		g.logger.Warn("No forecast events parsed, skipping city",
			zap.String("city", city),
			zap.String("area_code", areaCode))
		return false
	}

	doc := ical.Render(events)
	if err := g.store.Write(city, doc); err != nil {
		g.logger.Error("Failed to write calendar",
			zap.String("city", city),
			zap.Error(err))
		return false
	}

	g.logger.Info("Calendar generated",
		zap.String("city", city),
		zap.String("area_code", areaCode),
		zap.Int("events", len(events)))

	return true
}

// Cities returns the configured city names, sorted.
func (g *Generator) Cities() []string {
	names := make([]string, 0, len(g.cities))
	for name := range g.cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
