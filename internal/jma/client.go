// Package jma fetches forecast bulletins from the JMA public forecast
// endpoint, one JSON document per area code.
package jma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"jmacal/internal/forecast"
)

// DefaultBaseURL is the JMA bosai forecast endpoint.
const DefaultBaseURL = "https://www.jma.go.jp/bosai/forecast/data/forecast"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs a single GET per forecast request. There is no retry or
// backoff: a failed fetch means the city is skipped for this run. The
// circuit breaker only short-circuits the remaining cities once the
// endpoint keeps failing.
type Client struct {
	client         HTTPClient
	logger         *zap.Logger
	circuitBreaker *gobreaker.CircuitBreaker
	baseURL        string
}

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	BreakerTimeout time.Duration
}

func NewClient(config ClientConfig, logger *zap.Logger) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	breakerSettings := gobreaker.Settings{
		Name:        "jma-forecast",
		MaxRequests: 1,
		Interval:    0,
		Timeout:     config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &Client{
		client:         &http.Client{Timeout: config.Timeout},
		logger:         logger,
		circuitBreaker: gobreaker.NewCircuitBreaker(breakerSettings),
		baseURL:        baseURL,
	}
}

// Forecast fetches and decodes the forecast bulletins for an area code.
// Any non-200 status or transport error is logged here and returned; the
// caller only needs to skip the city.
func (c *Client) Forecast(ctx context.Context, areaCode string) ([]forecast.Report, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, areaCode)

	body, err := c.get(ctx, url)
	if err != nil {
		c.logger.Warn("Forecast fetch failed",
			zap.String("area_code", areaCode),
			zap.String("url", url),
			zap.Error(err))
		return nil, err
	}

	var reports []forecast.Report
	if err := json.Unmarshal(body, &reports); err != nil {
		c.logger.Warn("Forecast response is not valid JSON",
			zap.String("area_code", areaCode),
			zap.Error(err))
		return nil, fmt.Errorf("decoding forecast response: %w", err)
	}

	c.logger.Debug("Forecast fetched",
		zap.String("area_code", areaCode),
		zap.Int("reports", len(reports)))

	return reports, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request failed: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
