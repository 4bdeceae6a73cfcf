package jma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

const sampleFeed = `[
	{
		"publishingOffice": "気象庁",
		"reportDatetime": "2023-10-27T11:00:00+09:00",
		"timeSeries": [
			{
				"timeDefines": ["2023-10-27T17:00:00+09:00"],
				"areas": [{"area": {"name": "東京地方", "code": "130010"}, "weathers": ["晴れ"]}]
			}
		]
	}
]`

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Timeout:        time.Second,
		BreakerTimeout: time.Second,
	}, zap.NewNop())
}

func TestForecastSuccess(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	reports, err := client.Forecast(context.Background(), "130000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/130000.json" {
		t.Errorf("request path = %q, want /130000.json", gotPath)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if len(reports[0].TimeSeries) != 1 {
		t.Errorf("expected 1 time series section, got %d", len(reports[0].TimeSeries))
	}
	if reports[0].PublishingOffice != "気象庁" {
		t.Errorf("publishingOffice = %q", reports[0].PublishingOffice)
	}
}

func TestForecastNon200IsError(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if _, err := client.Forecast(context.Background(), "130000"); err == nil {
		t.Fatal("expected an error for HTTP 500")
	}
	// Single attempt, no retries.
	if requests != 1 {
		t.Errorf("server saw %d requests, want 1", requests)
	}
}

func TestForecastBadJSONIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if _, err := client.Forecast(context.Background(), "130000"); err == nil {
		t.Fatal("expected an error for a non-JSON body")
	}
}

func TestForecastBreakerOpensAfterRepeatedFailures(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	for i := 0; i < 10; i++ {
		if _, err := client.Forecast(context.Background(), "130000"); err == nil {
			t.Fatal("expected errors while the endpoint is failing")
		}
	}

	// Once open, the breaker short-circuits without hitting the endpoint.
	if requests >= 10 {
		t.Errorf("breaker never opened: server saw %d requests", requests)
	}
}
