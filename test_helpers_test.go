package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cor0nius/weatherwidget/internal/lookup"
	"github.com/cor0nius/weatherwidget/internal/weatherapi"
	"github.com/stretchr/testify/require"
)

// --- Fake upstreams ---

// londonBody is the upstream JSON for a London forecast: cloudy, 15°C, UV 2,
// one light-rain day with 60% chance of rain.
func londonBody(t *testing.T) []byte {
	t.Helper()
	raw := weatherapi.ForecastResponse{}
	raw.Location.Name = "London"
	raw.Location.Localtime = "2024-01-01 12:30"
	raw.Current = weatherapi.Current{
		TempC:     15.0,
		Humidity:  80,
		WindKph:   10.0,
		UV:        2,
		Condition: weatherapi.Condition{Text: "Cloudy"},
	}
	raw.Forecast.ForecastDay = []weatherapi.ForecastDay{
		{
			Date: "2024-01-01",
			Day: weatherapi.Day{
				AvgTempC:          14.0,
				DailyChanceOfRain: 60,
				Condition:         weatherapi.Condition{Text: "Light rain"},
			},
		},
	}
	body, err := json.Marshal(raw)
	require.NoError(t, err)
	return body
}

// newLondonUpstream serves the London forecast for every request.
func newLondonUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	body := londonBody(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

// newStatusUpstream answers every request with the given status and body.
func newStatusUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

// --- Config ---

// newTestConfig wires an apiConfig against upstreamURL without reading the
// environment.
func newTestConfig(t *testing.T, upstreamURL string) *apiConfig {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetchTimeout := 2 * time.Second

	client := weatherapi.NewClient("test-key", upstreamURL, &http.Client{Timeout: fetchTimeout})
	controller := lookup.NewController(client, lookup.WithLogger(logger))

	return &apiConfig{
		controller:   controller,
		forecastDays: lookup.DefaultDays,
		fetchTimeout: fetchTimeout,
		port:         "8080",
		logger:       logger,
	}
}
