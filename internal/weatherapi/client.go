// Package weatherapi is a minimal client for the WeatherAPI.com forecast
// endpoint. It issues exactly one request per call and never retries.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/cor0nius/weatherwidget/internal/weatherapi"

const DefaultBaseURL = "https://api.weatherapi.com/v1/forecast.json"

// DefaultTimeout bounds a lookup when the caller does not configure one.
const DefaultTimeout = 10 * time.Second

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient returns an http.Client with the given timeout whose transport
// is instrumented with OpenTelemetry.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewClient creates a forecast client. An empty baseURL selects DefaultBaseURL
// and a nil httpClient selects NewHTTPClient(DefaultTimeout).
func NewClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout)
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// FetchForecast requests a days-long forecast for city. Failures are returned
// as *TransportError, *APIError or *DecodeError.
func (c *Client) FetchForecast(ctx context.Context, city string, days int) (*ForecastResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "weatherapi: fetch-forecast")
	defer span.End()
	span.SetAttributes(attribute.String("city", city), attribute.Int("days", days))

	forecast, err := c.fetchForecast(ctx, city, days)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Detail(err))
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return forecast, nil
}

func (c *Client) fetchForecast(ctx context.Context, city string, days int) (*ForecastResponse, error) {
	forecastURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast URL: %w", err)
	}

	q := forecastURL.Query()
	q.Set("key", c.apiKey)
	q.Set("q", city)
	q.Set("days", strconv.Itoa(days))
	forecastURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, forecastURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create forecast request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: redactKey(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var forecast ForecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &forecast, nil
}
