package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/cor0nius/weatherwidget/internal/lookup"
	"github.com/cor0nius/weatherwidget/internal/notify"
	"github.com/cor0nius/weatherwidget/internal/weatherapi"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type apiConfig struct {
	controller   *lookup.Controller
	forecastDays int
	fetchTimeout time.Duration
	redisClient  *redis.Client
	publisher    *notify.RedisPublisher
	port         string
	otelEndpoint string
	devMode      bool
	logger       *slog.Logger
}

// getRequiredEnv retrieves an environment variable by key and reports an
// error if it is unset or empty.
func getRequiredEnv(key string) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return "", fmt.Errorf("environment variable %s must be set", key)
	}
	return val, nil
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves a positive integer environment variable, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok || valStr == "" {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

func newLogger(w io.Writer, devMode bool) *slog.Logger {
	if devMode {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// NewAPIConfig builds the application from the environment. Logs go to w.
// It does not contact Redis; main checks the connection at startup.
func NewAPIConfig(w io.Writer) (*apiConfig, error) {
	devMode, err := strconv.ParseBool(os.Getenv("DEV_MODE"))
	if err != nil {
		devMode = false
	}
	logger := newLogger(w, devMode)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	apiKey, err := getRequiredEnv("WEATHER_API_KEY")
	if err != nil {
		return nil, err
	}
	apiURL := getEnv("WEATHER_API_URL", weatherapi.DefaultBaseURL, logger)
	forecastDays := getEnvAsInt("FORECAST_DAYS", lookup.DefaultDays, logger)
	fetchTimeoutSec := getEnvAsInt("FETCH_TIMEOUT_SEC", int(weatherapi.DefaultTimeout/time.Second), logger)
	fetchTimeout := time.Duration(fetchTimeoutSec) * time.Second

	httpClient := weatherapi.NewHTTPClient(fetchTimeout)
	httpClient.Transport = &metricsTransport{wrapped: httpClient.Transport}
	client := weatherapi.NewClient(apiKey, apiURL, httpClient)
	controller := lookup.NewController(client,
		lookup.WithDays(forecastDays),
		lookup.WithLogger(logger),
	)

	cfg := apiConfig{
		controller:   controller,
		forecastDays: forecastDays,
		fetchTimeout: fetchTimeout,
		port:         getEnv("PORT", "8080", logger),
		devMode:      devMode,
		logger:       logger,
	}

	if endpoint, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); ok && endpoint != "" {
		cfg.otelEndpoint = endpoint
	}

	if redisURL, ok := os.LookupEnv("REDIS_URL"); ok && redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("could not parse Redis URL: %w", err)
		}
		cfg.redisClient = redis.NewClient(opt)
		channel := getEnv("REDIS_CHANNEL", notify.DefaultChannel, logger)
		cfg.publisher = notify.NewRedisPublisher(cfg.redisClient, channel, logger)
	} else {
		logger.Info("REDIS_URL not set, lookup states will not be published")
	}

	controller.Subscribe(recordLookupMetrics)
	if cfg.publisher != nil {
		controller.Subscribe(cfg.publisher.Observe)
	}

	return &cfg, nil
}

// config is NewAPIConfig for main: it logs to stdout and exits on error.
func config() *apiConfig {
	cfg, err := NewAPIConfig(os.Stdout)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("configuration failed", "error", err)
		os.Exit(1)
	}
	return cfg
}
