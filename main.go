package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	serverReadTimeout  = 10 * time.Second
	serverIdleTimeout  = 60 * time.Second
	shutdownTimeout    = 15 * time.Second
	redisCheckTimeout  = 5 * time.Second
	writeTimeoutMargin = 5 * time.Second
)

func main() {
	cfg := config()
	cfg.logger.Debug("configuration loaded")

	if cfg.otelEndpoint != "" {
		shutdownTracer, err := initTracer(context.Background(), cfg.otelEndpoint)
		if err != nil {
			cfg.logger.Warn("tracing disabled", "error", err)
		} else {
			cfg.logger.Info("exporting traces", "endpoint", cfg.otelEndpoint)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := shutdownTracer(ctx); err != nil {
					cfg.logger.Error("error shutting down tracer", "error", err)
				}
			}()
		}
	}

	if cfg.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), redisCheckTimeout)
		if err := cfg.redisClient.Ping(ctx).Err(); err != nil {
			cfg.logger.Warn("redis unreachable, state notifications will fail until it recovers", "error", err)
		} else {
			cfg.logger.Info("publishing lookup states", "channel", cfg.publisher.Channel())
		}
		cancel()
		defer cfg.redisClient.Close()
	}

	server := &http.Server{
		Addr:        ":" + cfg.port,
		Handler:     cfg.routes(),
		ReadTimeout: serverReadTimeout,
		// A lookup response is written only after the fetch has finished.
		WriteTimeout: cfg.fetchTimeout + writeTimeoutMargin,
		IdleTimeout:  serverIdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		cfg.logger.Info("starting server", "port", cfg.port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			cfg.logger.Error("server startup failed", "error", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		cfg.logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			cfg.logger.Error("graceful shutdown failed", "error", err)
			_ = server.Close()
		}
		cfg.logger.Info("server stopped")
	}
}
