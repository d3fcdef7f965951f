package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/cor0nius/weatherwidget/internal/lookup"
	"github.com/cor0nius/weatherwidget/internal/view"
)

// This file contains the HTTP handlers for the application. The handlers are
// thin: the lookup controller owns the view state and the view package
// renders it, so each handler only translates between HTTP and those two.

// @Summary      Look up the weather for a city
// @Description  Starts a lookup and waits for it to finish. Fetch failures are reported
// @Description  in the returned view (state "failure"), not as an HTTP error.
// @Tags         weather
// @Accept       json
// @Produce      json
// @Param        city formData  string  false  "City name (e.g., 'London'); may also be sent as JSON {\"city\": ...}"
// @Success      200  {object}  view.View
// @Failure      400  {object}  ErrorResponse "Bad Request - Blank city or unreadable body"
// @Failure      409  {object}  ErrorResponse "Conflict - Another lookup is in progress"
// @Router       /api/lookup [post]
func (cfg *apiConfig) handlerLookup(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLookupRequest(w, r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, "Error reading lookup request", err)
		return
	}

	// The lookup outlives a disconnected client so the shared state always
	// leaves Loading.
	ctx := context.WithoutCancel(r.Context())
	result, err := cfg.controller.Lookup(ctx, req.City)
	switch {
	case errors.Is(err, lookup.ErrEmptyCity):
		cfg.respondWithError(w, http.StatusBadRequest, "City must not be empty", nil)
		return
	case errors.Is(err, lookup.ErrLookupInProgress):
		cfg.respondWithError(w, http.StatusConflict, "A lookup is already in progress", nil)
		return
	case err != nil:
		cfg.respondWithError(w, http.StatusInternalServerError, "Error running lookup", err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, view.FromResult(result))
}

// @Summary      Get the current view state
// @Description  Returns the widget's current state without starting a lookup.
// @Tags         weather
// @Produce      json
// @Success      200  {object}  view.View
// @Router       /api/state [get]
func (cfg *apiConfig) handlerState(w http.ResponseWriter, r *http.Request) {
	cfg.respondWithJSON(w, http.StatusOK, view.FromResult(cfg.controller.Snapshot()))
}

// @Summary      Get widget configuration
// @Tags         config
// @Produce      json
// @Success      200  {object}  ConfigResponse
// @Router       /api/config [get]
func (cfg *apiConfig) handlerConfig(w http.ResponseWriter, r *http.Request) {
	cfg.respondWithJSON(w, http.StatusOK, ConfigResponse{
		ForecastDays:    cfg.forecastDays,
		FetchTimeoutSec: int(cfg.fetchTimeout.Seconds()),
		DevMode:         cfg.devMode,
	})
}
