package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// This file contains helper functions for reading request bodies and sending
// standardized JSON responses.

// maxRequestBody bounds the size of a lookup request body.
const maxRequestBody = 1 << 16

var errUnsupportedContentType = errors.New("unsupported content type")

type lookupRequest struct {
	City string `json:"city"`
}

// decodeLookupRequest reads the city from a JSON body or, for any other
// content type, from the "city" form or query value.
func decodeLookupRequest(w http.ResponseWriter, r *http.Request) (lookupRequest, error) {
	var req lookupRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return req, fmt.Errorf("%w: %s", errUnsupportedContentType, ct)
		}
		mediaType = parsed
	}

	if mediaType == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			return req, fmt.Errorf("invalid JSON body: %w", err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("invalid form body: %w", err)
	}
	req.City = r.FormValue("city")
	return req, nil
}

// respondWithError logs an error message (if one is provided) and sends a
// JSON error response to the client with a given message and status code.
func (cfg *apiConfig) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	if err != nil {
		cfg.logger.Error(msg, "error", err)
	}
	cfg.respondWithJSON(w, code, ErrorResponse{
		Error: msg,
	})
}

// respondWithJSON marshals a payload to JSON, sets the appropriate content-type header,
// writes the HTTP status code, and sends the JSON response to the client.
func (cfg *apiConfig) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	data, err := json.Marshal(payload)
	if err != nil {
		cfg.logger.Error("error marshalling JSON", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	_, err = w.Write(data)
	if err != nil {
		cfg.logger.Error("error writing response", "error", err)
	}
}
