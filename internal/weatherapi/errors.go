package weatherapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const (
	transportDetail = "weather service unreachable"
	decodeDetail    = "malformed response from weather service"
)

// TransportError is returned when the request never produced an HTTP response:
// DNS, connection, timeout or body read failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("weather API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("weather API returned status %d (code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("weather API returned status %d: %s", e.StatusCode, e.Message)
}

// DecodeError is returned when a 2xx body cannot be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode weather API response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Detail returns the diagnostic text for a fetch error: the upstream error
// message when the API sent one, otherwise a generic description.
func Detail(err error) string {
	var apiErr *APIError
	var transportErr *TransportError
	var decodeErr *DecodeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &transportErr):
		return transportDetail
	case errors.As(err, &decodeErr):
		return decodeDetail
	default:
		return err.Error()
	}
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	switch {
	case payload.Error != nil && payload.Error.Message != "":
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
	case payload.Message != "":
		apiErr.Message = payload.Message
	}
	return apiErr
}

// redactKey strips the API key from URLs embedded in *url.Error values so
// that it never reaches logs.
func redactKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		urlErr.URL = ""
		return err
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	urlErr.URL = u.String()
	return err
}
