package main

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfigResponse describes the settings a front end may want to display.
type ConfigResponse struct {
	ForecastDays    int  `json:"forecast_days"`
	FetchTimeoutSec int  `json:"fetch_timeout_sec"`
	DevMode         bool `json:"dev_mode"`
}
