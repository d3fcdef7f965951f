package weatherapi

// The following structs mirror the subset of the WeatherAPI.com forecast.json
// response that the widget reads. Fields the upstream omits decode to their
// zero values.

type ForecastResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
}

type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	TzID      string `json:"tz_id"`
	Localtime string `json:"localtime"`
}

type Current struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	Humidity    FlexInt   `json:"humidity"`
	WindKph     float64   `json:"wind_kph"`
	UV          float64   `json:"uv"`
	Condition   Condition `json:"condition"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date      string `json:"date"`
	DateEpoch int64  `json:"date_epoch"`
	Day       Day    `json:"day"`
}

type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c"`
	DailyChanceOfRain FlexInt   `json:"daily_chance_of_rain"`
	Condition         Condition `json:"condition"`
	UV                float64   `json:"uv"`
}

// errorPayload covers both error shapes seen from the upstream: the nested
// {"error":{"code":..,"message":..}} WeatherAPI sends, and a flat {"message":..}.
type errorPayload struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}
