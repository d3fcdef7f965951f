// Package forecast turns raw forecast responses into the flat records the
// widget displays, and holds the pure classification rules applied to them
// at render time.
package forecast

import "time"

// DateLayout is the calendar date format used by the upstream API.
const DateLayout = "2006-01-02"

type CurrentConditions struct {
	TemperatureC    float64 `json:"temperature_c"`
	HumidityPct     int     `json:"humidity_pct"`
	WindKph         float64 `json:"wind_kph"`
	UVIndex         float64 `json:"uv_index"`
	ConditionText   string  `json:"condition_text"`
	LocalTime       string  `json:"local_time"`
	ChanceOfRainPct int     `json:"chance_of_rain_pct"`
}

type ForecastDay struct {
	Date            time.Time `json:"date"`
	ConditionText   string    `json:"condition_text"`
	AvgTempC        float64   `json:"avg_temp_c"`
	ChanceOfRainPct int       `json:"chance_of_rain_pct"`
}

// IconCategory names one of the animated icon sets the widget can show.
type IconCategory string

const (
	IconClearDay        IconCategory = "CLEAR_DAY"
	IconCloudy          IconCategory = "CLOUDY"
	IconRain            IconCategory = "RAIN"
	IconPartlyCloudyDay IconCategory = "PARTLY_CLOUDY_DAY"
	IconFoggy           IconCategory = "FOGGY"
)

type UVClassification struct {
	Label string `json:"label"`
	Color string `json:"color"`
}
