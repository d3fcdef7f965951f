package forecast

import (
	"time"

	"github.com/cor0nius/weatherwidget/internal/weatherapi"
)

// Normalize flattens a forecast response into current conditions and the
// ordered list of forecast days. It never fails: missing fields become zero
// values, and with no forecast days the chance of rain defaults to 0.
func Normalize(raw *weatherapi.ForecastResponse) (CurrentConditions, []ForecastDay) {
	if raw == nil {
		return CurrentConditions{}, []ForecastDay{}
	}

	days := make([]ForecastDay, len(raw.Forecast.ForecastDay))
	for i, fd := range raw.Forecast.ForecastDay {
		days[i] = ForecastDay{
			Date:            parseDate(fd.Date),
			ConditionText:   fd.Day.Condition.Text,
			AvgTempC:        fd.Day.AvgTempC,
			ChanceOfRainPct: fd.Day.DailyChanceOfRain.Int(),
		}
	}

	current := CurrentConditions{
		TemperatureC:  raw.Current.TempC,
		HumidityPct:   raw.Current.Humidity.Int(),
		WindKph:       raw.Current.WindKph,
		UVIndex:       raw.Current.UV,
		ConditionText: raw.Current.Condition.Text,
		LocalTime:     raw.Location.Localtime,
	}
	if len(days) > 0 {
		current.ChanceOfRainPct = days[0].ChanceOfRainPct
	}

	return current, days
}

// parseDate returns the zero time for dates the upstream sent in an
// unexpected format.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
