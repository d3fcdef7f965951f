package forecast

import (
	"embed"
	"encoding/json"
	"testing"
	"time"

	"github.com/cor0nius/weatherwidget/internal/weatherapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*.json
var testData embed.FS

func loadResponse(t *testing.T, name string) *weatherapi.ForecastResponse {
	t.Helper()
	data, err := testData.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to open test data: %v", err)
	}
	var raw weatherapi.ForecastResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to decode test data: %v", err)
	}
	return &raw
}

func londonResponse() *weatherapi.ForecastResponse {
	raw := &weatherapi.ForecastResponse{}
	raw.Location.Localtime = "2024-01-01 12:30"
	raw.Current = weatherapi.Current{
		TempC:     15.0,
		Humidity:  80,
		WindKph:   10.0,
		UV:        2,
		Condition: weatherapi.Condition{Text: "Cloudy"},
	}
	raw.Forecast.ForecastDay = []weatherapi.ForecastDay{
		{
			Date: "2024-01-01",
			Day: weatherapi.Day{
				AvgTempC:          14.0,
				DailyChanceOfRain: 60,
				Condition:         weatherapi.Condition{Text: "Light rain"},
			},
		},
	}
	return raw
}

func TestNormalize_London(t *testing.T) {
	raw := londonResponse()

	current, days := Normalize(raw)

	expected := CurrentConditions{
		TemperatureC:    15.0,
		HumidityPct:     80,
		WindKph:         10.0,
		UVIndex:         2,
		ConditionText:   "Cloudy",
		LocalTime:       "2024-01-01 12:30",
		ChanceOfRainPct: 60,
	}
	assert.Equal(t, expected, current)

	require.Len(t, days, 1)
	assert.Equal(t, ForecastDay{
		Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ConditionText:   "Light rain",
		AvgTempC:        14.0,
		ChanceOfRainPct: 60,
	}, days[0])
}

func TestNormalize_KeepsUpstreamOrder(t *testing.T) {
	raw := loadResponse(t, "forecast_three_days.json")

	current, days := Normalize(raw)

	require.Len(t, days, 3)
	wantDates := []string{"2025-08-04", "2025-08-05", "2025-08-06"}
	for i, d := range days {
		assert.Equal(t, wantDates[i], d.Date.Format(DateLayout))
	}
	assert.Equal(t, 87, current.ChanceOfRainPct, "chance of rain comes from the first forecast day")
	assert.Equal(t, 6.0, current.UVIndex)
	assert.Equal(t, "Partly Cloudy ", days[1].ConditionText)
}

func TestNormalize_EmptyForecast(t *testing.T) {
	raw := loadResponse(t, "forecast_sparse.json")

	current, days := Normalize(raw)

	assert.Equal(t, 0, current.ChanceOfRainPct)
	assert.NotNil(t, days)
	assert.Empty(t, days)
	assert.Equal(t, 4.5, current.TemperatureC)
	assert.Equal(t, "", current.ConditionText)
	assert.Equal(t, "", current.LocalTime)
	assert.Equal(t, 0, current.HumidityPct)
}

func TestNormalize_MissingForecastObject(t *testing.T) {
	var raw weatherapi.ForecastResponse
	require.NoError(t, json.Unmarshal([]byte(`{"current": {"uv": 3}}`), &raw))

	current, days := Normalize(&raw)

	assert.Empty(t, days)
	assert.Equal(t, 0, current.ChanceOfRainPct)
	assert.Equal(t, 3.0, current.UVIndex)
}

func TestNormalize_Nil(t *testing.T) {
	current, days := Normalize(nil)

	assert.Equal(t, CurrentConditions{}, current)
	assert.Empty(t, days)
}

func TestNormalize_InvalidDate(t *testing.T) {
	raw := &weatherapi.ForecastResponse{}
	raw.Forecast.ForecastDay = []weatherapi.ForecastDay{
		{Date: "01/02/2024"},
		{Date: ""},
	}

	_, days := Normalize(raw)

	require.Len(t, days, 2)
	assert.True(t, days[0].Date.IsZero())
	assert.True(t, days[1].Date.IsZero())
}
