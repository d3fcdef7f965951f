// Package view is the render layer: it maps a controller Result onto the JSON
// document a front end draws, applying the icon and UV classification rules.
package view

import (
	"time"

	"github.com/cor0nius/weatherwidget/internal/forecast"
	"github.com/cor0nius/weatherwidget/internal/lookup"
	"github.com/google/uuid"
)

type View struct {
	State     string        `json:"state"`
	LookupID  string        `json:"lookup_id,omitempty"`
	City      string        `json:"city,omitempty"`
	Current   *CurrentJSON  `json:"current,omitempty"`
	Forecast  []ForecastDay `json:"forecast,omitempty"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt string        `json:"updated_at,omitempty"`
}

type CurrentJSON struct {
	TemperatureC    float64 `json:"temperature_c"`
	HumidityPct     int     `json:"humidity_pct"`
	WindKph         float64 `json:"wind_kph"`
	UVIndex         float64 `json:"uv_index"`
	UVLevel         string  `json:"uv_level"`
	UVColor         string  `json:"uv_color"`
	ConditionText   string  `json:"condition_text"`
	Icon            string  `json:"icon"`
	LocalTime       string  `json:"local_time"`
	ChanceOfRainPct int     `json:"chance_of_rain_pct"`
}

type ForecastDay struct {
	Date            string  `json:"date"`
	ConditionText   string  `json:"condition_text"`
	Icon            string  `json:"icon"`
	AvgTempC        float64 `json:"avg_temp_c"`
	ChanceOfRainPct int     `json:"chance_of_rain_pct"`
}

// FromResult renders r. Success data appears only in the success state and
// the error message only in the failure state.
func FromResult(r lookup.Result) View {
	v := View{
		State: r.State.String(),
		City:  r.City,
	}
	if r.ID != uuid.Nil {
		v.LookupID = r.ID.String()
	}

	switch {
	case !r.FinishedAt.IsZero():
		v.UpdatedAt = r.FinishedAt.UTC().Format(time.RFC3339)
	case !r.StartedAt.IsZero():
		v.UpdatedAt = r.StartedAt.UTC().Format(time.RFC3339)
	}

	switch r.State {
	case lookup.StateSuccess:
		if r.Current != nil {
			v.Current = renderCurrent(*r.Current)
		}
		v.Forecast = make([]ForecastDay, len(r.Days))
		for i, d := range r.Days {
			v.Forecast[i] = renderDay(d)
		}
	case lookup.StateFailure:
		v.Error = r.Message
		if v.Error == "" {
			v.Error = lookup.DefaultErrorMessage
		}
	}

	return v
}

func renderCurrent(c forecast.CurrentConditions) *CurrentJSON {
	uv := forecast.ClassifyUV(c.UVIndex)
	return &CurrentJSON{
		TemperatureC:    c.TemperatureC,
		HumidityPct:     c.HumidityPct,
		WindKph:         c.WindKph,
		UVIndex:         c.UVIndex,
		UVLevel:         uv.Label,
		UVColor:         uv.Color,
		ConditionText:   c.ConditionText,
		Icon:            string(forecast.ClassifyCondition(c.ConditionText)),
		LocalTime:       c.LocalTime,
		ChanceOfRainPct: c.ChanceOfRainPct,
	}
}

func renderDay(d forecast.ForecastDay) ForecastDay {
	var date string
	if !d.Date.IsZero() {
		date = d.Date.Format(forecast.DateLayout)
	}
	return ForecastDay{
		Date:            date,
		ConditionText:   d.ConditionText,
		Icon:            string(forecast.ClassifyCondition(d.ConditionText)),
		AvgTempC:        d.AvgTempC,
		ChanceOfRainPct: d.ChanceOfRainPct,
	}
}
