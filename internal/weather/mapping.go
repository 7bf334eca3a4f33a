package weather

import (
	"fmt"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/types"
	"time"
)

// mapForecastResponse translates an Open-Meteo forecast payload into a Report
// for the given location. The daily series are parallel arrays keyed by index;
// a length mismatch between them means the payload cannot be trusted.
func mapForecastResponse(loc types.Location, resp *openmeteo.ForecastAPIResponse) (*Report, error) {
	if resp.CurrentWeather == nil {
		return nil, fmt.Errorf("%w: missing current_weather block", openmeteo.ErrMalformedResponse)
	}
	if resp.Daily == nil {
		return nil, fmt.Errorf("%w: missing daily block", openmeteo.ErrMalformedResponse)
	}

	daily := resp.Daily
	days := len(daily.Time)
	if len(daily.Temperature2MMax) != days || len(daily.Temperature2MMin) != days || len(daily.WeatherCode) != days {
		return nil, fmt.Errorf("%w: daily series lengths do not match (time=%d max=%d min=%d code=%d)",
			openmeteo.ErrMalformedResponse, days, len(daily.Temperature2MMax), len(daily.Temperature2MMin), len(daily.WeatherCode))
	}

	report := &Report{
		Location:  loc,
		Timezone:  resp.Timezone,
		FetchedAt: time.Now().UTC(),
		Current: CurrentConditions{
			Temperature: resp.CurrentWeather.Temperature,
			WindSpeed:   resp.CurrentWeather.WindSpeed,
			Weather:     types.NewWeather(resp.CurrentWeather.WeatherCode),
		},
		Daily: make([]DailyForecast, 0, days),
	}

	for i := 0; i < days; i++ {
		report.Daily = append(report.Daily, DailyForecast{
			Date:    daily.Time[i],
			Label:   formatDayLabel(daily.Time[i]),
			MaxTemp: daily.Temperature2MMax[i],
			MinTemp: daily.Temperature2MMin[i],
			Weather: types.NewWeather(daily.WeatherCode[i]),
		})
	}

	return report, nil
}

// formatDayLabel renders a provider date like "2025-06-10" as "Tue 10".
// Dates that do not parse are shown as-is.
func formatDayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(dateLabelFormat)
}
