package weather

import (
	"skycast/internal/types"
	"time"
)

// dateLabelFormat renders a forecast day as "Tue 10"
const dateLabelFormat = "Mon 02"

// CurrentConditions holds the most recent reading for a location.
// Temperature is in °C and WindSpeed in km/h, as requested from the provider.
type CurrentConditions struct {
	Temperature float64       `json:"temperature"`
	WindSpeed   float64       `json:"wind_speed"`
	Weather     types.Weather `json:"weather"`
}

// DailyForecast is a single day's aggregate
type DailyForecast struct {
	Date    string        `json:"date"`  // ISO date from the provider, e.g. "2025-06-10"
	Label   string        `json:"label"` // short display form, e.g. "Tue 10"
	MaxTemp float64       `json:"max_temp"`
	MinTemp float64       `json:"min_temp"`
	Weather types.Weather `json:"weather"`
}

// Report is the complete weather answer for a resolved location
type Report struct {
	Location  types.Location    `json:"location"`
	Timezone  string            `json:"timezone"`
	FetchedAt time.Time         `json:"fetched_at"`
	Current   CurrentConditions `json:"current"`
	Daily     []DailyForecast   `json:"daily"`
}
