//go:build integration

package openmeteo

import (
	"encoding/json"
	"testing"
)

func TestGeocodingClient_Search_Integration(t *testing.T) {
	client := NewGeocodingClient(testLogger())

	t.Logf("Making API call to Open-Meteo Geocoding API...")

	resp, err := client.Search("Paris", 1)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp.Results) == 0 {
		t.Fatal("No geocoding results for Paris")
	}

	first := resp.Results[0]
	t.Logf("First result: %s, %s (%.4f, %.4f)", first.Name, first.Country, first.Latitude, first.Longitude)

	// Paris should be around (48.85, 2.35)
	if first.Latitude < 47.8 || first.Latitude > 49.8 {
		t.Errorf("Latitude = %f, expected ~48.85", first.Latitude)
	}
	if first.Longitude < 1.3 || first.Longitude > 3.3 {
		t.Errorf("Longitude = %f, expected ~2.35", first.Longitude)
	}

	t.Log("✓ API call successful, response structure valid")
}

func TestGeocodingClient_Search_Integration_NoResults(t *testing.T) {
	client := NewGeocodingClient(testLogger())

	resp, err := client.Search("Zzqxville123", 1)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	if len(resp.Results) != 0 {
		t.Errorf("Results count = %d, want 0 for a nonsense query", len(resp.Results))
	}

	t.Log("✓ Nonsense query returned an empty result set")
}

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: central Paris
	lat := 48.85341
	lon := 2.3488
	forecastDays := 5

	client := NewForecastClient(testLogger())

	t.Logf("Making API call to Open-Meteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(lat, lon, forecastDays, TimezoneAuto)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	t.Logf("Response metadata:")
	t.Logf("  Latitude: %f", resp.Latitude)
	t.Logf("  Longitude: %f", resp.Longitude)
	t.Logf("  Timezone: %s", resp.Timezone)
	t.Logf("  Generation time: %.2f ms", resp.GenerationtimeMs)

	if resp.Latitude < lat-1 || resp.Latitude > lat+1 {
		t.Errorf("Latitude mismatch: expected ~%f, got %f", lat, resp.Latitude)
	}
	if resp.Longitude < lon-1 || resp.Longitude > lon+1 {
		t.Errorf("Longitude mismatch: expected ~%f, got %f", lon, resp.Longitude)
	}

	// Current weather block
	t.Logf("Current conditions:")
	t.Logf("  Temperature: %.1f°C", resp.CurrentWeather.Temperature)
	t.Logf("  Wind speed: %.1f km/h", resp.CurrentWeather.WindSpeed)
	t.Logf("  Weather code: %d", resp.CurrentWeather.WeatherCode)

	if resp.CurrentWeather.Temperature < -60 || resp.CurrentWeather.Temperature > 60 {
		t.Errorf("Temperature %.1f°C seems unreasonable", resp.CurrentWeather.Temperature)
	}
	if resp.CurrentWeather.WindSpeed < 0 {
		t.Errorf("Wind speed %.1f km/h should be non-negative", resp.CurrentWeather.WindSpeed)
	}
	if resp.CurrentWeather.WeatherCode < 0 || resp.CurrentWeather.WeatherCode > 99 {
		t.Errorf("Weather code %d outside WMO range", resp.CurrentWeather.WeatherCode)
	}

	// Daily block
	if len(resp.Daily.Time) != forecastDays {
		t.Errorf("Daily forecast contains %d days, want %d", len(resp.Daily.Time), forecastDays)
	}
	if len(resp.Daily.Temperature2MMax) != len(resp.Daily.Time) {
		t.Errorf("Temperature2MMax length %d != Time length %d", len(resp.Daily.Temperature2MMax), len(resp.Daily.Time))
	}
	if len(resp.Daily.Temperature2MMin) != len(resp.Daily.Time) {
		t.Errorf("Temperature2MMin length %d != Time length %d", len(resp.Daily.Temperature2MMin), len(resp.Daily.Time))
	}
	if len(resp.Daily.WeatherCode) != len(resp.Daily.Time) {
		t.Errorf("WeatherCode length %d != Time length %d", len(resp.Daily.WeatherCode), len(resp.Daily.Time))
	}

	t.Logf("Daily forecast contains %d days", len(resp.Daily.Time))
	for i, day := range resp.Daily.Time {
		t.Logf("  %s: max %.1f°C, min %.1f°C, code %d",
			day,
			resp.Daily.Temperature2MMax[i],
			resp.Daily.Temperature2MMin[i],
			resp.Daily.WeatherCode[i],
		)
	}

	t.Log("✓ API call successful, response structure valid")
}
