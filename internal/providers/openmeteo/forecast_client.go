package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.85&longitude=2.35&current_weather=true&daily=temperature_2m_max,temperature_2m_min,weathercode&timezone=auto&forecast_days=5&temperature_unit=celsius&windspeed_unit=kmh
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	// TimezoneAuto lets the provider resolve the timezone from the coordinates.
	TimezoneAuto = "auto"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches current conditions and daily aggregates for the given
// coordinates in a single call. Temperatures come back in Celsius and wind
// speeds in km/h.
func (c *ForecastClient) GetForecast(latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	dailyVars := []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"weathercode",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current_weather", "true")
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("temperature_unit", "celsius")
	q.Set("windspeed_unit", "kmh")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", timezone,
		"url", u.String(),
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("forecast API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("%w: status %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode forecast response", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// Both blocks were requested; a response without them is unusable.
	if apiResp.CurrentWeather == nil {
		c.logger.Error("forecast response missing current_weather block")
		return nil, fmt.Errorf("%w: missing current_weather block", ErrMalformedResponse)
	}
	if apiResp.Daily == nil {
		c.logger.Error("forecast response missing daily block")
		return nil, fmt.Errorf("%w: missing daily block", ErrMalformedResponse)
	}

	c.logger.Debug("successfully fetched forecast",
		"timezone", apiResp.Timezone,
		"daily_days", len(apiResp.Daily.Time),
	)

	return &apiResp, nil
}
