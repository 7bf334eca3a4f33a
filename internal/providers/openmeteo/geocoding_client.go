package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Paris&count=1
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewGeocodingClient(logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{
		httpClient: &http.Client{},
		baseURL:    baseGeocodingURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search looks up places matching the given name, best match first.
// A query with no matches yields an empty Results slice, not an error.
func (c *GeocodingClient) Search(name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	u.RawQuery = q.Encode()

	c.logger.Debug("searching geocoding API", "name", name, "url", u.String())

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch geocoding results", "name", name, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocoding API returned error",
			"status_code", resp.StatusCode,
			"name", name,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("%w: status %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	var apiResp GeocodingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode geocoding response", "name", name, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c.logger.Debug("geocoding search complete",
		"name", name,
		"result_count", len(apiResp.Results),
	)

	return &apiResp, nil
}
