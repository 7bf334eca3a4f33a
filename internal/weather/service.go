package weather

import (
	"fmt"
	"log/slog"
	"skycast/internal/config"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/timezone"
	"skycast/internal/types"
)

type ForecastProvider interface {
	// GetForecast fetches current conditions plus daily aggregates for the
	// given coordinates in a single request
	GetForecast(latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetReport(location types.Location) (*Report, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
}

func NewWeatherService(config *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(logger), tzSvc, config, logger), nil
}

func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
	}
}

// GetReport fetches current conditions and the daily forecast for the given
// location with a single provider call.
func (s *weatherService) GetReport(location types.Location) (*Report, error) {
	forecastDays := s.cfg.App.ForecastDays

	// Look up timezone for the location so daily boundaries match local days.
	// Coordinates tzf cannot place (clicks far out at sea) defer to the
	// provider's own resolution instead of failing the report.
	tz, err := s.timezoneService.GetTimezone(location.Latitude, location.Longitude)
	if err != nil {
		s.logger.Warn("could not determine timezone, deferring to provider",
			"latitude", location.Latitude,
			"longitude", location.Longitude,
			"error", err,
		)
		tz = openmeteo.TimezoneAuto
	}

	s.logger.Debug("fetching weather report",
		"latitude", location.Latitude,
		"longitude", location.Longitude,
		"timezone", tz,
		"forecast_days", forecastDays,
	)

	apiResponse, err := s.forecastProvider.GetForecast(
		location.Latitude,
		location.Longitude,
		forecastDays,
		tz,
	)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return mapForecastResponse(location, apiResponse)
}
