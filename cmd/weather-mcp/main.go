package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"skycast/internal/config"
	"skycast/internal/location"
	"skycast/internal/types"
	"skycast/internal/weather"

	"github.com/joho/godotenv"
	"github.com/miyamo2/qilin"
)

// GetWeatherRequest contains input parameters for the get_weather tool.
// Coordinates are pointers so that (0.0, 0.0) is distinguishable from an
// absent value.
type GetWeatherRequest struct {
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Stdout carries the protocol stream, so logs go to stderr
	logger := cfg.NewLoggerWithWriter(os.Stderr)
	slog.SetDefault(logger)

	locationService := location.NewLocationService(logger)
	weatherService, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create weather service: %v", err)
	}

	q := qilin.New("skycast")

	q.Tool("get_weather",
		(*GetWeatherRequest)(nil),
		getWeather(locationService, weatherService),
		qilin.ToolWithDescription("Get current conditions and the five-day forecast for a city name or map coordinates"))

	q.Resource(
		"Current City Weather",
		"weather://current/{city}",
		currentCityWeather(locationService, weatherService),
		qilin.ResourceWithDescription("Weather report for a specific city"),
		qilin.ResourceWithMimeType("application/json"))

	logger.Info("starting MCP server", "transport", "stdio")
	if err := q.Start(); err != nil {
		log.Fatalf("MCP server failed: %v", err)
	}
}

// getWeather resolves the requested place and answers with the full report
func getWeather(locationService location.Service, weatherService weather.Service) qilin.ToolHandlerFunc {
	return func(c qilin.ToolContext) error {
		var req GetWeatherRequest
		if err := c.Bind(&req); err != nil {
			return err
		}

		var (
			loc *types.Location
			err error
		)
		switch {
		case req.City != "":
			loc, err = locationService.ResolveCity(req.City)
		case req.Latitude != nil && req.Longitude != nil:
			loc, err = locationService.ResolveCoordinates(*req.Latitude, *req.Longitude)
		default:
			return fmt.Errorf("provide either city or latitude and longitude")
		}
		if err != nil {
			return err
		}

		report, err := weatherService.GetReport(*loc)
		if err != nil {
			return err
		}

		return c.JSON(report)
	}
}

// currentCityWeather serves weather://current/{city}
func currentCityWeather(locationService location.Service, weatherService weather.Service) qilin.ResourceHandlerFunc {
	return func(c qilin.ResourceContext) error {
		city := c.Param("city")
		if city == "" {
			return fmt.Errorf("city is required")
		}

		loc, err := locationService.ResolveCity(city)
		if err != nil {
			return err
		}

		report, err := weatherService.GetReport(*loc)
		if err != nil {
			return err
		}

		return c.JSON(report)
	}
}
