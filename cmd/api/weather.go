package main

import (
	"errors"
	"net/http"

	"skycast/internal/location"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/types"
	_ "skycast/internal/weather" // imported for swagger type definitions

	"github.com/gin-gonic/gin"
)

// GetWeatherInput defines the query parameters for the weather endpoint.
// Coordinates are pointers so that a map click on (0.0, 0.0) still binds.
type GetWeatherInput struct {
	City      string   `form:"city"`      // City name to geocode
	Latitude  *float64 `form:"latitude"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude"` // Longitude in decimal degrees
}

// handleGetWeather godoc
// @Summary Get weather report
// @Description Resolve a city name or map coordinates, then return current conditions and the daily forecast
// @Tags weather
// @Accept json
// @Produce json
// @Param city query string false "City name to geocode" example(Paris)
// @Param latitude query number false "Latitude in decimal degrees" minimum(-90) maximum(90) example(48.85341)
// @Param longitude query number false "Longitude in decimal degrees" minimum(-180) maximum(180) example(2.3488)
// @Success 200 {object} weather.Report
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		loc *types.Location
		err error
	)
	switch {
	case input.City != "":
		loc, err = app.locationService.ResolveCity(input.City)
	case input.Latitude != nil && input.Longitude != nil:
		loc, err = app.locationService.ResolveCoordinates(*input.Latitude, *input.Longitude)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide either city or latitude and longitude"})
		return
	}

	if err != nil {
		var notFound *location.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error() + ", check the name and try again"})
			return
		}
		app.respondProviderError(c, err, "failed to resolve location")
		return
	}

	report, err := app.weatherService.GetReport(*loc)
	if err != nil {
		app.respondProviderError(c, err, "failed to get weather report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// respondProviderError maps upstream failures onto user-facing responses.
// The fallback message doubles as the log line for unclassified errors.
func (app *App) respondProviderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, openmeteo.ErrNetwork):
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather service is unreachable, please try again"})
	case errors.Is(err, openmeteo.ErrMalformedResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather service returned unexpected data, please try again"})
	default:
		app.logger.Error(fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
