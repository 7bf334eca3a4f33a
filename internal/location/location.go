package location

import (
	"fmt"
	"log/slog"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/types"
)

// NotFoundError indicates a city search produced no geocoding matches.
// It carries the original query so callers can echo it back to the user.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no location found for %q", e.Query)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// Service resolves user input, a city name or a map click, into a Location
type Service interface {
	// ResolveCity geocodes a city name and returns the best match
	ResolveCity(name string) (*types.Location, error)
	// ResolveCoordinates passes map-click coordinates through unchanged
	ResolveCoordinates(latitude, longitude float64) (*types.Location, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service with a real geocoding client
func NewLocationService(logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(openmeteo.NewGeocodingClient(logger), logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider.
// This is useful for testing with mock providers.
func NewLocationServiceWithProvider(geocodeProvider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		logger:          logger.With("component", "location-service"),
	}
}

// ResolveCity geocodes the given name and keeps the first match. Ambiguous
// names (the many Springfields) are not disambiguated; the provider's
// ranking decides.
func (s *locationService) ResolveCity(name string) (*types.Location, error) {
	s.logger.Debug("resolving city", "query", name)

	resp, err := s.geocodeProvider.Search(name, 1)
	if err != nil {
		s.logger.Error("failed to geocode city", "query", name, "error", err)
		return nil, fmt.Errorf("failed to geocode %q: %w", name, err)
	}

	if len(resp.Results) == 0 {
		s.logger.Warn("no geocoding results", "query", name)
		return nil, &NotFoundError{Query: name}
	}

	loc := translateGeocodingResult(name, resp.Results[0])

	s.logger.Debug("resolved city",
		"query", name,
		"name", loc.Name,
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
	)

	return loc, nil
}

// ResolveCoordinates accepts any coordinate pair as-is. Map clicks can land
// anywhere, including open ocean, so there is no range or existence check
// and no name lookup.
func (s *locationService) ResolveCoordinates(latitude, longitude float64) (*types.Location, error) {
	return &types.Location{
		Coords: types.NewCoords(latitude, longitude),
	}, nil
}

// translateGeocodingResult converts a geocoding match to the domain Location.
// A match without a name falls back to the original query string.
func translateGeocodingResult(query string, result openmeteo.GeocodingResult) *types.Location {
	name := result.Name
	if name == "" {
		name = query
	}

	loc := types.NewLocation(name, result.Country, types.NewCoords(result.Latitude, result.Longitude))
	return &loc
}
