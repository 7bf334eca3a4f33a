package types

import "fmt"

// Location represents a resolved place. Name and Country are populated by
// geocoding and stay empty for locations picked straight off the map.
type Location struct {
	Name    string `json:"name,omitempty"`
	Country string `json:"country,omitempty"`
	Coords
}

// NewLocation creates a Location from display metadata and coordinates
func NewLocation(name, country string, coords Coords) Location {
	return Location{
		Name:    name,
		Country: country,
		Coords:  coords,
	}
}

// DisplayName returns a human-readable label: "Name, Country" when known,
// otherwise the coordinates in the same form the map popup uses.
func (l Location) DisplayName() string {
	switch {
	case l.Name != "" && l.Country != "":
		return fmt.Sprintf("%s, %s", l.Name, l.Country)
	case l.Name != "":
		return l.Name
	default:
		return fmt.Sprintf("Lat: %.4f, Lon: %.4f", l.Latitude, l.Longitude)
	}
}
