package openmeteo

// GeocodingAPIResponse is the payload of the geocoding search endpoint.
// Queries with no matches come back without the results field at all.
type GeocodingAPIResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationtimeMs float64           `json:"generationtime_ms"`
}

// GeocodingResult is a single place match from the geocoding search.
type GeocodingResult struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Timezone    string  `json:"timezone"`
	Population  int     `json:"population"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
}

// ForecastAPIResponse is the payload of the forecast endpoint.
// CurrentWeather and Daily are pointers so a response missing a requested
// block is distinguishable from one holding zero values.
type ForecastAPIResponse struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	GenerationtimeMs float64         `json:"generationtime_ms"`
	UtcOffsetSeconds int             `json:"utc_offset_seconds"`
	Timezone         string          `json:"timezone"`
	TimezoneAbbr     string          `json:"timezone_abbreviation"`
	Elevation        float64         `json:"elevation"`
	CurrentWeather   *CurrentWeather `json:"current_weather"`
	Daily            *Daily          `json:"daily"`
}

// CurrentWeather is the most recent conditions block.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	IsDay         int     `json:"is_day"`
	Time          string  `json:"time"`
}

// Daily holds parallel arrays with one entry per forecast day.
type Daily struct {
	Time             []string  `json:"time"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
	WeatherCode      []int     `json:"weathercode"`
}
