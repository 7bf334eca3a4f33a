package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Animation identifies the visual effect played for a weather condition
type Animation string

// Animation constants
const (
	AnimationNone    Animation = ""
	AnimationSnow    Animation = "snow"
	AnimationThunder Animation = "thunder"
)

// Weather represents weather conditions with a code, display icon,
// description and optional animation
type Weather struct {
	Code        int       `json:"code"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	Animation   Animation `json:"animation,omitempty"`
}

// Weather code constants
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

// display holds the static presentation attributes for a weather code
type display struct {
	icon        string
	description string
	animation   Animation
}

// weatherDisplays maps weather codes to their icon, description and
// animation. The map is populated once and never written afterwards.
var weatherDisplays = map[int]display{
	0:  {"☀️", "Clear sky", AnimationNone},
	1:  {"🌤️", "Mainly clear", AnimationNone},
	2:  {"🌥️", "Partly cloudy", AnimationNone},
	3:  {"☁️", "Overcast", AnimationNone},
	45: {"🌫️", "Fog", AnimationNone},
	48: {"🌫️", "Depositing rime fog", AnimationNone},
	51: {"🌦️", "Light drizzle", AnimationNone},
	53: {"🌦️", "Moderate drizzle", AnimationNone},
	55: {"🌦️", "Dense drizzle", AnimationNone},
	56: {"🌧️", "Light freezing drizzle", AnimationNone},
	57: {"🌧️", "Dense freezing drizzle", AnimationNone},
	61: {"🌧️", "Slight rain", AnimationNone},
	63: {"🌧️", "Moderate rain", AnimationNone},
	65: {"🌧️", "Heavy rain", AnimationNone},
	66: {"🌧️", "Light freezing rain", AnimationNone},
	67: {"🌧️", "Heavy freezing rain", AnimationNone},
	71: {"🌨️", "Slight snow fall", AnimationSnow},
	73: {"🌨️", "Moderate snow fall", AnimationSnow},
	75: {"🌨️", "Heavy snow fall", AnimationSnow},
	77: {"❄️", "Snow grains", AnimationSnow},
	80: {"🌧️", "Slight rain showers", AnimationNone},
	81: {"🌧️", "Moderate rain showers", AnimationNone},
	82: {"🌧️", "Violent rain showers", AnimationNone},
	85: {"🌨️", "Slight snow showers", AnimationSnow},
	86: {"🌨️", "Heavy snow showers", AnimationSnow},
	95: {"⛈️", "Thunderstorm", AnimationThunder},
	96: {"⛈️", "Thunderstorm with slight hail", AnimationThunder},
	99: {"⛈️", "Thunderstorm with heavy hail", AnimationThunder},
}

// defaultDisplay is used for codes missing from the table so an
// unrecognized provider code still renders
var defaultDisplay = display{icon: "❓", description: "Unknown", animation: AnimationNone}

// GetWeatherDescription returns the description for a given weather code
func GetWeatherDescription(code int) string {
	if d, ok := weatherDisplays[code]; ok {
		return d.description
	}
	return defaultDisplay.description
}

// NewWeather creates a Weather instance from a weather code. Codes not in
// the table resolve to the default icon and description, never an error.
func NewWeather(code int) Weather {
	d, ok := weatherDisplays[code]
	if !ok {
		d = defaultDisplay
	}
	return Weather{
		Code:        code,
		Icon:        d.icon,
		Description: d.description,
		Animation:   d.animation,
	}
}
