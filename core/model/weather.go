package model

import "fmt"

// Weather describes the forecast weather for the target day. Rainy and snowy
// conditions are the only ones the arrival models distinguish; the remaining
// values all map to clear-weather features.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherMostlyClear
	WeatherCloudy
	WeatherOvercast
	WeatherRain
	WeatherSnow
)

// ParseWeather converts a configuration or query string into a Weather value.
func ParseWeather(s string) (Weather, error) {
	switch s {
	case "clear":
		return WeatherClear, nil
	case "mostly_clear":
		return WeatherMostlyClear, nil
	case "cloudy":
		return WeatherCloudy, nil
	case "overcast":
		return WeatherOvercast, nil
	case "rain":
		return WeatherRain, nil
	case "snow":
		return WeatherSnow, nil
	default:
		return 0, fmt.Errorf("%w: unknown weather %q", ErrInvalidInput, s)
	}
}

// String returns a human-readable representation of the weather.
func (w Weather) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherMostlyClear:
		return "mostly_clear"
	case WeatherCloudy:
		return "cloudy"
	case WeatherOvercast:
		return "overcast"
	case WeatherRain:
		return "rain"
	case WeatherSnow:
		return "snow"
	default:
		return "unknown"
	}
}

// IsRain reports whether the weather counts as rainy for feature purposes.
func (w Weather) IsRain() bool { return w == WeatherRain }

// IsSnow reports whether the weather counts as snowy for feature purposes.
func (w Weather) IsSnow() bool { return w == WeatherSnow }
