package openweather

import "github.com/itsananyaaa/Pocket-Plans/models"

// OpenWeatherAPI defines the interface for interacting with the OpenWeather
// current-weather API.
type OpenWeatherAPI interface {
	GetCurrentWeather(lat, lon float64) (*models.WeatherReading, error)
	SetAPIKey(apiKey string)
}

// DefaultReading is the fixed reading substituted when the provider fails.
func DefaultReading() models.WeatherReading {
	return models.WeatherReading{
		Temp:        20,
		Condition:   "Clear",
		Description: "Unknown",
	}
}
