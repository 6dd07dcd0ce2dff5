package openweather

import (
	"fmt"

	"github.com/itsananyaaa/Pocket-Plans/config"
	"github.com/itsananyaaa/Pocket-Plans/models"
	"github.com/itsananyaaa/Pocket-Plans/util"
)

// OpenWeatherApiClientMock serves the canned reading from the resources
// fixtures.
type OpenWeatherApiClientMock struct {
}

// NewOpenWeatherApiClientMock creates a new instance of OpenWeatherApiClientMock
func NewOpenWeatherApiClientMock() *OpenWeatherApiClientMock {
	return &OpenWeatherApiClientMock{}
}

func (c *OpenWeatherApiClientMock) SetAPIKey(apiKey string) {}

// GetCurrentWeather returns the fixture reading regardless of coordinates.
func (c *OpenWeatherApiClientMock) GetCurrentWeather(lat, lon float64) (*models.WeatherReading, error) {
	response, err := util.ReadWeatherResponseFromJSON(config.GetResourcePath(config.WEATHER_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read weather response from json")
		return nil, err
	}
	reading := response.Reading()
	return &reading, nil
}
