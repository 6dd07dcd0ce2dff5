package openweather

import (
	"fmt"
	"net/url"

	"github.com/itsananyaaa/Pocket-Plans/api"
	"github.com/itsananyaaa/Pocket-Plans/models"
)

// OpenWeatherApiClient embeds the common HTTPClient
type OpenWeatherApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewOpenWeatherApiClient creates a new instance of OpenWeatherApiClient
func NewOpenWeatherApiClient(httpClient *api.HTTPClient) *OpenWeatherApiClient {
	return &OpenWeatherApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the OpenWeather API key used on every request.
func (c *OpenWeatherApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GetCurrentWeather retrieves the current reading for the coordinates in
// metric units.
func (c *OpenWeatherApiClient) GetCurrentWeather(lat, lon float64) (*models.WeatherReading, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	var response models.WeatherResponse
	if err := c.GetJSON("/data/2.5/weather", query, &response); err != nil {
		return nil, err
	}
	reading := response.Reading()
	return &reading, nil
}
