package geoapify

import (
	"fmt"

	"github.com/itsananyaaa/Pocket-Plans/config"
	"github.com/itsananyaaa/Pocket-Plans/models"
	"github.com/itsananyaaa/Pocket-Plans/util"
)

// GeoapifyApiClientMock serves canned responses from the resources fixtures.
type GeoapifyApiClientMock struct {
}

// NewGeoapifyApiClientMock creates a new instance of GeoapifyApiClientMock
func NewGeoapifyApiClientMock() *GeoapifyApiClientMock {
	return &GeoapifyApiClientMock{}
}

func (c *GeoapifyApiClientMock) SetAPIKey(apiKey string) {}

// GeocodeSearch resolves every location to the fixture coordinates.
func (c *GeoapifyApiClientMock) GeocodeSearch(location string) (*GeocodeResult, error) {
	response, err := util.ReadGeocodeResponseFromJSON(config.GetResourcePath(config.GEOCODE_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read geocode response from json")
		return nil, err
	}
	if len(response.Features) == 0 {
		return &GeocodeResult{}, nil
	}
	props := response.Features[0].Properties
	return &GeocodeResult{Lat: props.Lat, Lon: props.Lon, Found: true}, nil
}

// GetPlacesNearby returns the fixture candidate list.
func (c *GeoapifyApiClientMock) GetPlacesNearby(lat, lon float64, categories []string) ([]models.Candidate, error) {
	response, err := util.ReadPlacesResponseFromJSON(config.GetResourcePath(config.PLACES_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read places response from json")
		return nil, err
	}
	return response.Candidates(), nil
}
