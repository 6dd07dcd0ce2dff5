package geoapify

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/itsananyaaa/Pocket-Plans/api"
	"github.com/itsananyaaa/Pocket-Plans/config"
	"github.com/itsananyaaa/Pocket-Plans/models"
)

// GeoapifyApiClient embeds the common HTTPClient
type GeoapifyApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewGeoapifyApiClient creates a new instance of GeoapifyApiClient
func NewGeoapifyApiClient(httpClient *api.HTTPClient) *GeoapifyApiClient {
	return &GeoapifyApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the Geoapify API key used on every request.
func (c *GeoapifyApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GeocodeSearch resolves a free-text location to coordinates. A response
// without features is reported as not found, not as an error.
func (c *GeoapifyApiClient) GeocodeSearch(location string) (*GeocodeResult, error) {
	query := url.Values{}
	query.Set("text", location)
	query.Set("apiKey", c.apiKey)

	var response models.GeocodeResponse
	if err := c.GetJSON("/v1/geocode/search", query, &response); err != nil {
		return nil, err
	}
	if len(response.Features) == 0 {
		return &GeocodeResult{}, nil
	}
	props := response.Features[0].Properties
	return &GeocodeResult{Lat: props.Lat, Lon: props.Lon, Found: true}, nil
}

// GetPlacesNearby retrieves up to PLACES_SEARCH_LIMIT candidate venues
// around the coordinates, filtered by provider categories.
func (c *GeoapifyApiClient) GetPlacesNearby(lat, lon float64, categories []string) ([]models.Candidate, error) {
	query := url.Values{}
	query.Set("categories", strings.Join(categories, ","))
	query.Set("filter", fmt.Sprintf("circle:%f,%f,%d", lon, lat, config.PLACES_SEARCH_RADIUS_METERS))
	query.Set("bias", fmt.Sprintf("proximity:%f,%f", lon, lat))
	query.Set("limit", strconv.Itoa(config.PLACES_SEARCH_LIMIT))
	query.Set("apiKey", c.apiKey)

	var response models.PlacesResponse
	if err := c.GetJSON("/v2/places", query, &response); err != nil {
		return nil, err
	}
	return response.Candidates(), nil
}
