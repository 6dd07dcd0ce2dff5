package geoapify

import "github.com/itsananyaaa/Pocket-Plans/models"

// GeocodeResult is the resolved coordinate for a free-text location.
type GeocodeResult struct {
	Lat   float64
	Lon   float64
	Found bool
}

// GeoapifyAPI defines the interface for interacting with the Geoapify
// geocoding and places APIs.
type GeoapifyAPI interface {
	GeocodeSearch(location string) (*GeocodeResult, error)
	GetPlacesNearby(lat, lon float64, categories []string) ([]models.Candidate, error)
	SetAPIKey(apiKey string)
}
