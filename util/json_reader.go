package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/itsananyaaa/Pocket-Plans/models"
)

// ReadGeocodeResponseFromJSON loads a GeocodeResponse from JSON on disk.
func ReadGeocodeResponseFromJSON(filePath string) (*models.GeocodeResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.GeocodeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeocodeResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlacesResponseFromJSON loads a PlacesResponse from JSON on disk.
func ReadPlacesResponseFromJSON(filePath string) (*models.PlacesResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PlacesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlacesResponse: %w", err)
	}
	return &resp, nil
}

// ReadWeatherResponseFromJSON loads a WeatherResponse from JSON on disk.
func ReadWeatherResponseFromJSON(filePath string) (*models.WeatherResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.WeatherResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal WeatherResponse: %w", err)
	}
	return &resp, nil
}

// PrintRecommendationsPartially prints key fields of each recommendation.
func PrintRecommendationsPartially(records []models.PlaceRecommendation) {
	for i, r := range records {
		fmt.Printf("#%d %s (score %d, %s)\n", i+1, r.Name, r.Score, r.Distance)
		for _, reason := range r.Reason {
			fmt.Printf("    - %s\n", reason)
		}
	}
}
