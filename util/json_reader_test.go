package util

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestReadGeocodeResponseFromJSON(t *testing.T) {
	response, err := ReadGeocodeResponseFromJSON(filepath.Join("..", "resources", "geocode_response.json"))
	if err != nil {
		t.Fatalf("ReadGeocodeResponseFromJSON: %v", err)
	}
	if len(response.Features) == 0 {
		t.Fatal("Expected at least one feature")
	}
	props := response.Features[0].Properties
	if props.Lat == 0 || props.Lon == 0 {
		t.Errorf("Expected fixture coordinates, got %+v", props)
	}
}

func TestReadPlacesResponseFromJSON(t *testing.T) {
	response, err := ReadPlacesResponseFromJSON(filepath.Join("..", "resources", "places_response.json"))
	if err != nil {
		t.Fatalf("ReadPlacesResponseFromJSON: %v", err)
	}
	candidates := response.Candidates()
	if len(candidates) == 0 {
		t.Fatal("Expected fixture candidates")
	}
	for _, c := range candidates {
		if c.Name == "" {
			t.Error("Candidates must never have an empty name")
		}
	}
}

func TestReadWeatherResponseFromJSON(t *testing.T) {
	response, err := ReadWeatherResponseFromJSON(filepath.Join("..", "resources", "weather_response.json"))
	if err != nil {
		t.Fatalf("ReadWeatherResponseFromJSON: %v", err)
	}
	reading := response.Reading()
	if reading.Condition == "" {
		t.Error("Expected a condition in the fixture reading")
	}
}

func TestReadGeocodeResponseFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadGeocodeResponseFromJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestReadPlacesResponseFromJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := ioutil.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadPlacesResponseFromJSON(path); err == nil {
		t.Error("Expected an unmarshal error")
	}
}
