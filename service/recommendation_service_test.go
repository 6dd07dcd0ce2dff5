package services

import (
	"context"
	"errors"
	"testing"

	"github.com/itsananyaaa/Pocket-Plans/api/geoapify"
	redisdao "github.com/itsananyaaa/Pocket-Plans/dao/redis"
	"github.com/itsananyaaa/Pocket-Plans/db"
	"github.com/itsananyaaa/Pocket-Plans/feedback"
	"github.com/itsananyaaa/Pocket-Plans/models"
	"github.com/itsananyaaa/Pocket-Plans/predictor"
	"github.com/itsananyaaa/Pocket-Plans/recommend"
)

// fakeGeoapify scripts the provider responses per test.
type fakeGeoapify struct {
	geocode    *geoapify.GeocodeResult
	geocodeErr error
	places     []models.Candidate
	placesErr  error
}

func (f *fakeGeoapify) GeocodeSearch(location string) (*geoapify.GeocodeResult, error) {
	return f.geocode, f.geocodeErr
}

func (f *fakeGeoapify) GetPlacesNearby(lat, lon float64, categories []string) ([]models.Candidate, error) {
	return f.places, f.placesErr
}

func (f *fakeGeoapify) SetAPIKey(apiKey string) {}

type fakeOpenWeather struct {
	reading *models.WeatherReading
	err     error
}

func (f *fakeOpenWeather) GetCurrentWeather(lat, lon float64) (*models.WeatherReading, error) {
	return f.reading, f.err
}

func (f *fakeOpenWeather) SetAPIKey(apiKey string) {}

func newTestService(geo *fakeGeoapify, weather *fakeOpenWeather) (*RecommendationService, *redisdao.PlanDAO) {
	dao := redisdao.NewPlanDAO(db.NewMockRedisClient(context.Background()))
	pipeline := recommend.NewPipeline(recommend.NewScorer(predictor.Unloaded(), feedback.NewNoopRecorder()))
	return NewRecommendationService(geo, weather, pipeline, dao), dao
}

func testRequest() models.RecommendRequest {
	return models.RecommendRequest{
		Location:   "Montreal",
		Time:       "60",
		Preference: "chill",
		Budget:     "budget",
	}
}

func TestRecommend_LocationNotFound(t *testing.T) {
	geo := &fakeGeoapify{geocode: &geoapify.GeocodeResult{Found: false}}
	service, _ := newTestService(geo, &fakeOpenWeather{reading: &models.WeatherReading{Temp: 20, Condition: "Clear"}})

	_, err := service.Recommend(testRequest())
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("Expected ErrLocationNotFound, got %v", err)
	}
}

func TestRecommend_GeocodeFailureMapsToLocationNotFound(t *testing.T) {
	geo := &fakeGeoapify{geocodeErr: errors.New("provider down")}
	service, _ := newTestService(geo, &fakeOpenWeather{reading: &models.WeatherReading{Temp: 20, Condition: "Clear"}})

	_, err := service.Recommend(testRequest())
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("Expected ErrLocationNotFound, got %v", err)
	}
}

func TestRecommend_HappyPath(t *testing.T) {
	geo := &fakeGeoapify{
		geocode: &geoapify.GeocodeResult{Lat: 45.5, Lon: -73.56, Found: true},
		places: []models.Candidate{
			{Name: "Corner Cafe", Distance: 300, Categories: []string{"catering.cafe"}},
			{Name: "Mount Royal Park", Distance: 1200, Categories: []string{"leisure.park"}},
		},
	}
	service, dao := newTestService(geo, &fakeOpenWeather{reading: &models.WeatherReading{Temp: 22, Condition: "Clear"}})

	records, err := service.Recommend(testRequest())
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(records))
	}
	// Sunny park outranks the cafe.
	if records[0].Name != "Mount Royal Park" {
		t.Errorf("Expected the park first, got %s", records[0].Name)
	}

	history, err := dao.GetHistory(10)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(history) != 1 || history[0].Location != "Montreal" {
		t.Errorf("Expected the search in history, got %+v", history)
	}

	cached, err := dao.GetCachedCandidates(45.5, -73.56, 5000)
	if err != nil {
		t.Fatalf("GetCachedCandidates: %v", err)
	}
	if len(cached) != 2 {
		t.Errorf("Expected both candidates cached, got %d", len(cached))
	}
}

func TestRecommend_WeatherFailureUsesDefaultReading(t *testing.T) {
	geo := &fakeGeoapify{
		geocode: &geoapify.GeocodeResult{Lat: 45.5, Lon: -73.56, Found: true},
		places: []models.Candidate{
			{Name: "Corner Cafe", Distance: 300, Categories: []string{"catering.cafe"}},
		},
	}
	service, _ := newTestService(geo, &fakeOpenWeather{err: errors.New("provider down")})

	records, err := service.Recommend(testRequest())
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// The default reading is Clear, 20°C.
	if records[0].Weather != "Clear, 20°C" {
		t.Errorf("Expected the default weather string, got %q", records[0].Weather)
	}
}

func TestRecommend_PlacesFailureFallsBackToCache(t *testing.T) {
	geo := &fakeGeoapify{
		geocode:   &geoapify.GeocodeResult{Lat: 45.5, Lon: -73.56, Found: true},
		placesErr: errors.New("provider down"),
	}
	service, dao := newTestService(geo, &fakeOpenWeather{reading: &models.WeatherReading{Temp: 22, Condition: "Clear"}})

	if err := dao.CacheCandidates([]models.Candidate{
		{Name: "Cached Cafe", Distance: 400, Lat: 45.5, Lon: -73.56, Categories: []string{"catering.cafe"}},
	}); err != nil {
		t.Fatalf("CacheCandidates: %v", err)
	}

	records, err := service.Recommend(testRequest())
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Cached Cafe" {
		t.Errorf("Expected the cached candidate, got %+v", records)
	}
}

func TestRecommend_PlacesFailureWithEmptyCacheYieldsCityWalk(t *testing.T) {
	geo := &fakeGeoapify{
		geocode:   &geoapify.GeocodeResult{Lat: 45.5, Lon: -73.56, Found: true},
		placesErr: errors.New("provider down"),
	}
	service, _ := newTestService(geo, &fakeOpenWeather{reading: &models.WeatherReading{Temp: 22, Condition: "Clear"}})

	records, err := service.Recommend(testRequest())
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(records) != 1 || records[0].Name != "City Walk" {
		t.Errorf("Expected the City Walk fallback, got %+v", records)
	}
	if records[0].Score != 80 {
		t.Errorf("Expected fallback score 80, got %d", records[0].Score)
	}
}
