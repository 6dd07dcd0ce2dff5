package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/itsananyaaa/Pocket-Plans/api/geoapify"
	"github.com/itsananyaaa/Pocket-Plans/api/openweather"
	"github.com/itsananyaaa/Pocket-Plans/config"
	redisdao "github.com/itsananyaaa/Pocket-Plans/dao/redis"
	"github.com/itsananyaaa/Pocket-Plans/models"
	"github.com/itsananyaaa/Pocket-Plans/recommend"
)

// ErrLocationNotFound is the only per-request failure surfaced to the
// caller: without coordinates no score can be computed.
var ErrLocationNotFound = errors.New("location not found")

// RecommendationService resolves the request context against the external
// providers and runs the ranking pipeline.
type RecommendationService struct {
	geoapifyAPI    geoapify.GeoapifyAPI
	openWeatherAPI openweather.OpenWeatherAPI
	pipeline       *recommend.Pipeline
	planDao        *redisdao.PlanDAO
}

// NewRecommendationService constructs the service with its collaborators.
func NewRecommendationService(
	geoapifyAPI geoapify.GeoapifyAPI,
	openWeatherAPI openweather.OpenWeatherAPI,
	pipeline *recommend.Pipeline,
	planDao *redisdao.PlanDAO,
) *RecommendationService {
	return &RecommendationService{
		geoapifyAPI:    geoapifyAPI,
		openWeatherAPI: openWeatherAPI,
		pipeline:       pipeline,
		planDao:        planDao,
	}
}

// Recommend runs one full request: geocode, concurrent weather + places
// lookups, then the ranking pipeline. Provider failures degrade to defaults;
// only an unresolvable location returns an error.
func (rs *RecommendationService) Recommend(req models.RecommendRequest) ([]models.PlaceRecommendation, error) {
	geo, err := rs.geoapifyAPI.GeocodeSearch(req.Location)
	if err != nil {
		log.Printf("[RecommendationService] Geocoding failed for %q: %v", req.Location, err)
		return nil, ErrLocationNotFound
	}
	if !geo.Found {
		return nil, ErrLocationNotFound
	}

	if err := rs.planDao.AppendHistory(models.HistoryEntry{
		Location: req.Location,
		Vibe:     req.Preference,
		Date:     time.Now().Format(time.RFC3339),
	}); err != nil {
		log.Printf("[RecommendationService] Failed to append history: %v", err)
	}

	weather, candidates := rs.fetchContext(geo.Lat, geo.Lon, req)

	ctx := recommend.Context{
		Lat:           geo.Lat,
		Lon:           geo.Lon,
		TimeAvailable: recommend.ParseTimeBudget(req.Time),
		Weather:       weather,
		Vibe:          req.Preference,
		Budget:        req.Budget,
	}
	return rs.pipeline.Rank(ctx, candidates), nil
}

// fetchContext issues the weather and places lookups concurrently and awaits
// both. Each failure has a documented local recovery.
func (rs *RecommendationService) fetchContext(lat, lon float64, req models.RecommendRequest) (models.WeatherReading, []models.Candidate) {
	var (
		wg         sync.WaitGroup
		weather    models.WeatherReading
		candidates []models.Candidate
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		reading, err := rs.openWeatherAPI.GetCurrentWeather(lat, lon)
		if err != nil {
			log.Printf("[RecommendationService] Weather lookup failed, using default reading: %v", err)
			weather = openweather.DefaultReading()
			return
		}
		weather = *reading
	}()
	go func() {
		defer wg.Done()
		categories := recommend.CategoriesForVibe(req.Preference, req.Budget)
		found, err := rs.geoapifyAPI.GetPlacesNearby(lat, lon, categories)
		if err != nil {
			log.Printf("[RecommendationService] Places lookup failed, falling back to cache: %v", err)
			candidates = rs.cachedCandidates(lat, lon)
			return
		}
		candidates = found
		if err := rs.planDao.CacheCandidates(found); err != nil {
			log.Printf("[RecommendationService] Failed to cache candidates: %v", err)
		}
	}()
	wg.Wait()

	return weather, candidates
}

func (rs *RecommendationService) cachedCandidates(lat, lon float64) []models.Candidate {
	cached, err := rs.planDao.GetCachedCandidates(lat, lon, config.PLACES_SEARCH_RADIUS_METERS)
	if err != nil {
		log.Printf("[RecommendationService] Candidate cache lookup failed: %v", err)
		return nil
	}
	if len(cached) > config.PLACES_SEARCH_LIMIT {
		cached = cached[:config.PLACES_SEARCH_LIMIT]
	}
	return cached
}
