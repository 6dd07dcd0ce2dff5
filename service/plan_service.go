package services

import (
	"time"

	redisdao "github.com/itsananyaaa/Pocket-Plans/dao/redis"
	"github.com/itsananyaaa/Pocket-Plans/models"
)

const HISTORY_DEFAULT_LIMIT = 20

// PlanService exposes favorites, history and quick suggestions.
type PlanService struct {
	planDao *redisdao.PlanDAO
}

// NewPlanService constructs a new PlanService with Redis dependency injection.
func NewPlanService(planDao *redisdao.PlanDAO) *PlanService {
	return &PlanService{planDao: planDao}
}

func (ps *PlanService) AddFavorite(f models.Favorite) error {
	return ps.planDao.AddFavorite(f)
}

func (ps *PlanService) GetFavorites() ([]models.Favorite, error) {
	return ps.planDao.GetFavorites()
}

func (ps *PlanService) GetHistory() ([]models.HistoryEntry, error) {
	return ps.planDao.GetHistory(HISTORY_DEFAULT_LIMIT)
}

// GetSuggestions returns quick ideas for the current time of day.
func (ps *PlanService) GetSuggestions() []string {
	return SuggestionsForHour(time.Now().Hour())
}

// SuggestionsForHour maps an hour of day to a fixed suggestion triple.
func SuggestionsForHour(hour int) []string {
	switch {
	case hour < 11:
		return []string{"Morning Coffee Run", "Sunrise Park Walk", "Breakfast Spot"}
	case hour < 17:
		return []string{"Visit local Museum", "City Park Stroll", "Coworking Session"}
	default:
		return []string{"Sunset Viewpoint", "Cozy Dinner", "Night Walk"}
	}
}
