package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	redisdao "github.com/itsananyaaa/Pocket-Plans/dao/redis"
	"github.com/itsananyaaa/Pocket-Plans/db"
	"github.com/itsananyaaa/Pocket-Plans/models"
)

func newTestPlanService() *PlanService {
	return NewPlanService(redisdao.NewPlanDAO(db.NewMockRedisClient(context.Background())))
}

func TestPlanService_FavoritesRoundTrip(t *testing.T) {
	service := newTestPlanService()

	favorite := models.Favorite{Name: "Corner Cafe", Location: "Montreal", Score: 88}
	if err := service.AddFavorite(favorite); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}

	favorites, err := service.GetFavorites()
	if err != nil {
		t.Fatalf("GetFavorites: %v", err)
	}
	assert.Equal(t, []models.Favorite{favorite}, favorites)
}

func TestPlanService_GetHistoryEmpty(t *testing.T) {
	service := newTestPlanService()

	history, err := service.GetHistory()
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(history))
	}
}

func TestSuggestionsForHour(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want []string
	}{
		{"early morning", 6, []string{"Morning Coffee Run", "Sunrise Park Walk", "Breakfast Spot"}},
		{"late morning boundary", 10, []string{"Morning Coffee Run", "Sunrise Park Walk", "Breakfast Spot"}},
		{"start of afternoon", 11, []string{"Visit local Museum", "City Park Stroll", "Coworking Session"}},
		{"mid afternoon", 15, []string{"Visit local Museum", "City Park Stroll", "Coworking Session"}},
		{"evening", 17, []string{"Sunset Viewpoint", "Cozy Dinner", "Night Walk"}},
		{"midnight", 23, []string{"Sunset Viewpoint", "Cozy Dinner", "Night Walk"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, SuggestionsForHour(test.hour))
		})
	}
}
