package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/itsananyaaa/Pocket-Plans/models"
)

// QuestService assembles gamified itineraries. The safety and social engines
// are stubbed constants until real telemetry exists.
type QuestService struct {
}

func NewQuestService() *QuestService {
	return &QuestService{}
}

const (
	stubSafetyScore      = 85
	stubSocialScore      = 92
	rainedOutSocialScore = 60
)

// GenerateQuest builds a quest for the context. The safety and social
// lookups run concurrently and are awaited jointly.
func (qs *QuestService) GenerateQuest(ctx models.QuestContext) *models.QuestNetwork {
	var (
		wg          sync.WaitGroup
		safetyScore int
		socialScore int
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		safetyScore = qs.safetyScore(ctx.Location, ctx.TimeAvailable)
	}()
	go func() {
		defer wg.Done()
		socialScore = qs.socialVibeScore(ctx.Location, ctx.WeatherCondition)
	}()
	wg.Wait()

	steps := qs.generateSteps(ctx)
	totalDuration := 0
	for _, s := range steps {
		totalDuration += s.EstimatedDuration
	}

	return &models.QuestNetwork{
		QuestID:                uuid.NewString(),
		Title:                  fmt.Sprintf("%s Adventure in %s", ctx.VibePreference, ctx.WeatherCondition),
		Narrative: fmt.Sprintf(
			"A curated journey for a %s mood. Weather is %s, so we picked spots accordingly.",
			strings.ToLower(ctx.VibePreference), ctx.WeatherCondition),
		SafetyScore:            safetyScore,
		SocialVibeScore:        socialScore,
		Steps:                  steps,
		GamificationChallenges: qs.generateChallenges(ctx),
		TotalDuration:          totalDuration,
	}
}

// safetyScore stands in for a safety engine (crime stats, lighting data).
func (qs *QuestService) safetyScore(location map[string]float64, timeAvailable int) int {
	return stubSafetyScore
}

// socialVibeScore stands in for a social engine (live crowd data).
func (qs *QuestService) socialVibeScore(location map[string]float64, weather string) int {
	w := strings.ToLower(weather)
	if w == "rain" || w == "storm" {
		return rainedOutSocialScore
	}
	return stubSocialScore
}

func (qs *QuestService) generateSteps(ctx models.QuestContext) []models.QuestStep {
	lat := ctx.Location["lat"]
	lon := ctx.Location["lon"]
	return []models.QuestStep{
		{
			StepID:            "step_1",
			PlaceName:         "The Catalyst Cafe",
			Description:       "Start your engine with a strong brew.",
			ActionItem:        "Order the 'Mystery Roosevelt' blend.",
			Coordinates:       map[string]float64{"lat": lat, "lon": lon},
			EstimatedDuration: 30,
		},
		{
			StepID:            "step_2",
			PlaceName:         "Neon Arcade",
			Description:       "Level up your day.",
			ActionItem:        "Beat the high score on Pac-Man.",
			Coordinates:       map[string]float64{"lat": lat + 0.001, "lon": lon + 0.001},
			EstimatedDuration: 45,
		},
	}
}

func (qs *QuestService) generateChallenges(ctx models.QuestContext) []string {
	challenges := []string{"Check-in at every location"}
	if ctx.TimeAvailable > 60 {
		challenges = append(challenges, "Complete the quest in under 90 minutes")
	}
	if strings.EqualFold(ctx.VibePreference, "adventure") {
		challenges = append(challenges, "Find the hidden QR code at the final stop")
	}
	return challenges
}
