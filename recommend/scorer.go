package recommend

import (
	"fmt"
	"strconv"

	"github.com/itsananyaaa/Pocket-Plans/feedback"
	"github.com/itsananyaaa/Pocket-Plans/models"
	"github.com/itsananyaaa/Pocket-Plans/predictor"
)

// Context is the immutable per-request input to the ranking pipeline.
type Context struct {
	Lat           float64
	Lon           float64
	TimeAvailable int // minutes
	Weather       models.WeatherReading
	Vibe          string
	Budget        string
}

const DEFAULT_TIME_BUDGET_MINUTES = 60

// ParseTimeBudget parses a user-supplied time budget. Unparseable or
// negative input defaults to 60 minutes.
func ParseTimeBudget(raw string) int {
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		return DEFAULT_TIME_BUDGET_MINUTES
	}
	return minutes
}

// ScoredCandidate is a candidate with its bounded score and reasons. Derived
// artifacts are attached later by the pipeline.
type ScoredCandidate struct {
	models.Candidate
	Score   int
	Reasons []string
}

// Scoring parameters. The weights and clamp bounds are empirical; treat them
// as tunable, not structural.
const (
	baseScore          = 70
	predictorBonus     = 5
	rainOutdoorPenalty = 30
	rainShelterBonus   = 20
	sunnyOutdoorBonus  = 25
	freeTierBonus      = 20
	premiumBonus       = 15
	farPenalty         = 15

	minScore = 40
	maxScore = 99

	shortTimeMinutes  = 45
	farDistanceMeters = 3000
)

// ratingProxy is the fixed rating feature fed to the predictor until real
// venue ratings are available.
const ratingProxy = 4.5

// distanceUnitMeters converts candidate distance to the predictor's
// distance feature.
const distanceUnitMeters = 100

var venueTypeCategories = map[predictor.VenueType]Category{
	predictor.VenueTypeCafe:       CategoryCafe,
	predictor.VenueTypePark:       CategoryPark,
	predictor.VenueTypeMuseum:     CategoryMuseum,
	predictor.VenueTypeRestaurant: CategoryRestaurant,
}

// Scorer fuses weather, budget, time/distance and predictor agreement into
// one bounded score per candidate.
type Scorer struct {
	model    *predictor.Model
	recorder feedback.Recorder
}

// NewScorer builds a scorer around an inference handle and a feedback
// recorder. Both are required; pass predictor.Unloaded() and a NoopRecorder
// when no model is available.
func NewScorer(model *predictor.Model, recorder feedback.Recorder) *Scorer {
	return &Scorer{model: model, recorder: recorder}
}

// Score computes the bounded score and ordered reasons for one candidate.
// Adjustments apply in a fixed order (predictor, weather, budget,
// time/distance) so the surviving top-2 reasons are deterministic.
func (s *Scorer) Score(ctx Context, weather WeatherCategory, budget BudgetCategory, candidate models.Candidate) ScoredCandidate {
	tags := ClassifyTags(candidate.Categories)
	score := baseScore
	var reasons []string

	// 1. Predictor agreement. A match is also recorded as a training sample.
	if predicted, ok := s.predict(ctx, weather, candidate); ok {
		if tags.Has(venueTypeCategories[predicted]) {
			score += predictorBonus
			reasons = append(reasons, fmt.Sprintf("AI suggests %ss right now.", predicted))
			s.recorder.Record(feedback.Sample{
				Weather:       string(weather),
				TimeAvailable: ctx.TimeAvailable,
				Distance:      candidate.Distance / distanceUnitMeters,
				Rating:        ratingProxy,
				Vibe:          ctx.Vibe,
				Budget:        ctx.Budget,
				ChosenType:    string(predicted),
			})
		}
	}

	// 2. Weather impact.
	if weather == WeatherRainy {
		if tags.Has(CategoryPark) {
			score -= rainOutdoorPenalty
			reasons = append(reasons, "Rain makes outdoors less ideal.")
		} else {
			score += rainShelterBonus
			reasons = append(reasons, "Great indoor shelter.")
		}
	} else if weather == WeatherSunny && tags.Has(CategoryPark) {
		score += sunnyOutdoorBonus
		reasons = append(reasons, "Perfect weather for outdoors.")
	}

	// 3. Budget impact.
	if budget == BudgetFree && tags.HasAny(CategoryPark, CategoryCulture) {
		score += freeTierBonus
		reasons = append(reasons, "Wallet-friendly.")
	} else if budget == BudgetPremium && tags.Has(CategoryRestaurant) {
		score += premiumBonus
		reasons = append(reasons, "Premium vibe.")
	}

	// 4. Time/distance impact.
	if ctx.TimeAvailable < shortTimeMinutes && candidate.Distance > farDistanceMeters {
		score -= farPenalty
		reasons = append(reasons, "A bit far for your time.")
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	// Every candidate carries at least one reason.
	if len(reasons) == 0 {
		reasons = append(reasons, fmt.Sprintf("Matches your %s vibe.", ctx.Vibe))
	}

	return ScoredCandidate{Candidate: candidate, Score: score, Reasons: reasons}
}

func (s *Scorer) predict(ctx Context, weather WeatherCategory, candidate models.Candidate) (predictor.VenueType, bool) {
	return s.model.Predict(string(weather), ctx.TimeAvailable, ratingProxy, candidate.Distance/distanceUnitMeters)
}
