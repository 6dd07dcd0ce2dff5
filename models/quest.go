package models

// QuestContext is the input for quest generation.
type QuestContext struct {
	UserID           string             `json:"user_id"`
	Location         map[string]float64 `json:"location"` // {"lat": .., "lon": ..}
	TimeAvailable    int                `json:"time_available"` // minutes
	WeatherCondition string             `json:"weather_condition"`
	VibePreference   string             `json:"vibe_preference"`
	BudgetTier       string             `json:"budget_tier"`
}

// QuestStep is one stop of a generated quest.
type QuestStep struct {
	StepID            string             `json:"step_id"`
	PlaceName         string             `json:"place_name"`
	Description       string             `json:"description"`
	ActionItem        string             `json:"action_item"`
	Coordinates       map[string]float64 `json:"coordinates"`
	EstimatedDuration int                `json:"estimated_duration"`
}

// QuestNetwork is a full generated quest.
type QuestNetwork struct {
	QuestID                string      `json:"quest_id"`
	Title                  string      `json:"title"`
	Narrative              string      `json:"narrative"`
	SafetyScore            int         `json:"safety_score"`       // 0-100
	SocialVibeScore        int         `json:"social_vibe_score"`  // 0-100
	Steps                  []QuestStep `json:"steps"`
	GamificationChallenges []string    `json:"gamification_challenges"`
	TotalDuration          int         `json:"total_duration"`
}
