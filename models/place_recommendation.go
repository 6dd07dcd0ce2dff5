package models

// PlaceRecommendation is one entry of the /v1/recommend response, best first.
type PlaceRecommendation struct {
	Name                 string   `json:"name"`
	Distance             string   `json:"distance"` // e.g. "12 min walk"
	Duration             string   `json:"duration"`
	Reason               []string `json:"reason"` // at most 2 entries
	Score                int      `json:"score"`
	Weather              string   `json:"weather"` // e.g. "Clear, 20°C"
	MustTake             []string `json:"must_take"`
	Alternative          string   `json:"alternative,omitempty"`
	MusicRecommendations []string `json:"music_recommendations"`
	ImageURL             string   `json:"image_url"`
}
