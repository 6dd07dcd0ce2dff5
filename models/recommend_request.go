package models

// RecommendRequest is the body of POST /v1/recommend.
type RecommendRequest struct {
	Location   string `json:"location"`
	Time       string `json:"time"`
	Preference string `json:"preference"` // vibe
	Budget     string `json:"budget"`     // free | budget | premium
}
