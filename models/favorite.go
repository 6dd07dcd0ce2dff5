package models

// Favorite is a venue the user saved from a previous recommendation.
type Favorite struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Score    int    `json:"score"`
}
