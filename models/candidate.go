package models

// Candidate is one raw venue returned by the places provider.
type Candidate struct {
	Name       string   `json:"name"`
	Distance   float64  `json:"distance"` // meters from the resolved coordinates
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Categories []string `json:"categories"`
}
