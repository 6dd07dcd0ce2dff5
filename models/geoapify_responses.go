package models

// GeocodeResponse mirrors the Geoapify geocoding search payload.
type GeocodeResponse struct {
	Features []GeocodeFeature `json:"features"`
}

type GeocodeFeature struct {
	Properties GeocodeProperties `json:"properties"`
}

type GeocodeProperties struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Formatted string  `json:"formatted"`
}

// PlacesResponse mirrors the Geoapify places payload.
type PlacesResponse struct {
	Features []PlaceFeature `json:"features"`
}

type PlaceFeature struct {
	Properties PlaceProperties `json:"properties"`
}

type PlaceProperties struct {
	Name       string   `json:"name"`
	Distance   float64  `json:"distance"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Categories []string `json:"categories"`
}

const UNKNOWN_PLACE_NAME = "Unknown Place"

// Candidates flattens the places payload into raw candidates. Venues without
// a name keep a placeholder so every candidate stays presentable.
func (r *PlacesResponse) Candidates() []Candidate {
	candidates := make([]Candidate, 0, len(r.Features))
	for _, f := range r.Features {
		name := f.Properties.Name
		if name == "" {
			name = UNKNOWN_PLACE_NAME
		}
		candidates = append(candidates, Candidate{
			Name:       name,
			Distance:   f.Properties.Distance,
			Lat:        f.Properties.Lat,
			Lon:        f.Properties.Lon,
			Categories: f.Properties.Categories,
		})
	}
	return candidates
}
