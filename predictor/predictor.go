package predictor

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
)

// VenueType is the closed output vocabulary of the preference model.
type VenueType string

const (
	VenueTypeCafe       VenueType = "cafe"
	VenueTypePark       VenueType = "park"
	VenueTypeMuseum     VenueType = "museum"
	VenueTypeRestaurant VenueType = "restaurant"
)

var knownVenueTypes = map[VenueType]struct{}{
	VenueTypeCafe:       {},
	VenueTypePark:       {},
	VenueTypeMuseum:     {},
	VenueTypeRestaurant: {},
}

// Params is the serialized form of a trained multinomial logistic-regression
// model: one coefficient row and intercept per target class, feature order
// [weather_encoded, time_available, distance, rating].
type Params struct {
	WeatherClasses []string    `json:"weather_classes"`
	TargetClasses  []string    `json:"target_classes"`
	Coefficients   [][]float64 `json:"coefficients"`
	Intercepts     []float64   `json:"intercepts"`
}

const featureCount = 4

// Model is an immutable inference handle. A zero/unloaded Model is valid and
// answers every Predict call with ok=false. Loaded parameters are never
// mutated, so a single Model is safe for concurrent use.
type Model struct {
	loaded         bool
	weatherClasses map[string]int
	targetClasses  []VenueType
	coefficients   [][]float64
	intercepts     []float64
}

// Unloaded returns a handle that never predicts.
func Unloaded() *Model {
	return &Model{}
}

// NewModel validates params and builds an inference handle.
func NewModel(params Params) (*Model, error) {
	n := len(params.TargetClasses)
	if n == 0 {
		return nil, fmt.Errorf("model has no target classes")
	}
	if len(params.Coefficients) != n || len(params.Intercepts) != n {
		return nil, fmt.Errorf("model shape mismatch: %d classes, %d coefficient rows, %d intercepts",
			n, len(params.Coefficients), len(params.Intercepts))
	}
	targets := make([]VenueType, n)
	for i, c := range params.TargetClasses {
		vt := VenueType(c)
		if _, ok := knownVenueTypes[vt]; !ok {
			return nil, fmt.Errorf("unknown target class %q", c)
		}
		if len(params.Coefficients[i]) != featureCount {
			return nil, fmt.Errorf("coefficient row %d has %d features, want %d",
				i, len(params.Coefficients[i]), featureCount)
		}
		targets[i] = vt
	}
	weather := make(map[string]int, len(params.WeatherClasses))
	for i, w := range params.WeatherClasses {
		weather[w] = i
	}
	return &Model{
		loaded:         true,
		weatherClasses: weather,
		targetClasses:  targets,
		coefficients:   params.Coefficients,
		intercepts:     params.Intercepts,
	}, nil
}

// Load reads model parameters from disk. It never fails hard: any problem is
// logged and an unloaded handle is returned, so scoring proceeds without
// predictor input.
func Load(path string) *Model {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Printf("[Predictor] Model artifacts not found (%v). Skipping model loading.", err)
		return Unloaded()
	}
	var params Params
	if err := json.Unmarshal(data, &params); err != nil {
		log.Printf("[Predictor] Failed to parse model parameters: %v", err)
		return Unloaded()
	}
	model, err := NewModel(params)
	if err != nil {
		log.Printf("[Predictor] Invalid model parameters: %v", err)
		return Unloaded()
	}
	log.Println("[Predictor] Model loaded successfully.")
	return model
}

// Loaded reports whether Predict can ever return ok.
func (m *Model) Loaded() bool {
	return m.loaded
}

// Predict returns the preferred venue type for the given context, or ok=false
// when the model is unloaded. An unrecognized weather token falls back to a
// fixed encoding of 0 instead of being rejected.
func (m *Model) Predict(weather string, timeAvailable int, rating, distance float64) (VenueType, bool) {
	if !m.loaded {
		return "", false
	}

	encoded, ok := m.weatherClasses[weather]
	if !ok {
		encoded = 0
	}
	features := [featureCount]float64{float64(encoded), float64(timeAvailable), distance, rating}

	best := 0
	bestScore := m.decision(0, features)
	for i := 1; i < len(m.targetClasses); i++ {
		if score := m.decision(i, features); score > bestScore {
			best, bestScore = i, score
		}
	}
	return m.targetClasses[best], true
}

func (m *Model) decision(class int, features [featureCount]float64) float64 {
	score := m.intercepts[class]
	for i, c := range m.coefficients[class] {
		score += c * features[i]
	}
	return score
}
