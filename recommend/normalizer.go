package recommend

import "strings"

// WeatherCategory is the 3-way canonical weather token used by the scorer and
// the predictor.
type WeatherCategory string

const (
	WeatherRainy  WeatherCategory = "rainy"
	WeatherSunny  WeatherCategory = "sunny"
	WeatherCloudy WeatherCategory = "cloudy"
)

// BudgetCategory is the canonical budget tier.
type BudgetCategory string

const (
	BudgetFree     BudgetCategory = "free"
	BudgetStandard BudgetCategory = "budget"
	BudgetPremium  BudgetCategory = "premium"
)

// Normalize maps raw weather and budget labels into canonical tokens. It is
// total over all string inputs: unknown weather falls through to cloudy,
// unknown or empty budget to the standard tier.
func Normalize(weatherLabel, budgetLabel string) (WeatherCategory, BudgetCategory) {
	return NormalizeWeather(weatherLabel), NormalizeBudget(budgetLabel)
}

// NormalizeWeather reduces a provider condition label to a 3-way category.
func NormalizeWeather(label string) WeatherCategory {
	w := strings.ToLower(label)
	switch {
	case strings.Contains(w, "rain"):
		return WeatherRainy
	case strings.Contains(w, "clear"), strings.Contains(w, "sun"):
		return WeatherSunny
	default:
		return WeatherCloudy
	}
}

// NormalizeBudget lower-cases the tier label and defaults to "budget".
func NormalizeBudget(label string) BudgetCategory {
	switch strings.ToLower(label) {
	case string(BudgetFree):
		return BudgetFree
	case string(BudgetPremium):
		return BudgetPremium
	default:
		return BudgetStandard
	}
}
