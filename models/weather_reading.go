package models

// WeatherReading is the unreduced weather report for the resolved coordinates.
type WeatherReading struct {
	Temp        float64 `json:"temp"` // °C
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
}
