package models

// WeatherResponse mirrors the OpenWeather current-weather payload.
type WeatherResponse struct {
	Main    WeatherMain        `json:"main"`
	Weather []WeatherCondition `json:"weather"`
}

type WeatherMain struct {
	Temp float64 `json:"temp"`
}

type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Reading reduces the payload to the fields the pipeline consumes.
func (r *WeatherResponse) Reading() WeatherReading {
	reading := WeatherReading{Temp: r.Main.Temp}
	if len(r.Weather) > 0 {
		reading.Condition = r.Weather[0].Main
		reading.Description = r.Weather[0].Description
	}
	return reading
}
