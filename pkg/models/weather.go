package models

import "time"

// WeatherCondition is the closed set of sky conditions the advisor reasons
// about.
type WeatherCondition string

const (
	ConditionClear        WeatherCondition = "clear"
	ConditionPartlyCloudy WeatherCondition = "partly_cloudy"
	ConditionCloudy       WeatherCondition = "cloudy"
	ConditionRain         WeatherCondition = "rain"
	ConditionStorm        WeatherCondition = "storm"
	ConditionSnow         WeatherCondition = "snow"
	ConditionFog          WeatherCondition = "fog"
)

// WeatherObservation is the latest observed weather at a plot's location.
type WeatherObservation struct {
	TempC       float64          `json:"temp_c"`
	Humidity    float64          `json:"humidity"`
	WindSpeedMS float64          `json:"wind_speed_ms"`
	RainMM      float64          `json:"rain_mm"`
	PressureHPa float64          `json:"pressure_hpa"`
	Condition   WeatherCondition `json:"condition"`
	ObservedAt  time.Time        `json:"observed_at"`
}

// ForecastPoint is one hourly or daily forecast entry.
type ForecastPoint struct {
	Time        time.Time        `json:"time"`
	TempC       float64          `json:"temp_c"`
	TempMinC    float64          `json:"temp_min_c,omitempty"`
	TempMaxC    float64          `json:"temp_max_c,omitempty"`
	Humidity    float64          `json:"humidity"`
	WindSpeedMS float64          `json:"wind_speed_ms"`
	PrecipProb  float64          `json:"precip_prob"`
	PrecipMM    float64          `json:"precip_mm"`
	Condition   WeatherCondition `json:"condition"`
}

// WeatherSnapshot bundles the observation and forecasts used by one advisor
// invocation.
type WeatherSnapshot struct {
	Observation *WeatherObservation `json:"observation,omitempty"`
	Hourly      []ForecastPoint     `json:"hourly,omitempty"`
	Daily       []ForecastPoint     `json:"daily,omitempty"`
}
