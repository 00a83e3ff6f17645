package advisor

import (
	"fmt"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// ruleWeatherForecast turns upcoming rain, heat, frost and wind windows
// into preparation advice. It contributes nothing when weather data was
// unavailable.
func (e *Engine) ruleWeatherForecast(ac *Context, an *Analysis) []Candidate {
	if !ac.WeatherAvailable {
		return nil
	}

	var out []Candidate

	// Rain inside the hourly horizon: defer watering instead of doubling up.
	if pt, ok := firstRainWindow(ac.Weather.Hourly, e.cfg.RainSkipProb, e.cfg.HeavyRainMM); ok {
		hours := int(pt.Time.Sub(ac.Now).Hours())
		if hours < 0 {
			hours = 0
		}
		out = append(out, Candidate{
			Action:        "Skip watering before the coming rain",
			Description:   fmt.Sprintf("Rain is expected in about %d hours (%.0f%% probability, %.1f mm).", hours, pt.PrecipProb, pt.PrecipMM),
			Reason:        "rain window inside the hourly forecast",
			Priority:      PriorityMedium,
			Category:      CategoryWeather,
			SuggestedTime: TimeAny,
		})
	}

	for _, day := range ac.Weather.Daily {
		if !day.Time.After(ac.Now) {
			continue
		}
		daysAhead := int(day.Time.Sub(ac.Now).Hours()/24) + 1

		if day.TempMaxC > e.cfg.HeatRiskTempC || day.TempMaxC > e.cfg.WarmTempC {
			priority := PriorityMedium
			if day.TempMaxC > e.cfg.HeatRiskTempC {
				priority = PriorityHigh
			}
			out = append(out, Candidate{
				Action:        "Prepare shade and extra water for the heat",
				Description:   fmt.Sprintf("Forecast high of %.1f°C in %d day(s); shade cloth and morning watering reduce stress.", day.TempMaxC, daysAhead),
				Reason:        fmt.Sprintf("forecast high %.1f°C exceeds the heat threshold", day.TempMaxC),
				Priority:      priority,
				Category:      CategoryWeather,
				SuggestedTime: TimeMorning,
			})
			break
		}
	}

	for _, day := range ac.Weather.Daily {
		if !day.Time.After(ac.Now) {
			continue
		}
		if day.TempMinC < e.cfg.FrostTempC {
			daysAhead := int(day.Time.Sub(ac.Now).Hours()/24) + 1
			out = append(out, Candidate{
				Action:        "Protect plants from the coming frost",
				Description:   fmt.Sprintf("Forecast low of %.1f°C in %d day(s); cover beds or move containers in the evening before.", day.TempMinC, daysAhead),
				Reason:        fmt.Sprintf("forecast low %.1f°C is below the frost threshold", day.TempMinC),
				Priority:      PriorityHigh,
				Category:      CategoryWeather,
				SuggestedTime: TimeEvening,
			})
			break
		}
	}

	for _, day := range ac.Weather.Daily {
		if !day.Time.After(ac.Now) {
			continue
		}
		if day.WindSpeedMS > e.cfg.WindRiskSpeedMS {
			daysAhead := int(day.Time.Sub(ac.Now).Hours()/24) + 1
			out = append(out, Candidate{
				Action:        "Stake tall plants and secure covers before the wind",
				Description:   fmt.Sprintf("Forecast wind of %.1f m/s in %d day(s).", day.WindSpeedMS, daysAhead),
				Reason:        fmt.Sprintf("forecast wind %.1f m/s exceeds the wind threshold", day.WindSpeedMS),
				Priority:      PriorityMedium,
				Category:      CategoryWeather,
				SuggestedTime: TimeAny,
			})
			break
		}
	}

	return out
}

// firstRainWindow finds the earliest hourly point whose rain probability or
// precipitation amount crosses the configured thresholds.
func firstRainWindow(hourly []models.ForecastPoint, probThreshold, mmThreshold float64) (models.ForecastPoint, bool) {
	for _, pt := range hourly {
		if pt.PrecipProb >= probThreshold || pt.PrecipMM >= mmThreshold {
			return pt, true
		}
	}
	return models.ForecastPoint{}, false
}
