package advisor

import (
	"fmt"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// ruleEmergency emits a high-priority candidate for every critical sensor
// and every high-severity active alert. A critical sensor always yields at
// least one high item referencing that sensor.
func (e *Engine) ruleEmergency(ac *Context, an *Analysis) []Candidate {
	var out []Candidate

	for _, st := range models.AllSensorTypes {
		sa, ok := an.Sensors[st]
		if !ok || sa.Status != StatusCritical {
			continue
		}
		out = append(out, e.emergencyCandidate(ac, sa))
	}

	for _, alert := range ac.Alerts {
		if !alert.Active() || e.normalizeSeverity(alert.Severity) != SeverityHigh {
			continue
		}
		out = append(out, Candidate{
			Action:        fmt.Sprintf("Resolve alert from %s now", alert.Source),
			Description:   alert.Message,
			Reason:        fmt.Sprintf("high-severity alert raised by %s", alert.Source),
			Priority:      PriorityHigh,
			Category:      CategoryEmergency,
			SuggestedTime: TimeAny,
		})
	}

	return out
}

// emergencyCandidate renders the critical-sensor facts into an urgent
// recommendation. Soil moisture gets a concrete watering amount; the other
// types get the matching corrective action.
func (e *Engine) emergencyCandidate(ac *Context, sa SensorAnalysis) Candidate {
	info := models.SensorTypeRegistry[sa.SensorType]
	c := Candidate{
		Priority:      PriorityHigh,
		Category:      categoryForSensor(sa.SensorType),
		SuggestedTime: TimeAny,
		Reason: fmt.Sprintf("%s at %.1f%s is outside the critical band [%.1f, %.1f]",
			info.Name, sa.Current, sa.Unit, info.Bands.CriticalLow, info.Bands.CriticalHigh),
	}

	below := sa.Current < info.Bands.CriticalLow

	switch sa.SensorType {
	case models.SensorTypeSoilMoisture:
		if below {
			c.Action = fmt.Sprintf("Water immediately: apply about %.0f liters per m²", wateringAmountLiters(sa))
			c.Description = fmt.Sprintf("Soil moisture is critically low at %.1f%% and %s.", sa.Current, trendPhrase(sa.Trend))
		} else {
			c.Action = "Stop watering and improve drainage now"
			c.Description = fmt.Sprintf("Soil moisture is critically high at %.1f%%; roots risk rotting.", sa.Current)
		}
	case models.SensorTypeTemperature:
		if below {
			c.Action = "Protect plants from cold immediately"
			c.Description = fmt.Sprintf("Temperature is critically low at %.1f°C; cover plants or move them indoors.", sa.Current)
		} else {
			c.Action = "Shade and ventilate immediately"
			c.Description = fmt.Sprintf("Temperature is critically high at %.1f°C; provide shade and airflow now.", sa.Current)
		}
	case models.SensorTypeHumidity:
		if below {
			c.Action = "Raise humidity around the plants now"
			c.Description = fmt.Sprintf("Air humidity is critically low at %.1f%%; mist or group plants immediately.", sa.Current)
		} else {
			c.Action = "Ventilate to lower humidity now"
			c.Description = fmt.Sprintf("Air humidity is critically high at %.1f%%; fungal disease risk is acute.", sa.Current)
		}
	case models.SensorTypeLight:
		if below {
			c.Action = "Move plants to stronger light today"
			c.Description = fmt.Sprintf("Light is critically low at %.0f lux; growth will stall without more light.", sa.Current)
		} else {
			c.Action = "Shade plants from intense light now"
			c.Description = fmt.Sprintf("Light is critically high at %.0f lux; leaves risk scorching.", sa.Current)
		}
	case models.SensorTypeSoilPH:
		c.Action = "Correct soil pH urgently"
		c.Description = fmt.Sprintf("Soil pH at %.1f is outside the tolerable band; nutrient uptake is blocked.", sa.Current)
	}

	return c
}

// ruleEnvironmental emits per-sensor guidance for readings that are off
// optimal but not critical, keyed by sensor type and deviation direction.
func (e *Engine) ruleEnvironmental(ac *Context, an *Analysis) []Candidate {
	var out []Candidate

	for _, st := range models.AllSensorTypes {
		sa, ok := an.Sensors[st]
		if !ok {
			continue
		}

		switch sa.Status {
		case StatusAttention, StatusWarning:
			priority := PriorityLow
			if sa.Status == StatusWarning {
				priority = PriorityMedium
			}
			c := deviationCandidate(sa, priority)
			out = append(out, c)
		case StatusUnstable:
			out = append(out, Candidate{
				Action: fmt.Sprintf("Stabilize %s conditions", models.SensorTypeRegistry[st].Name),
				Description: fmt.Sprintf("%s readings are fluctuating around %.1f%s; look for an intermittent cause such as drafts or irrigation bursts.",
					models.SensorTypeRegistry[st].Name, sa.Current, sa.Unit),
				Reason:        fmt.Sprintf("%s is in range but unstable", models.SensorTypeRegistry[st].Name),
				Priority:      PriorityLow,
				Category:      categoryForSensor(st),
				SuggestedTime: TimeAny,
			})
		}
	}

	return out
}

// deviationCandidate renders the (sensor type, direction) pair into the
// matching corrective guidance.
func deviationCandidate(sa SensorAnalysis, priority Priority) Candidate {
	info := models.SensorTypeRegistry[sa.SensorType]
	c := Candidate{
		Priority:      priority,
		Category:      categoryForSensor(sa.SensorType),
		SuggestedTime: preferredTimeFor(sa.SensorType, sa.Deviation.Direction),
		Reason: fmt.Sprintf("%s at %.1f%s deviates %.0f%% %s the optimal range [%.1f, %.1f]",
			info.Name, sa.Current, sa.Unit, sa.Deviation.Percentage, sa.Deviation.Direction, sa.Range.Min, sa.Range.Max),
	}

	below := sa.Deviation.Direction == DirectionBelow

	switch sa.SensorType {
	case models.SensorTypeSoilMoisture:
		if below {
			c.Action = fmt.Sprintf("Water the plot with about %.0f liters per m²", wateringAmountLiters(sa))
			c.Description = fmt.Sprintf("Soil moisture at %.1f%% is below the stage optimum and %s.", sa.Current, trendPhrase(sa.Trend))
		} else {
			c.Action = "Hold off watering until the soil dries back"
			c.Description = fmt.Sprintf("Soil moisture at %.1f%% is above the stage optimum.", sa.Current)
		}
	case models.SensorTypeTemperature:
		if below {
			c.Action = "Add frost protection or row cover"
			c.Description = fmt.Sprintf("Temperature at %.1f°C is below the stage optimum of %.1f-%.1f°C.", sa.Current, sa.Range.Min, sa.Range.Max)
		} else {
			c.Action = "Provide shade during the hottest hours"
			c.Description = fmt.Sprintf("Temperature at %.1f°C is above the stage optimum of %.1f-%.1f°C.", sa.Current, sa.Range.Min, sa.Range.Max)
		}
	case models.SensorTypeHumidity:
		if below {
			c.Action = "Raise ambient humidity"
			c.Description = fmt.Sprintf("Humidity at %.1f%% is below the stage optimum; misting in the morning helps.", sa.Current)
		} else {
			c.Action = "Improve air circulation"
			c.Description = fmt.Sprintf("Humidity at %.1f%% is above the stage optimum; ventilate to keep fungus away.", sa.Current)
		}
	case models.SensorTypeLight:
		if below {
			c.Action = "Increase light exposure"
			c.Description = fmt.Sprintf("Light at %.0f lux is below the stage optimum; relocate or prune shading growth.", sa.Current)
		} else {
			c.Action = "Reduce direct light"
			c.Description = fmt.Sprintf("Light at %.0f lux is above the stage optimum; partial shade protects the leaves.", sa.Current)
		}
	case models.SensorTypeSoilPH:
		if below {
			c.Action = "Raise soil pH gradually"
			c.Description = fmt.Sprintf("Soil pH at %.1f is too acidic for this stage; work in lime in small doses.", sa.Current)
		} else {
			c.Action = "Lower soil pH gradually"
			c.Description = fmt.Sprintf("Soil pH at %.1f is too alkaline for this stage; elemental sulfur brings it down slowly.", sa.Current)
		}
	}

	return c
}

// wateringAmountLiters estimates liters per m² from how far soil moisture
// sits below its optimal minimum. Rough rule of thumb: one liter per m²
// raises moisture by about two percentage points.
func wateringAmountLiters(sa SensorAnalysis) float64 {
	deficit := sa.Range.Min - sa.Current
	if deficit < 2 {
		deficit = 2
	}
	return deficit / 2
}

// preferredTimeFor picks the best time-of-day bucket for a corrective
// action. Watering and misting work best before the heat of the day.
func preferredTimeFor(st models.SensorType, dir Direction) TimeOfDay {
	switch st {
	case models.SensorTypeSoilMoisture:
		if dir == DirectionBelow {
			return TimeMorning
		}
	case models.SensorTypeHumidity:
		if dir == DirectionBelow {
			return TimeMorning
		}
	case models.SensorTypeTemperature:
		if dir == DirectionAbove {
			return TimeNoon
		}
	}
	return TimeAny
}

func trendPhrase(t Trend) string {
	switch t {
	case TrendIncreasing:
		return "still rising"
	case TrendDecreasing:
		return "still falling"
	case TrendFluctuating:
		return "swinging"
	default:
		return "holding steady"
	}
}
