package advisor

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// Deviate measures how far a value sits outside an optimal range, as a
// percentage of the nearest bound's magnitude so the result stays
// non-negative for negative bounds too. Values inside the range deviate
// by zero.
func Deviate(value float64, r models.OptimalRange) Deviation {
	switch {
	case value < r.Min:
		if r.Min == 0 {
			return Deviation{Direction: DirectionBelow, Percentage: 100}
		}
		return Deviation{Direction: DirectionBelow, Percentage: (r.Min - value) / math.Abs(r.Min) * 100}
	case value > r.Max:
		if r.Max == 0 {
			return Deviation{Direction: DirectionAbove, Percentage: 100}
		}
		return Deviation{Direction: DirectionAbove, Percentage: (value - r.Max) / math.Abs(r.Max) * 100}
	default:
		return Deviation{Direction: DirectionOptimal, Percentage: 0}
	}
}

// evaluateRisks merges sensor, weather and alert signals into one
// severity-ranked risk list plus summary counts.
func (e *Engine) evaluateRisks(ac *Context, sensors map[models.SensorType]SensorAnalysis) ([]RiskItem, RiskSummary) {
	var risks []RiskItem

	// Sensor risks. Statuses below warning still drive advice but are not
	// risks on their own.
	for _, st := range models.AllSensorTypes {
		sa, ok := sensors[st]
		if !ok {
			continue
		}
		switch sa.Status {
		case StatusCritical:
			risks = append(risks, RiskItem{
				Type:        RiskSourceSensor,
				Severity:    SeverityHigh,
				Source:      string(st),
				Description: fmt.Sprintf("%s reading %.1f%s is outside the critical band", models.SensorTypeRegistry[st].Name, sa.Current, sa.Unit),
			})
		case StatusWarning:
			risks = append(risks, RiskItem{
				Type:        RiskSourceSensor,
				Severity:    SeverityMedium,
				Source:      string(st),
				Description: fmt.Sprintf("%s reading %.1f%s is drifting out of range (%s)", models.SensorTypeRegistry[st].Name, sa.Current, sa.Unit, sa.Trend),
			})
		}
	}

	// Weather risks from the current observation.
	if ac.WeatherAvailable && ac.Weather.Observation != nil {
		obs := ac.Weather.Observation
		if obs.TempC > e.cfg.HeatRiskTempC {
			risks = append(risks, RiskItem{
				Type:        RiskSourceWeather,
				Severity:    SeverityHigh,
				Source:      "temperature",
				Description: fmt.Sprintf("extreme heat: %.1f°C observed", obs.TempC),
			})
		} else if obs.TempC > e.cfg.WarmTempC {
			risks = append(risks, RiskItem{
				Type:        RiskSourceWeather,
				Severity:    SeverityMedium,
				Source:      "temperature",
				Description: fmt.Sprintf("high temperature: %.1f°C observed", obs.TempC),
			})
		}
		if obs.TempC < e.cfg.FrostTempC {
			risks = append(risks, RiskItem{
				Type:        RiskSourceWeather,
				Severity:    SeverityMedium,
				Source:      "temperature",
				Description: fmt.Sprintf("frost risk: %.1f°C observed", obs.TempC),
			})
		}
		if obs.WindSpeedMS > e.cfg.WindRiskSpeedMS {
			risks = append(risks, RiskItem{
				Type:        RiskSourceWeather,
				Severity:    SeverityHigh,
				Source:      "wind",
				Description: fmt.Sprintf("strong wind: %.1f m/s observed", obs.WindSpeedMS),
			})
		}
	}

	// Alert pass-through, normalized into the three-tier scale.
	for _, alert := range ac.Alerts {
		if !alert.Active() {
			continue
		}
		risks = append(risks, RiskItem{
			Type:        RiskSourceAlert,
			Severity:    e.normalizeSeverity(alert.Severity),
			Source:      alert.Source,
			Description: alert.Message,
		})
	}

	summary := RiskSummary{TotalRisks: len(risks)}
	for _, r := range risks {
		if r.Severity == SeverityHigh {
			summary.HighSeverityCount++
		}
	}

	return risks, summary
}

// normalizeSeverity maps upstream alert severities onto the three-tier
// scale. Unknown values fall back to the configured default; that is a
// policy choice, not a failure, so it only warns.
func (e *Engine) normalizeSeverity(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "critical", "emergency":
		return SeverityHigh
	case "medium", "moderate", "warning", "warn":
		return SeverityMedium
	case "low", "info", "notice":
		return SeverityLow
	default:
		log.Printf("⚠ unknown alert severity %q, defaulting to %s", raw, e.cfg.UnknownAlertSeverity)
		return e.cfg.UnknownAlertSeverity
	}
}
