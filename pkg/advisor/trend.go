package advisor

import (
	"math"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// classifyTrend fits a least-squares line over the newest points of a series
// (index = recency rank, so a positive slope means values are rising toward
// the present) and classifies the direction. Series with high variance
// relative to their mean classify as fluctuating regardless of slope;
// series shorter than the minimum default to stable.
func (e *Engine) classifyTrend(series models.SensorSeries) Trend {
	values := series.Values()
	if len(values) < e.cfg.TrendMinPoints {
		return TrendStable
	}
	if len(values) > e.cfg.TrendWindow {
		values = values[:e.cfg.TrendWindow]
	}

	n := float64(len(values))

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= n

	if mean != 0 && variance > e.cfg.FluctuationRatio*math.Abs(mean) {
		return TrendFluctuating
	}

	// Least-squares slope with x = recency rank. values[0] is the newest
	// reading, so walk backwards to make x increase toward the present.
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(len(values) - 1 - i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return TrendStable
	}
	slope := (n*sumXY - sumX*sumY) / denom

	switch {
	case math.Abs(slope) < e.cfg.SlopeThreshold:
		return TrendStable
	case slope > 0:
		return TrendIncreasing
	default:
		return TrendDecreasing
	}
}

// classifyStatus evaluates the current value against the sensor type's
// threshold bands, refined by trend: a borderline value still moving away
// from the optimal window escalates from attention to warning, and an
// in-band but fluctuating sensor reads as unstable.
func classifyStatus(st models.SensorType, value float64, trend Trend) Status {
	bands := models.SensorTypeRegistry[st].Bands

	if value < bands.CriticalLow || value > bands.CriticalHigh {
		return StatusCritical
	}

	if value < bands.Low {
		if trend == TrendDecreasing {
			return StatusWarning
		}
		return StatusAttention
	}
	if value > bands.High {
		if trend == TrendIncreasing {
			return StatusWarning
		}
		return StatusAttention
	}

	if trend == TrendFluctuating {
		return StatusUnstable
	}
	return StatusOptimal
}

// analyzeSensors converts each sensor series in the context into its
// analyzed (current, trend, status, deviation) form. Sensor types with no
// readings are skipped; rules treat absence as "nothing to say".
func (e *Engine) analyzeSensors(ac *Context) map[models.SensorType]SensorAnalysis {
	analyses := make(map[models.SensorType]SensorAnalysis, len(ac.Series))

	for st, series := range ac.Series {
		latest, ok := series.Latest()
		if !ok {
			continue
		}

		trend := e.classifyTrend(series)
		status := classifyStatus(st, latest.Value, trend)
		optimal := ac.Stage.Current.RangeFor(st)

		history := series.Readings
		if len(history) > e.cfg.TrendWindow {
			history = history[:e.cfg.TrendWindow]
		}

		analyses[st] = SensorAnalysis{
			SensorType: st,
			Current:    latest.Value,
			Unit:       models.SensorTypeRegistry[st].Unit,
			Trend:      trend,
			Status:     status,
			Range:      optimal,
			Deviation:  Deviate(latest.Value, optimal),
			History:    history,
		}
	}

	return analyses
}
