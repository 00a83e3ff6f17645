package advisor

// EngineVersion is attached to every result for traceability.
const EngineVersion = "1.2.0"

// Config holds the advisor's tunable constants. The defaults reproduce the
// documented behavior; none of them are load-bearing law, so callers may
// adjust them per deployment.
type Config struct {
	// TrendWindow is how many of the newest readings feed the regression.
	TrendWindow int
	// TrendMinPoints is the minimum series length for trend analysis;
	// shorter series default to a stable classification.
	TrendMinPoints int
	// SlopeThreshold is the absolute regression slope below which a series
	// counts as stable.
	SlopeThreshold float64
	// FluctuationRatio is the variance-to-mean ratio above which a series
	// counts as fluctuating regardless of slope.
	FluctuationRatio float64

	// Caps bound the number of items kept per priority tier.
	HighCap   int
	MediumCap int
	LowCap    int

	// Weather risk thresholds.
	HeatRiskTempC   float64 // above this observed temp: high risk
	WindRiskSpeedMS float64 // above this observed wind: high risk
	WarmTempC       float64 // above this: medium risk
	FrostTempC      float64 // below this: medium risk
	HeavyRainMM     float64 // forecast precip above this triggers rain advice
	RainSkipProb    float64 // forecast rain probability that defers watering
	ForecastHours   int     // hourly forecast horizon
	ForecastDays    int     // daily forecast horizon

	// UnknownAlertSeverity is assigned to alerts whose severity does not
	// normalize into the three-tier scale.
	UnknownAlertSeverity Severity

	// Care-history rule windows.
	WateringGapHours     int
	FertilizingGapDays   int
	ActivityLookbackDays int
	PlanningLookbackDays int

	// StageReadyPercent is the completion percentage at which transition
	// preparation advice is emitted.
	StageReadyPercent float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TrendWindow:      10,
		TrendMinPoints:   5,
		SlopeThreshold:   0.1,
		FluctuationRatio: 0.20,

		HighCap:   3,
		MediumCap: 5,
		LowCap:    3,

		HeatRiskTempC:   40,
		WindRiskSpeedMS: 20,
		WarmTempC:       32,
		FrostTempC:      2,
		HeavyRainMM:     10,
		RainSkipProb:    70,
		ForecastHours:   24,
		ForecastDays:    5,

		UnknownAlertSeverity: SeverityLow,

		WateringGapHours:     48,
		FertilizingGapDays:   14,
		ActivityLookbackDays: 7,
		PlanningLookbackDays: 120,

		StageReadyPercent: 80,
	}
}
