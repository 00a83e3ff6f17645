package advisor

import (
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// Trend classifies the short-window direction of a sensor's recent history.
type Trend string

const (
	TrendIncreasing  Trend = "increasing"
	TrendDecreasing  Trend = "decreasing"
	TrendStable      Trend = "stable"
	TrendFluctuating Trend = "fluctuating"
)

// Status classifies a sensor's current value against its threshold bands.
type Status string

const (
	StatusOptimal   Status = "optimal"
	StatusAttention Status = "attention"
	StatusWarning   Status = "warning"
	StatusUnstable  Status = "unstable"
	StatusCritical  Status = "critical"
)

// Direction says which side of the optimal range a value sits on.
type Direction string

const (
	DirectionBelow   Direction = "below"
	DirectionAbove   Direction = "above"
	DirectionOptimal Direction = "optimal"
)

// Deviation is the percentage distance of a value from the nearest optimal
// bound, relative to that bound. Always >= 0; optimal implies 0.
type Deviation struct {
	Direction  Direction `json:"direction"`
	Percentage float64   `json:"percentage"`
}

// Severity is the three-tier scale used for risk items.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// RiskSource says where a risk item came from.
type RiskSource string

const (
	RiskSourceSensor  RiskSource = "sensor"
	RiskSourceWeather RiskSource = "weather"
	RiskSourceAlert   RiskSource = "alert"
)

// RiskItem is a single normalized signal feeding prioritization.
type RiskItem struct {
	Type        RiskSource `json:"type"`
	Severity    Severity   `json:"severity"`
	Source      string     `json:"source"`
	Description string     `json:"description"`
}

// RiskSummary aggregates risk counts for candidate weighting.
type RiskSummary struct {
	TotalRisks        int `json:"total_risks"`
	HighSeverityCount int `json:"high_severity_count"`
}

// Priority is the three-tier candidate ranking scale.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// maxPriority returns the higher of two priorities.
func maxPriority(a, b Priority) Priority {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// Category is the closed set of advice categories. The numeric importance
// used for ranking lives in the prioritizer's category table.
type Category string

const (
	CategoryEmergency      Category = "EMERGENCY"
	CategoryWatering       Category = "WATERING"
	CategoryTemperature    Category = "TEMPERATURE"
	CategoryHumidity       Category = "HUMIDITY"
	CategoryLight          Category = "LIGHT"
	CategorySoilPH         Category = "SOIL_PH"
	CategoryFertilizing    Category = "FERTILIZING"
	CategoryGrowthStage    Category = "GROWTH_STAGE"
	CategoryWeather        Category = "WEATHER_FORECAST"
	CategoryTaskManagement Category = "TASK_MANAGEMENT"
	CategoryMonitoring     Category = "MONITORING"
	CategorySeasonal       Category = "SEASONAL"
	CategoryEducation      Category = "EDUCATION"
)

// categoryForSensor maps a sensor type to the advice category its guidance
// is filed under.
func categoryForSensor(st models.SensorType) Category {
	switch st {
	case models.SensorTypeSoilMoisture:
		return CategoryWatering
	case models.SensorTypeTemperature:
		return CategoryTemperature
	case models.SensorTypeHumidity:
		return CategoryHumidity
	case models.SensorTypeLight:
		return CategoryLight
	case models.SensorTypeSoilPH:
		return CategorySoilPH
	}
	return CategoryMonitoring
}

// TimeOfDay is the coarse bucket used to match advice to the current time.
type TimeOfDay string

const (
	TimeMorning TimeOfDay = "morning"
	TimeNoon    TimeOfDay = "noon"
	TimeEvening TimeOfDay = "evening"
	TimeAny     TimeOfDay = "any"
)

// bucketFor maps a wall-clock hour to its time-of-day bucket.
func bucketFor(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h < 11:
		return TimeMorning
	case h < 17:
		return TimeNoon
	default:
		return TimeEvening
	}
}

// Candidate is one rule-emitted recommendation before merge/rank/cap.
type Candidate struct {
	Action        string    `json:"action"`
	Description   string    `json:"description"`
	Reason        string    `json:"reason"`
	Priority      Priority  `json:"priority"`
	Category      Category  `json:"category"`
	SuggestedTime TimeOfDay `json:"suggested_time"`
	Detail        string    `json:"detail,omitempty"`
}

// Item is a finalized advice entry with its emission-time id.
type Item struct {
	ID int `json:"id"`
	Candidate
}

// Result is the final ordered advisory for a plot.
type Result struct {
	PlotID        uuid.UUID   `json:"plot_id"`
	GeneratedAt   time.Time   `json:"generated_at"`
	EngineVersion string      `json:"engine_version"`
	Items         []Item      `json:"items"`
	Risks         []RiskItem  `json:"risks,omitempty"`
	RiskSummary   RiskSummary `json:"risk_summary"`
}

// SensorAnalysis is the analyzed state of one monitored sensor type.
type SensorAnalysis struct {
	SensorType models.SensorType      `json:"sensor_type"`
	Current    float64                `json:"current"`
	Unit       string                 `json:"unit"`
	Trend      Trend                  `json:"trend"`
	Status     Status                 `json:"status"`
	Range      models.OptimalRange    `json:"range"`
	Deviation  Deviation              `json:"deviation"`
	History    []models.SensorReading `json:"history,omitempty"`
}

// Analysis bundles per-sensor analyses with the aggregated risk view.
type Analysis struct {
	Sensors map[models.SensorType]SensorAnalysis `json:"sensors"`
	Risks   []RiskItem                           `json:"risks"`
	Summary RiskSummary                          `json:"summary"`
}
