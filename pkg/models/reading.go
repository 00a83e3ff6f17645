package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SensorReading represents a single measurement from a sensor
type SensorReading struct {
	ID       uuid.UUID `json:"id"`
	SensorID uuid.UUID `json:"sensor_id"`
	Value    float64   `json:"value"`
	DateUTC  time.Time `json:"date_utc"`
}

// SensorSeries is an ordered window of readings for one sensor type,
// newest first. It is derived for analysis and never persisted.
type SensorSeries struct {
	SensorType SensorType      `json:"sensor_type"`
	Readings   []SensorReading `json:"readings"`
}

// Latest returns the most recent reading in the series.
func (s SensorSeries) Latest() (SensorReading, bool) {
	if len(s.Readings) == 0 {
		return SensorReading{}, false
	}
	return s.Readings[0], true
}

// Values returns the raw values in series order (newest first).
func (s SensorSeries) Values() []float64 {
	values := make([]float64, len(s.Readings))
	for i, r := range s.Readings {
		values[i] = r.Value
	}
	return values
}

// ReadingQueryParams holds all query parameters for reading queries
type ReadingQueryParams struct {
	PlotID     *uuid.UUID
	SensorIDs  []uuid.UUID
	SensorType SensorType
	StartTime  string
	EndTime    string
	Limit      int
	Page       int
	Order      string
	Latest     bool
}

// Validate checks if the query parameters are valid
func (p *ReadingQueryParams) Validate() error {
	if p.SensorType != "" && !p.SensorType.Valid() {
		return fmt.Errorf("invalid sensor_type: %s", p.SensorType)
	}

	if p.Limit < 1 || p.Limit > 10000 {
		return fmt.Errorf("limit must be between 1 and 10000")
	}

	if p.Page < 1 {
		return fmt.Errorf("page must be greater than 0")
	}

	if p.Order != "asc" && p.Order != "desc" {
		return fmt.Errorf("invalid order: %s (valid: asc, desc)", p.Order)
	}

	return nil
}

type ReadingsResponse struct {
	Data       []SensorReading `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Limit      int             `json:"limit"`
	HasMore    bool            `json:"has_more"`
}
