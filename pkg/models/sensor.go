package models

import (
	"time"

	"github.com/google/uuid"
)

// Sensor represents a physical sensor installed on a plot
type Sensor struct {
	ID         uuid.UUID  `json:"id"`
	PlotID     uuid.UUID  `json:"plot_id"`
	SensorType SensorType `json:"sensor_type"`
	Name       string     `json:"name,omitempty"`
	Model      string     `json:"model,omitempty"`
	Enabled    bool       `json:"enabled"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// SensorQueryParams holds query parameters for sensor queries
type SensorQueryParams struct {
	PlotID        *uuid.UUID
	SensorType    SensorType
	Enabled       *bool
	IncludeLatest bool
}

// SensorWithLatestReading combines sensor info with its latest reading
type SensorWithLatestReading struct {
	Sensor        Sensor         `json:"sensor"`
	LatestReading *SensorReading `json:"latest_reading,omitempty"`
}
