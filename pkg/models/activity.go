package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityType is the closed set of care activities.
type ActivityType string

const (
	ActivityWatering    ActivityType = "WATERING"
	ActivityFertilizing ActivityType = "FERTILIZING"
	ActivityPruning     ActivityType = "PRUNING"
	ActivityPestControl ActivityType = "PEST_CONTROL"
	ActivityWeeding     ActivityType = "WEEDING"
	ActivityHarvest     ActivityType = "HARVEST"
	ActivityObservation ActivityType = "OBSERVATION"
)

var activityTypes = map[ActivityType]bool{
	ActivityWatering:    true,
	ActivityFertilizing: true,
	ActivityPruning:     true,
	ActivityPestControl: true,
	ActivityWeeding:     true,
	ActivityHarvest:     true,
	ActivityObservation: true,
}

// ParseActivityType validates a raw string against the closed set.
func ParseActivityType(s string) (ActivityType, error) {
	at := ActivityType(s)
	if !activityTypes[at] {
		return "", fmt.Errorf("unknown activity type: %s", s)
	}
	return at, nil
}

// Activity is one logged care action performed on a plot.
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	PlotID      uuid.UUID    `json:"plot_id"`
	Type        ActivityType `json:"type"`
	Note        string       `json:"note,omitempty"`
	PerformedAt time.Time    `json:"performed_at"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ActivityQueryParams holds query parameters for activity history queries.
type ActivityQueryParams struct {
	PlotID *uuid.UUID
	Type   ActivityType
	Since  time.Time
	Limit  int
}

// Validate checks if the query parameters are valid
func (p *ActivityQueryParams) Validate() error {
	if p.Type != "" && !activityTypes[p.Type] {
		return fmt.Errorf("invalid activity type: %s", p.Type)
	}
	if p.Limit < 1 || p.Limit > 1000 {
		return fmt.Errorf("limit must be between 1 and 1000")
	}
	return nil
}
