package models

import (
	"time"

	"github.com/google/uuid"
)

// Plant represents a cultivated species with its growth-stage metadata.
type Plant struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Species   string        `json:"species,omitempty"`
	Stages    []GrowthStage `json:"stages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// GrowthStage is a named phase of a plant's lifecycle with its own optimal
// environmental ranges and expected duration.
type GrowthStage struct {
	ID                 uuid.UUID                   `json:"id"`
	PlantID            uuid.UUID                   `json:"plant_id"`
	Name               string                      `json:"name"`
	StageOrder         int                         `json:"stage_order"`
	DurationDays       int                         `json:"duration_days"`
	Ranges             map[SensorType]OptimalRange `json:"ranges"`
	FertilizeEveryDays int                         `json:"fertilize_every_days,omitempty"`
}

// RangeFor returns the stage-specific optimal range for a sensor type,
// falling back to the generic default when the stage has none configured.
func (gs GrowthStage) RangeFor(st SensorType) OptimalRange {
	if r, ok := gs.Ranges[st]; ok {
		return r
	}
	return DefaultOptimalRange(st)
}

// StageProgress describes how far a plot is into its current growth stage.
type StageProgress struct {
	Current       GrowthStage  `json:"current"`
	Next          *GrowthStage `json:"next,omitempty"`
	DaysInStage   int          `json:"days_in_stage"`
	PercentDone   float64      `json:"percent_done"`
	DaysRemaining int          `json:"days_remaining"`
}

// ProgressAt computes stage progress for a plant given when the plot was
// planted. Stages are walked in order, consuming their expected durations.
// Returns false when the plant has no stages configured.
func (p Plant) ProgressAt(plantedAt, now time.Time) (StageProgress, bool) {
	if len(p.Stages) == 0 {
		return StageProgress{}, false
	}

	daysSincePlanting := int(now.Sub(plantedAt).Hours() / 24)
	if daysSincePlanting < 0 {
		daysSincePlanting = 0
	}

	elapsed := 0
	for i, stage := range p.Stages {
		if stage.DurationDays <= 0 {
			continue
		}
		if daysSincePlanting < elapsed+stage.DurationDays || i == len(p.Stages)-1 {
			progress := StageProgress{
				Current:     stage,
				DaysInStage: daysSincePlanting - elapsed,
			}
			if progress.DaysInStage > stage.DurationDays {
				progress.DaysInStage = stage.DurationDays
			}
			progress.PercentDone = float64(progress.DaysInStage) / float64(stage.DurationDays) * 100
			progress.DaysRemaining = stage.DurationDays - progress.DaysInStage
			if i+1 < len(p.Stages) {
				next := p.Stages[i+1]
				progress.Next = &next
			}
			return progress, true
		}
		elapsed += stage.DurationDays
	}

	return StageProgress{}, false
}
