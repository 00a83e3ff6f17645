package models

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceLevel describes how seasoned the gardener tending a plot is.
// It only influences how advice is phrased, never what is recommended.
type ExperienceLevel string

const (
	ExperienceNovice       ExperienceLevel = "novice"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

// GardenType is the closed set of cultivation setups a plot can have.
type GardenType string

const (
	GardenTypeOutdoor    GardenType = "outdoor"
	GardenTypeBalcony    GardenType = "balcony"
	GardenTypeIndoor     GardenType = "indoor"
	GardenTypeGreenhouse GardenType = "greenhouse"
)

// Plot represents a cultivated area with sensors and an optional plant.
type Plot struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	GardenType GardenType      `json:"garden_type"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	PlantID    *uuid.UUID      `json:"plant_id,omitempty"`
	PlantedAt  *time.Time      `json:"planted_at,omitempty"`
	Experience ExperienceLevel `json:"experience"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PlotListItem is the compact representation used by list endpoints.
type PlotListItem struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	GardenType GardenType `json:"garden_type"`
	PlantName  string     `json:"plant_name,omitempty"`
	PlantedAt  *time.Time `json:"planted_at,omitempty"`
}
