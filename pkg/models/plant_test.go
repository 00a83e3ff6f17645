package models

import (
	"testing"
	"time"
)

func stagedPlant() Plant {
	return Plant{
		Name: "Tomato",
		Stages: []GrowthStage{
			{Name: "seedling", StageOrder: 1, DurationDays: 14},
			{Name: "vegetative", StageOrder: 2, DurationDays: 30},
			{Name: "flowering", StageOrder: 3, DurationDays: 30},
		},
	}
}

func TestProgressAt(t *testing.T) {
	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)
	plant := stagedPlant()

	tests := []struct {
		name          string
		daysAgo       int
		wantStage     string
		wantNext      string
		wantDays      int
		wantRemaining int
	}{
		{"just planted", 0, "seedling", "vegetative", 0, 14},
		{"mid seedling", 7, "seedling", "vegetative", 7, 7},
		{"first vegetative day", 14, "vegetative", "flowering", 0, 30},
		{"deep in vegetative", 30, "vegetative", "flowering", 16, 14},
		{"final stage", 50, "flowering", "", 6, 24},
		{"past the lifecycle", 200, "flowering", "", 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plantedAt := now.AddDate(0, 0, -tt.daysAgo)
			progress, ok := plant.ProgressAt(plantedAt, now)
			if !ok {
				t.Fatal("Expected progress for a staged plant")
			}
			if progress.Current.Name != tt.wantStage {
				t.Errorf("Expected stage %s, got %s", tt.wantStage, progress.Current.Name)
			}
			if tt.wantNext == "" {
				if progress.Next != nil {
					t.Errorf("Expected no next stage, got %s", progress.Next.Name)
				}
			} else if progress.Next == nil || progress.Next.Name != tt.wantNext {
				t.Errorf("Expected next stage %s, got %+v", tt.wantNext, progress.Next)
			}
			if progress.DaysInStage != tt.wantDays {
				t.Errorf("Expected DaysInStage=%d, got %d", tt.wantDays, progress.DaysInStage)
			}
			if progress.DaysRemaining != tt.wantRemaining {
				t.Errorf("Expected DaysRemaining=%d, got %d", tt.wantRemaining, progress.DaysRemaining)
			}
		})
	}
}

func TestProgressAtEdgeCases(t *testing.T) {
	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)

	if _, ok := (Plant{Name: "bare"}).ProgressAt(now, now); ok {
		t.Error("Expected no progress for a plant without stages")
	}

	// A planting date in the future clamps to day zero.
	plant := stagedPlant()
	progress, ok := plant.ProgressAt(now.AddDate(0, 0, 3), now)
	if !ok || progress.Current.Name != "seedling" || progress.DaysInStage != 0 {
		t.Errorf("Expected day zero of seedling for a future planting, got %+v", progress)
	}

	// Zero-duration stages are skipped.
	plant.Stages[0].DurationDays = 0
	progress, ok = plant.ProgressAt(now.AddDate(0, 0, -5), now)
	if !ok || progress.Current.Name != "vegetative" {
		t.Errorf("Expected zero-duration stage to be skipped, got %+v", progress)
	}
}

func TestRangeFor(t *testing.T) {
	stage := GrowthStage{
		Name: "vegetative",
		Ranges: map[SensorType]OptimalRange{
			SensorTypeTemperature: {Min: 18, Max: 26},
		},
	}

	if r := stage.RangeFor(SensorTypeTemperature); r.Min != 18 || r.Max != 26 {
		t.Errorf("Expected configured range [18, 26], got [%.1f, %.1f]", r.Min, r.Max)
	}

	// Unconfigured types fall back to the generic defaults.
	if r := stage.RangeFor(SensorTypeHumidity); r != DefaultOptimalRange(SensorTypeHumidity) {
		t.Errorf("Expected default humidity range, got [%.1f, %.1f]", r.Min, r.Max)
	}
}
