package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

func careContext(activities []models.Activity) *Context {
	plantedAt := fixedNow.AddDate(0, 0, -20)
	return &Context{
		Plot: models.Plot{PlantedAt: &plantedAt},
		Stage: models.StageProgress{
			Current: models.GrowthStage{Name: "vegetative", DurationDays: 30},
		},
		Activities:       activities,
		HistoryAvailable: true,
		Now:              fixedNow,
	}
}

func TestRuleDailyCareWateringGap(t *testing.T) {
	e := New(nil, DefaultConfig())

	tests := []struct {
		name       string
		lastWater  time.Duration
		wantAction string
	}{
		{"recent watering stays quiet", -6 * time.Hour, ""},
		{"stale watering nags", -72 * time.Hour, "Water the plot today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := careContext([]models.Activity{
				{Type: models.ActivityWatering, PerformedAt: fixedNow.Add(tt.lastWater)},
			})

			candidates := e.ruleDailyCare(ac, nil)

			var action string
			for _, c := range candidates {
				if c.Category == CategoryWatering {
					action = c.Action
				}
			}
			if action != tt.wantAction {
				t.Errorf("Expected watering action %q, got %q", tt.wantAction, action)
			}
		})
	}
}

func TestRuleDailyCareNoRecordedWatering(t *testing.T) {
	e := New(nil, DefaultConfig())
	ac := careContext([]models.Activity{
		{Type: models.ActivityPruning, PerformedAt: fixedNow.Add(-2 * time.Hour)},
	})

	candidates := e.ruleDailyCare(ac, nil)

	found := false
	for _, c := range candidates {
		if c.Action == "Log your first watering" {
			found = true
			if c.Priority != PriorityMedium {
				t.Errorf("Expected medium priority, got %s", c.Priority)
			}
		}
	}
	if !found {
		t.Errorf("Expected first-watering advice, got %+v", candidates)
	}
}

func TestRuleDailyCareInspection(t *testing.T) {
	e := New(nil, DefaultConfig())
	// Watering exists but is older than the inspection lookback.
	ac := careContext([]models.Activity{
		{Type: models.ActivityWatering, PerformedAt: fixedNow.AddDate(0, 0, -10)},
	})

	candidates := e.ruleDailyCare(ac, nil)

	found := false
	for _, c := range candidates {
		if c.Action == "Inspect the plot" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected inspection advice for an untouched plot, got %+v", candidates)
	}
}

func TestRuleNutrition(t *testing.T) {
	e := New(nil, DefaultConfig())

	tests := []struct {
		name     string
		daysAgo  int
		wantItem bool
	}{
		{"fed recently", 3, false},
		{"interval exceeded", 15, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := careContext([]models.Activity{
				{Type: models.ActivityFertilizing, PerformedAt: fixedNow.AddDate(0, 0, -tt.daysAgo)},
			})

			candidates := e.ruleNutrition(ac, nil)
			if got := len(candidates) > 0; got != tt.wantItem {
				t.Errorf("Expected item=%t, got %+v", tt.wantItem, candidates)
			}
			if tt.wantItem && !strings.HasPrefix(candidates[0].Action, "Fertilize for the vegetative stage") {
				t.Errorf("Expected stage-named action, got %q", candidates[0].Action)
			}
		})
	}
}

func TestRuleNutritionStageCadenceOverride(t *testing.T) {
	e := New(nil, DefaultConfig())
	ac := careContext([]models.Activity{
		{Type: models.ActivityFertilizing, PerformedAt: fixedNow.AddDate(0, 0, -8)},
	})
	// A hungrier stage cadence makes 8 days overdue.
	ac.Stage.Current.FertilizeEveryDays = 7

	candidates := e.ruleNutrition(ac, nil)
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate with a 7-day cadence, got %d", len(candidates))
	}
	if !strings.Contains(candidates[0].Reason, "7 days") {
		t.Errorf("Expected stage cadence in the reason, got %q", candidates[0].Reason)
	}
}

func TestRuleNutritionYoungPlanting(t *testing.T) {
	e := New(nil, DefaultConfig())
	ac := careContext(nil)
	plantedAt := fixedNow.AddDate(0, 0, -5)
	ac.Plot.PlantedAt = &plantedAt

	// Planted five days ago with no feeding on record: too early to nag.
	if candidates := e.ruleNutrition(ac, nil); len(candidates) != 0 {
		t.Errorf("Expected no nutrition advice for a young planting, got %+v", candidates)
	}
}

func TestRuleSchedules(t *testing.T) {
	e := New(nil, DefaultConfig())

	tests := []struct {
		name     string
		schedule models.Schedule
		tasks    []models.Task
		wantItem bool
	}{
		{
			name:     "due schedule without a task",
			schedule: models.Schedule{Type: models.ActivityWatering, IntervalDays: 3, NextRunAt: fixedNow.Add(-time.Hour), Enabled: true},
			wantItem: true,
		},
		{
			name:     "not yet due",
			schedule: models.Schedule{Type: models.ActivityWatering, IntervalDays: 3, NextRunAt: fixedNow.Add(time.Hour), Enabled: true},
			wantItem: false,
		},
		{
			name:     "disabled schedule",
			schedule: models.Schedule{Type: models.ActivityWatering, IntervalDays: 3, NextRunAt: fixedNow.Add(-time.Hour), Enabled: false},
			wantItem: false,
		},
		{
			name:     "open task already covers it",
			schedule: models.Schedule{Type: models.ActivityWatering, IntervalDays: 3, NextRunAt: fixedNow.Add(-time.Hour), Enabled: true},
			tasks: []models.Task{
				{Type: models.ActivityWatering, Title: "Water beds", DueDate: fixedNow},
			},
			wantItem: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac := &Context{
				Schedules: []models.Schedule{tt.schedule},
				Tasks:     tt.tasks,
				Now:       fixedNow,
			}

			candidates := e.ruleSchedules(ac, nil)
			if got := len(candidates) > 0; got != tt.wantItem {
				t.Errorf("Expected item=%t, got %+v", tt.wantItem, candidates)
			}
		})
	}
}

func TestRuleSeasonalIndoorSkipped(t *testing.T) {
	e := New(nil, DefaultConfig())

	ac := &Context{
		Plot: models.Plot{GardenType: models.GardenTypeIndoor},
		Now:  fixedNow,
	}
	if candidates := e.ruleSeasonal(ac, nil); len(candidates) != 0 {
		t.Errorf("Expected no seasonal advice for indoor plots, got %+v", candidates)
	}

	// Greenhouse plots follow the same monthly calendar as outdoor ones.
	for _, gt := range []models.GardenType{models.GardenTypeOutdoor, models.GardenTypeGreenhouse} {
		ac.Plot.GardenType = gt
		candidates := e.ruleSeasonal(ac, nil)
		if len(candidates) != 1 {
			t.Fatalf("Expected 1 seasonal item mid-month for %s, got %d", gt, len(candidates))
		}
		if candidates[0].Action != "Seasonal focus for April" {
			t.Errorf("Expected April focus for %s, got %q", gt, candidates[0].Action)
		}
	}
}

func TestRuleSeasonalMonthAheadPrep(t *testing.T) {
	e := New(nil, DefaultConfig())
	ac := &Context{
		Plot: models.Plot{GardenType: models.GardenTypeOutdoor},
		Now:  time.Date(2026, time.April, 25, 8, 0, 0, 0, time.UTC),
	}

	candidates := e.ruleSeasonal(ac, nil)
	if len(candidates) != 2 {
		t.Fatalf("Expected focus plus preparation late in the month, got %d", len(candidates))
	}
	if candidates[1].Action != "Prepare for May" {
		t.Errorf("Expected May preparation, got %q", candidates[1].Action)
	}
}

func TestRuleSeasonalDecemberWrapsToJanuary(t *testing.T) {
	e := New(nil, DefaultConfig())
	ac := &Context{
		Plot: models.Plot{GardenType: models.GardenTypeOutdoor},
		Now:  time.Date(2026, time.December, 28, 8, 0, 0, 0, time.UTC),
	}

	candidates := e.ruleSeasonal(ac, nil)
	if len(candidates) != 2 || candidates[1].Action != "Prepare for January" {
		t.Errorf("Expected December to prepare for January, got %+v", candidates)
	}
}
