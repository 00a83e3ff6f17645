package advisor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{0, TimeMorning},
		{8, TimeMorning},
		{10, TimeMorning},
		{11, TimeNoon},
		{16, TimeNoon},
		{17, TimeEvening},
		{23, TimeEvening},
	}

	for _, tt := range tests {
		at := time.Date(2026, time.April, 15, tt.hour, 0, 0, 0, time.UTC)
		if got := bucketFor(at); got != tt.want {
			t.Errorf("bucketFor(hour %d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestMerge(t *testing.T) {
	candidates := []Candidate{
		{Action: "Water the plot today", Reason: "care gap", Priority: PriorityMedium, Category: CategoryWatering},
		{Action: "Water the plot before noon", Reason: "soil drying", Priority: PriorityHigh, Category: CategoryWatering},
		{Action: "Water the seedlings", Reason: "tray is light", Priority: PriorityLow, Category: CategoryWatering},
		{Action: "Inspect the plot", Reason: "routine", Priority: PriorityLow, Category: CategoryMonitoring},
	}

	merged := merge(candidates)

	// "Water the ..." shares category and leading words; "Water the
	// seedlings" does too, so three watering candidates collapse into one.
	if len(merged) != 2 {
		t.Fatalf("Expected 2 merged candidates, got %d", len(merged))
	}

	watering := merged[0]
	if watering.Action != "Water the plot today" {
		t.Errorf("Expected first candidate's action to survive, got %q", watering.Action)
	}
	if watering.Priority != PriorityHigh {
		t.Errorf("Expected merged priority high, got %s", watering.Priority)
	}
	for _, reason := range []string{"care gap", "soil drying", "tray is light"} {
		if !strings.Contains(watering.Reason, reason) {
			t.Errorf("Expected merged reason to contain %q, got %q", reason, watering.Reason)
		}
	}
}

func TestMergeKeepsDistinctCategories(t *testing.T) {
	candidates := []Candidate{
		{Action: "Raise soil pH gradually", Priority: PriorityLow, Category: CategorySoilPH},
		{Action: "Raise humidity around the plants now", Priority: PriorityLow, Category: CategoryHumidity},
	}
	if got := len(merge(candidates)); got != 2 {
		t.Errorf("Expected same leading words in different categories to stay separate, got %d", got)
	}
}

func TestRank(t *testing.T) {
	morning := time.Date(2026, time.April, 15, 8, 0, 0, 0, time.UTC)

	candidates := []Candidate{
		{Action: "seasonal", Priority: PriorityLow, Category: CategorySeasonal, SuggestedTime: TimeAny},
		{Action: "watering", Priority: PriorityMedium, Category: CategoryWatering, SuggestedTime: TimeMorning},
		{Action: "emergency", Priority: PriorityHigh, Category: CategoryEmergency, SuggestedTime: TimeAny},
		{Action: "tasks", Priority: PriorityMedium, Category: CategoryTaskManagement, SuggestedTime: TimeEvening},
		{Action: "stage", Priority: PriorityMedium, Category: CategoryGrowthStage, SuggestedTime: TimeEvening},
	}

	ranked := rank(candidates, morning)

	wantOrder := []string{
		"emergency", // high beats everything
		"watering",  // medium, matches the morning bucket
		"stage",     // medium, higher category importance than tasks
		"tasks",
		"seasonal",
	}
	for i, want := range wantOrder {
		if ranked[i].Action != want {
			t.Errorf("rank[%d] = %q, want %q", i, ranked[i].Action, want)
		}
	}
}

func TestCapTiers(t *testing.T) {
	cfg := DefaultConfig()

	var candidates []Candidate
	for i := 0; i < 10; i++ {
		candidates = append(candidates,
			Candidate{Action: fmt.Sprintf("high %d", i), Priority: PriorityHigh},
			Candidate{Action: fmt.Sprintf("medium %d", i), Priority: PriorityMedium},
			Candidate{Action: fmt.Sprintf("low %d", i), Priority: PriorityLow},
		)
	}

	capped := capTiers(candidates, cfg)

	counts := make(map[Priority]int)
	for _, c := range capped {
		counts[c.Priority]++
	}
	if counts[PriorityHigh] != cfg.HighCap {
		t.Errorf("Expected %d high items, got %d", cfg.HighCap, counts[PriorityHigh])
	}
	if counts[PriorityMedium] != cfg.MediumCap {
		t.Errorf("Expected %d medium items, got %d", cfg.MediumCap, counts[PriorityMedium])
	}
	if counts[PriorityLow] != cfg.LowCap {
		t.Errorf("Expected %d low items, got %d", cfg.LowCap, counts[PriorityLow])
	}

	// Cap keeps the first (best-ranked) items of each tier.
	if capped[0].Action != "high 0" {
		t.Errorf("Expected first high item to survive, got %q", capped[0].Action)
	}
}

func TestFinalizeFallback(t *testing.T) {
	e := New(nil, DefaultConfig())
	plotID := uuid.New()
	now := time.Date(2026, time.April, 15, 8, 0, 0, 0, time.UTC)

	result := e.finalize(plotID, nil, nil, RiskSummary{}, now)

	if len(result.Items) != 1 {
		t.Fatalf("Expected exactly the fallback item, got %d items", len(result.Items))
	}
	item := result.Items[0]
	if item.Action != "Observe the plot daily" {
		t.Errorf("Expected fallback action, got %q", item.Action)
	}
	if item.Priority != PriorityLow || item.Category != CategoryMonitoring {
		t.Errorf("Expected low-priority monitoring fallback, got %s/%s", item.Priority, item.Category)
	}
	if item.ID != 1 {
		t.Errorf("Expected item ID 1, got %d", item.ID)
	}
	if result.PlotID != plotID {
		t.Errorf("Expected PlotID %s, got %s", plotID, result.PlotID)
	}
	if result.EngineVersion != EngineVersion {
		t.Errorf("Expected engine version %s, got %s", EngineVersion, result.EngineVersion)
	}
	if !result.GeneratedAt.Equal(now) {
		t.Errorf("Expected GeneratedAt %s, got %s", now, result.GeneratedAt)
	}
}

func TestFinalizeAssignsSequentialIDs(t *testing.T) {
	e := New(nil, DefaultConfig())
	now := time.Date(2026, time.April, 15, 8, 0, 0, 0, time.UTC)

	candidates := []Candidate{
		{Action: "first", Priority: PriorityLow, Category: CategorySeasonal},
		{Action: "second", Priority: PriorityHigh, Category: CategoryEmergency},
	}

	result := e.finalize(uuid.New(), candidates, nil, RiskSummary{}, now)

	for i, item := range result.Items {
		if item.ID != i+1 {
			t.Errorf("Expected ID %d at position %d, got %d", i+1, i, item.ID)
		}
	}
	if result.Items[0].Action != "second" {
		t.Errorf("Expected high-priority item first, got %q", result.Items[0].Action)
	}
}
