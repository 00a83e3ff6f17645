package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

func TestCompleteTask_LogsActivity(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{Name: "Task bed", GardenType: models.GardenTypeOutdoor, Experience: models.ExperienceIntermediate}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	task := &models.Task{
		PlotID:  plot.ID,
		Type:    models.ActivityWatering,
		Title:   "Water the tomatoes",
		DueDate: time.Now().UTC().Add(-24 * time.Hour),
	}
	if err := dm.CreateTask(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	open, err := dm.OpenTasks(ctx, plot.ID)
	if err != nil {
		t.Fatalf("Failed to list open tasks: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("Expected 1 open task, got %d", len(open))
	}
	if !open[0].Overdue(time.Now().UTC()) {
		t.Error("Expected task to be overdue")
	}

	completed, err := dm.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to complete task: %v", err)
	}
	if completed.CompletedAt == nil {
		t.Fatal("Expected CompletedAt to be set")
	}

	// Completing again should report not found
	if _, err := dm.CompleteTask(ctx, task.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double complete, got %v", err)
	}

	activities, err := dm.RecentActivities(ctx, plot.ID, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Failed to list activities: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("Expected completion to log 1 activity, got %d", len(activities))
	}
	if activities[0].Type != models.ActivityWatering {
		t.Errorf("Expected WATERING activity, got %s", activities[0].Type)
	}
}

func TestAdvanceSchedule(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{Name: "Schedule bed", GardenType: models.GardenTypeGreenhouse, Experience: models.ExperienceExpert}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	schedule := &models.Schedule{
		PlotID:       plot.ID,
		Type:         models.ActivityFertilizing,
		IntervalDays: 14,
		NextRunAt:    time.Now().UTC().Add(-time.Hour),
		Enabled:      true,
	}
	if err := dm.CreateSchedule(ctx, schedule); err != nil {
		t.Fatalf("Failed to create schedule: %v", err)
	}

	if err := dm.AdvanceSchedule(ctx, schedule.ID); err != nil {
		t.Fatalf("Failed to advance schedule: %v", err)
	}

	schedules, err := dm.Schedules(ctx, plot.ID)
	if err != nil {
		t.Fatalf("Failed to list schedules: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("Expected 1 schedule, got %d", len(schedules))
	}

	advanced := schedules[0]
	if advanced.LastRunAt == nil {
		t.Fatal("Expected LastRunAt to be set")
	}
	if !advanced.NextRunAt.After(time.Now().UTC().Add(13 * 24 * time.Hour)) {
		t.Errorf("Expected NextRunAt about 14 days out, got %v", advanced.NextRunAt)
	}
}
