package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

func TestCreateAndGetPlot(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plant := testPlant(t, dm)
	plantedAt := time.Now().UTC().AddDate(0, 0, -10)

	plot := &models.Plot{
		Name:       "Tomato bed",
		GardenType: models.GardenTypeOutdoor,
		Latitude:   48.2082,
		Longitude:  16.3738,
		PlantID:    &plant.ID,
		PlantedAt:  &plantedAt,
		Experience: models.ExperienceNovice,
	}

	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	if plot.ID == uuid.Nil {
		t.Error("Expected plot ID to be set")
	}

	retrieved, err := dm.GetPlot(ctx, plot.ID)
	if err != nil {
		t.Fatalf("Failed to get plot: %v", err)
	}

	if retrieved.Name != plot.Name {
		t.Errorf("Expected Name=%s, got %s", plot.Name, retrieved.Name)
	}
	if retrieved.GardenType != models.GardenTypeOutdoor {
		t.Errorf("Expected GardenType=outdoor, got %s", retrieved.GardenType)
	}
	if retrieved.PlantID == nil || *retrieved.PlantID != plant.ID {
		t.Errorf("Expected PlantID=%s, got %v", plant.ID, retrieved.PlantID)
	}
	if retrieved.Experience != models.ExperienceNovice {
		t.Errorf("Expected Experience=novice, got %s", retrieved.Experience)
	}
}

func TestGetPlot_NotFound(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	_, err := dm.GetPlot(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("Expected error for missing plot")
	}
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePlot(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{
		Name:       "Herb planter",
		GardenType: models.GardenTypeBalcony,
		Experience: models.ExperienceIntermediate,
	}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	plot.Name = "Herb planter south"
	plot.GardenType = models.GardenTypeIndoor
	if err := dm.UpdatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to update plot: %v", err)
	}

	retrieved, err := dm.GetPlot(ctx, plot.ID)
	if err != nil {
		t.Fatalf("Failed to get plot: %v", err)
	}

	if retrieved.Name != "Herb planter south" {
		t.Errorf("Expected updated name, got %s", retrieved.Name)
	}
	if retrieved.GardenType != models.GardenTypeIndoor {
		t.Errorf("Expected GardenType=indoor, got %s", retrieved.GardenType)
	}
}

func TestDeletePlot_Cascades(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{
		Name:       "Temporary bed",
		GardenType: models.GardenTypeOutdoor,
		Experience: models.ExperienceExpert,
	}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	sensor := &models.Sensor{
		PlotID:     plot.ID,
		SensorType: models.SensorTypeTemperature,
		Name:       "bed-temp",
		Enabled:    true,
	}
	if err := dm.CreateSensor(ctx, sensor); err != nil {
		t.Fatalf("Failed to create sensor: %v", err)
	}

	if err := dm.DeletePlot(ctx, plot.ID); err != nil {
		t.Fatalf("Failed to delete plot: %v", err)
	}

	if _, err := dm.GetSensor(ctx, sensor.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected sensor to be deleted with plot, got %v", err)
	}

	if err := dm.DeletePlot(ctx, plot.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

// testPlant creates a plant with two growth stages for use in plot tests
func testPlant(t *testing.T, dm *DatabaseManager) *models.Plant {
	t.Helper()

	plant := &models.Plant{
		Name:    "Tomato " + uuid.New().String()[:8],
		Species: "Solanum lycopersicum",
		Stages: []models.GrowthStage{
			{
				Name:         "seedling",
				StageOrder:   1,
				DurationDays: 21,
				Ranges: map[models.SensorType]models.OptimalRange{
					models.SensorTypeTemperature: {Min: 20, Max: 26},
				},
			},
			{
				Name:               "vegetative",
				StageOrder:         2,
				DurationDays:       35,
				FertilizeEveryDays: 14,
			},
		},
	}

	if err := dm.CreatePlant(context.Background(), plant); err != nil {
		t.Fatalf("Failed to create plant: %v", err)
	}

	return plant
}
