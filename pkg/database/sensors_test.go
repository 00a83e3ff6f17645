package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

func TestSensorCRUD(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{Name: "Sensor bed", GardenType: models.GardenTypeOutdoor, Experience: models.ExperienceIntermediate}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	sensor := &models.Sensor{
		PlotID:     plot.ID,
		SensorType: models.SensorTypeTemperature,
		Name:       "Bed thermometer",
		Model:      "GL-100",
		Enabled:    true,
	}
	if err := dm.CreateSensor(ctx, sensor); err != nil {
		t.Fatalf("Failed to create sensor: %v", err)
	}
	if sensor.ID == uuid.Nil {
		t.Error("Expected sensor ID to be set")
	}

	retrieved, err := dm.GetSensor(ctx, sensor.ID)
	if err != nil {
		t.Fatalf("Failed to get sensor: %v", err)
	}
	if retrieved.Name != "Bed thermometer" || retrieved.Model != "GL-100" {
		t.Errorf("Expected name/model to round-trip, got %s/%s", retrieved.Name, retrieved.Model)
	}

	retrieved.Enabled = false
	if err := dm.UpdateSensor(ctx, retrieved); err != nil {
		t.Fatalf("Failed to update sensor: %v", err)
	}

	updated, err := dm.GetSensor(ctx, sensor.ID)
	if err != nil {
		t.Fatalf("Failed to get updated sensor: %v", err)
	}
	if updated.Enabled {
		t.Error("Expected sensor to be disabled after update")
	}

	if err := dm.DeleteSensor(ctx, sensor.ID); err != nil {
		t.Fatalf("Failed to delete sensor: %v", err)
	}
	if _, err := dm.GetSensor(ctx, sensor.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetSensorsFilters(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{Name: "Filter bed", GardenType: models.GardenTypeOutdoor, Experience: models.ExperienceIntermediate}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	enabled := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeTemperature, Enabled: true}
	disabled := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeHumidity, Enabled: false}
	for _, s := range []*models.Sensor{enabled, disabled} {
		if err := dm.CreateSensor(ctx, s); err != nil {
			t.Fatalf("Failed to create sensor: %v", err)
		}
	}

	all, err := dm.GetSensors(ctx, models.SensorQueryParams{PlotID: &plot.ID})
	if err != nil {
		t.Fatalf("Failed to get sensors: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 sensors, got %d", len(all))
	}

	onlyEnabled := true
	filtered, err := dm.GetSensors(ctx, models.SensorQueryParams{PlotID: &plot.ID, Enabled: &onlyEnabled})
	if err != nil {
		t.Fatalf("Failed to get filtered sensors: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != enabled.ID {
		t.Errorf("Expected only the enabled sensor, got %+v", filtered)
	}

	byType, err := dm.GetSensors(ctx, models.SensorQueryParams{PlotID: &plot.ID, SensorType: models.SensorTypeHumidity})
	if err != nil {
		t.Fatalf("Failed to get sensors by type: %v", err)
	}
	if len(byType) != 1 || byType[0].ID != disabled.ID {
		t.Errorf("Expected only the humidity sensor, got %+v", byType)
	}
}

func TestGetSensorsWithLatest(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{Name: "Latest bed", GardenType: models.GardenTypeOutdoor, Experience: models.ExperienceIntermediate}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	withData := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeTemperature, Enabled: true}
	fresh := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeHumidity, Enabled: true}
	for _, s := range []*models.Sensor{withData, fresh} {
		if err := dm.CreateSensor(ctx, s); err != nil {
			t.Fatalf("Failed to create sensor: %v", err)
		}
	}

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		value := 20.0 + float64(i)
		if err := dm.StoreSensorReading(ctx, withData.ID, value, now.Add(-time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("Failed to store reading: %v", err)
		}
	}

	sensors, err := dm.GetSensorsWithLatest(ctx, models.SensorQueryParams{PlotID: &plot.ID})
	if err != nil {
		t.Fatalf("Failed to get sensors with latest readings: %v", err)
	}
	if len(sensors) != 2 {
		t.Fatalf("Expected 2 sensors, got %d", len(sensors))
	}

	byID := make(map[uuid.UUID]models.SensorWithLatestReading)
	for _, swr := range sensors {
		byID[swr.Sensor.ID] = swr
	}

	got, ok := byID[withData.ID]
	if !ok || got.LatestReading == nil {
		t.Fatal("Expected a latest reading for the sensor with data")
	}
	if got.LatestReading.Value != 20.0 {
		t.Errorf("Expected newest reading 20.0, got %v", got.LatestReading.Value)
	}

	if byID[fresh.ID].LatestReading != nil {
		t.Error("Expected no latest reading for a sensor without data")
	}
}
