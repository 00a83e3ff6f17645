package database

import (
	"context"
	"testing"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

func TestStoreAndGetReadings(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{Name: "Reading bed", GardenType: models.GardenTypeOutdoor, Experience: models.ExperienceIntermediate}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	sensor := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeSoilMoisture, Enabled: true}
	if err := dm.CreateSensor(ctx, sensor); err != nil {
		t.Fatalf("Failed to create sensor: %v", err)
	}

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		value := 40.0 + float64(i)
		if err := dm.StoreSensorReading(ctx, sensor.ID, value, now.Add(-time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("Failed to store reading: %v", err)
		}
	}

	resp, err := dm.GetReadings(ctx, models.ReadingQueryParams{
		PlotID: &plot.ID,
		Limit:  3,
		Page:   1,
		Order:  "desc",
	})
	if err != nil {
		t.Fatalf("Failed to get readings: %v", err)
	}

	if resp.Total != 5 {
		t.Errorf("Expected total=5, got %d", resp.Total)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("Expected 3 readings on page, got %d", len(resp.Data))
	}
	if !resp.HasMore {
		t.Error("Expected HasMore=true")
	}
	if resp.Data[0].Value != 40.0 {
		t.Errorf("Expected newest reading first (40.0), got %v", resp.Data[0].Value)
	}
}

func TestLatestSeries(t *testing.T) {
	dm := setupTestDatabaseManager(t)
	if dm == nil {
		t.Skip("Skipping test that requires real database connection")
	}
	defer dm.Close()

	ctx := context.Background()

	plot := &models.Plot{Name: "Series bed", GardenType: models.GardenTypeOutdoor, Experience: models.ExperienceIntermediate}
	if err := dm.CreatePlot(ctx, plot); err != nil {
		t.Fatalf("Failed to create plot: %v", err)
	}

	tempSensor := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeTemperature, Enabled: true}
	moistSensor := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeSoilMoisture, Enabled: true}
	disabled := &models.Sensor{PlotID: plot.ID, SensorType: models.SensorTypeLight, Enabled: false}
	for _, s := range []*models.Sensor{tempSensor, moistSensor, disabled} {
		if err := dm.CreateSensor(ctx, s); err != nil {
			t.Fatalf("Failed to create sensor: %v", err)
		}
	}

	now := time.Now().UTC()
	for i := 0; i < 15; i++ {
		ts := now.Add(-time.Duration(i) * time.Hour)
		if err := dm.StoreSensorReading(ctx, tempSensor.ID, 20.0+float64(i), ts); err != nil {
			t.Fatalf("Failed to store temperature reading: %v", err)
		}
		if err := dm.StoreSensorReading(ctx, moistSensor.ID, 50.0, ts); err != nil {
			t.Fatalf("Failed to store moisture reading: %v", err)
		}
	}
	if err := dm.StoreSensorReading(ctx, disabled.ID, 1000, now); err != nil {
		t.Fatalf("Failed to store light reading: %v", err)
	}

	series, err := dm.LatestSeries(ctx, plot.ID, 10)
	if err != nil {
		t.Fatalf("Failed to load series: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("Expected 2 series (disabled sensor excluded), got %d", len(series))
	}
	if _, ok := series[models.SensorTypeLight]; ok {
		t.Error("Expected disabled light sensor to be excluded")
	}

	for sensorType, s := range series {
		if len(s.Readings) != 10 {
			t.Errorf("Expected window of 10 readings for %s, got %d", sensorType, len(s.Readings))
		}
		for i := 1; i < len(s.Readings); i++ {
			if s.Readings[i].DateUTC.After(s.Readings[i-1].DateUTC) {
				t.Errorf("Expected %s readings newest first", sensorType)
				break
			}
		}
	}

	if temp, ok := series[models.SensorTypeTemperature]; !ok || temp.Readings[0].Value != 20.0 {
		t.Errorf("Expected newest temperature 20.0, got %+v", temp)
	}
}

func TestGetReadings_InvalidParamsRejectedByValidate(t *testing.T) {
	params := models.ReadingQueryParams{Limit: 0, Page: 1, Order: "desc"}
	if err := params.Validate(); err == nil {
		t.Error("Expected validation error for limit=0")
	}

	params = models.ReadingQueryParams{Limit: 100, Page: 1, Order: "sideways"}
	if err := params.Validate(); err == nil {
		t.Error("Expected validation error for bad order")
	}

	params = models.ReadingQueryParams{SensorType: "Barometric", Limit: 100, Page: 1, Order: "asc"}
	if err := params.Validate(); err == nil {
		t.Error("Expected validation error for unknown sensor type")
	}
}
