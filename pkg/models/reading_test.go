package models

import (
	"testing"
	"time"
)

func TestReadingQueryParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  ReadingQueryParams
		wantErr bool
	}{
		{
			name:   "valid defaults",
			params: ReadingQueryParams{Limit: 100, Page: 1, Order: "desc"},
		},
		{
			name:   "valid with sensor type",
			params: ReadingQueryParams{SensorType: SensorTypeTemperature, Limit: 10, Page: 2, Order: "asc"},
		},
		{
			name:    "unknown sensor type",
			params:  ReadingQueryParams{SensorType: "Wind", Limit: 100, Page: 1, Order: "desc"},
			wantErr: true,
		},
		{
			name:    "limit too small",
			params:  ReadingQueryParams{Limit: 0, Page: 1, Order: "desc"},
			wantErr: true,
		},
		{
			name:    "limit too large",
			params:  ReadingQueryParams{Limit: 10001, Page: 1, Order: "desc"},
			wantErr: true,
		},
		{
			name:    "zero page",
			params:  ReadingQueryParams{Limit: 100, Page: 0, Order: "desc"},
			wantErr: true,
		},
		{
			name:    "bad order",
			params:  ReadingQueryParams{Limit: 100, Page: 1, Order: "newest"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestActivityQueryParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  ActivityQueryParams
		wantErr bool
	}{
		{name: "valid", params: ActivityQueryParams{Type: ActivityWatering, Limit: 100}},
		{name: "no type filter", params: ActivityQueryParams{Limit: 50}},
		{name: "unknown type", params: ActivityQueryParams{Type: "MOWING", Limit: 100}, wantErr: true},
		{name: "zero limit", params: ActivityQueryParams{Limit: 0}, wantErr: true},
		{name: "limit too large", params: ActivityQueryParams{Limit: 1001}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestSensorSeries(t *testing.T) {
	empty := SensorSeries{SensorType: SensorTypeTemperature}
	if _, ok := empty.Latest(); ok {
		t.Error("Expected no latest reading for an empty series")
	}
	if values := empty.Values(); len(values) != 0 {
		t.Errorf("Expected no values, got %v", values)
	}

	base := time.Date(2026, time.April, 15, 8, 0, 0, 0, time.UTC)
	series := SensorSeries{
		SensorType: SensorTypeTemperature,
		Readings: []SensorReading{
			{Value: 22.5, DateUTC: base},
			{Value: 21.0, DateUTC: base.Add(-time.Hour)},
			{Value: 20.5, DateUTC: base.Add(-2 * time.Hour)},
		},
	}

	latest, ok := series.Latest()
	if !ok || latest.Value != 22.5 {
		t.Errorf("Expected latest value 22.5, got %+v", latest)
	}

	values := series.Values()
	want := []float64{22.5, 21.0, 20.5}
	if len(values) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(values))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("Values()[%d] = %.1f, want %.1f", i, values[i], want[i])
		}
	}
}

func TestParseSensorType(t *testing.T) {
	if st, err := ParseSensorType("SoilMoisture"); err != nil || st != SensorTypeSoilMoisture {
		t.Errorf("Expected SoilMoisture to parse, got %v/%v", st, err)
	}
	if _, err := ParseSensorType("Rainfall"); err == nil {
		t.Error("Expected unknown sensor type to fail")
	}
}

func TestParseActivityType(t *testing.T) {
	if at, err := ParseActivityType("WATERING"); err != nil || at != ActivityWatering {
		t.Errorf("Expected WATERING to parse, got %v/%v", at, err)
	}
	if _, err := ParseActivityType("watering"); err == nil {
		t.Error("Expected lowercase activity type to fail")
	}
}
