package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// getSensorsHandler returns sensors for a plot with flexible filtering
// Query params:
//   - sensor_type: filter by sensor type (Temperature, SoilMoisture, etc.)
//   - enabled: filter by enabled status (true/false)
//   - include_latest: attach each sensor's most recent reading (true/false)
func (rm *RouteManager) getSensorsHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	params := parseSensorQueryParams(r)
	params.PlotID = &plotID

	if params.SensorType != "" && !params.SensorType.Valid() {
		http.Error(w, "Invalid sensor_type", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if params.IncludeLatest {
		sensors, err := rm.dbManager.GetSensorsWithLatest(r.Context(), params)
		if err != nil {
			log.Printf("❌ Failed to query sensors: %v", err)
			http.Error(w, "Failed to query sensors", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(sensors)
		return
	}

	sensors, err := rm.dbManager.GetSensors(r.Context(), params)
	if err != nil {
		log.Printf("❌ Failed to query sensors: %v", err)
		http.Error(w, "Failed to query sensors", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(sensors)
}

// getSensorHandler returns a single sensor by ID
func (rm *RouteManager) getSensorHandler(w http.ResponseWriter, r *http.Request) {
	sensorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid sensor_id format", http.StatusBadRequest)
		return
	}

	sensor, err := rm.dbManager.GetSensor(r.Context(), sensorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Sensor not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to query sensor: %v", err)
		http.Error(w, "Failed to query sensor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sensor)
}

// SensorRequest is the JSON body for sensor create and update
type SensorRequest struct {
	SensorType string `json:"sensor_type"`
	Name       string `json:"name"`
	Model      string `json:"model"`
	Enabled    *bool  `json:"enabled"`
}

// createSensorHandler registers a sensor on a plot
func (rm *RouteManager) createSensorHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	var req SensorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sensorType, err := models.ParseSensorType(req.SensorType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sensor := &models.Sensor{
		PlotID:     plotID,
		SensorType: sensorType,
		Name:       req.Name,
		Model:      req.Model,
		Enabled:    true,
	}
	if req.Enabled != nil {
		sensor.Enabled = *req.Enabled
	}

	if err := rm.dbManager.CreateSensor(r.Context(), sensor); err != nil {
		log.Printf("❌ Failed to create sensor: %v", err)
		http.Error(w, "Failed to create sensor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sensor)
}

// updateSensorHandler updates a sensor's name, model and enabled flag
func (rm *RouteManager) updateSensorHandler(w http.ResponseWriter, r *http.Request) {
	sensorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid sensor_id format", http.StatusBadRequest)
		return
	}

	sensor, err := rm.dbManager.GetSensor(r.Context(), sensorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Sensor not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to query sensor: %v", err)
		http.Error(w, "Failed to query sensor", http.StatusInternalServerError)
		return
	}

	var req SensorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name != "" {
		sensor.Name = req.Name
	}
	if req.Model != "" {
		sensor.Model = req.Model
	}
	if req.Enabled != nil {
		sensor.Enabled = *req.Enabled
	}

	if err := rm.dbManager.UpdateSensor(r.Context(), sensor); err != nil {
		log.Printf("❌ Failed to update sensor: %v", err)
		http.Error(w, "Failed to update sensor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sensor)
}

// deleteSensorHandler removes a sensor and its readings
func (rm *RouteManager) deleteSensorHandler(w http.ResponseWriter, r *http.Request) {
	sensorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid sensor_id format", http.StatusBadRequest)
		return
	}

	if err := rm.dbManager.DeleteSensor(r.Context(), sensorID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Sensor not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to delete sensor: %v", err)
		http.Error(w, "Failed to delete sensor", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseSensorQueryParams extracts and parses query parameters from the request
func parseSensorQueryParams(r *http.Request) models.SensorQueryParams {
	params := models.SensorQueryParams{
		SensorType:    models.SensorType(r.URL.Query().Get("sensor_type")),
		IncludeLatest: r.URL.Query().Get("include_latest") == "true",
	}

	if enabledStr := r.URL.Query().Get("enabled"); enabledStr != "" {
		enabled := enabledStr == "true"
		params.Enabled = &enabled
	}

	return params
}
