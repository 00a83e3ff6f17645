package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gardenmaestro/gardenmaestro/pkg/ingest"
	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// sensorReportHandler handles incoming sensor data from garden gateways.
// The gateway identifies its plot with the `plot` parameter; sensors are
// created on first report and matched by type afterwards.
func (rm *RouteManager) sensorReportHandler(g ingest.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}

		plotID, err := uuid.Parse(r.Form.Get("plot"))
		if err != nil {
			http.Error(w, "Missing or invalid plot parameter", http.StatusBadRequest)
			return
		}

		if _, err := rm.dbManager.GetPlot(r.Context(), plotID); err != nil {
			log.Printf("❌ Unknown plot in gateway report: %v", err)
			http.Error(w, "Unknown plot", http.StatusNotFound)
			return
		}

		templates := g.ParseSensors(r.Form)
		if len(templates) == 0 {
			log.Printf("❌ No known sensor fields in report for plot: %s", plotID)
			http.Error(w, "No known sensor fields in report", http.StatusBadRequest)
			return
		}

		sensors, err := rm.ensureSensors(r, plotID, templates)
		if err != nil {
			log.Printf("❌ Failed to ensure sensors: %v", err)
			http.Error(w, "Failed to ensure sensors", http.StatusInternalServerError)
			return
		}

		readings, err := g.ParseReadings(r.Form, sensors)
		if err != nil {
			log.Printf("❌ Failed to parse sensor data: %v", err)
			http.Error(w, "Failed to parse sensor data", http.StatusBadRequest)
			return
		}

		// Store readings
		for field, reading := range readings {
			sensor := sensors[field]
			if err := rm.dbManager.StoreSensorReading(r.Context(), sensor.ID, reading.Value, reading.DateUTC); err != nil {
				log.Printf("❌ Failed to store reading (%s, %f): %v", sensor.ID, reading.Value, err)
				http.Error(w, "Failed to store readings", http.StatusInternalServerError)
				return
			}
		}

		log.Printf("✓ Pushed %d sensor readings for plot: %s", len(readings), plotID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "success",
			"message": "Sensor data stored successfully",
			"plot_id": plotID.String(),
		})
	}
}

// ensureSensors resolves each payload field to a stored sensor, creating
// missing ones from the gateway's templates
func (rm *RouteManager) ensureSensors(r *http.Request, plotID uuid.UUID, templates map[string]models.Sensor) (map[string]models.Sensor, error) {
	existing, err := rm.dbManager.GetSensors(r.Context(), models.SensorQueryParams{PlotID: &plotID})
	if err != nil {
		return nil, err
	}

	byType := make(map[models.SensorType]models.Sensor, len(existing))
	for _, sensor := range existing {
		if _, ok := byType[sensor.SensorType]; !ok {
			byType[sensor.SensorType] = sensor
		}
	}

	result := make(map[string]models.Sensor, len(templates))
	for field, template := range templates {
		if sensor, ok := byType[template.SensorType]; ok {
			result[field] = sensor
			continue
		}

		sensor := template
		sensor.PlotID = plotID
		if err := rm.dbManager.CreateSensor(r.Context(), &sensor); err != nil {
			return nil, err
		}

		byType[sensor.SensorType] = sensor
		result[field] = sensor
	}

	return result, nil
}
