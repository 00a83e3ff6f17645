package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// getReadingsHandler returns readings with flexible filtering
// Query params:
//   - plot_id: filter by plot UUID
//   - sensor_id: filter by sensor UUID (can be comma-separated list)
//   - sensor_type: filter by sensor type
//   - start: start time (RFC3339)
//   - end: end time (RFC3339)
//   - limit: max number of results (default: 100, max: 10000)
//   - page: pagination page (default: 1)
//   - order: sort order (asc/desc, default: desc)
func (rm *RouteManager) getReadingsHandler(w http.ResponseWriter, r *http.Request) {
	params := parseReadingQueryParams(r)

	// Validate parameters
	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := rm.dbManager.GetReadings(r.Context(), params)
	if err != nil {
		log.Printf("❌ Failed to query readings: %v", err)
		http.Error(w, "Failed to query readings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// parseReadingQueryParams extracts and parses query parameters from the request
func parseReadingQueryParams(r *http.Request) models.ReadingQueryParams {
	params := models.ReadingQueryParams{
		SensorType: models.SensorType(r.URL.Query().Get("sensor_type")),
		StartTime:  r.URL.Query().Get("start"),
		EndTime:    r.URL.Query().Get("end"),
		Limit:      100,    // default
		Page:       1,      // default
		Order:      "desc", // default
		Latest:     r.URL.Query().Get("latest") == "true",
	}

	// Parse plot_id
	if plotIDStr := r.URL.Query().Get("plot_id"); plotIDStr != "" {
		if id, err := uuid.Parse(plotIDStr); err == nil {
			params.PlotID = &id
		}
	}

	// Parse sensor_id (can be comma-separated)
	if sensorIDStr := r.URL.Query().Get("sensor_id"); sensorIDStr != "" {
		for _, idStr := range strings.Split(sensorIDStr, ",") {
			if id, err := uuid.Parse(strings.TrimSpace(idStr)); err == nil {
				params.SensorIDs = append(params.SensorIDs, id)
			}
		}
	}

	// Parse limit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 10000 {
			params.Limit = l
		}
	}

	// Parse page
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 1 {
			params.Page = p
		}
	}

	// Parse order
	if orderStr := r.URL.Query().Get("order"); orderStr == "asc" || orderStr == "desc" {
		params.Order = orderStr
	}

	return params
}
