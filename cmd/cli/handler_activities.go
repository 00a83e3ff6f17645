package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ActivityRequest is the JSON body for logging a care action
type ActivityRequest struct {
	Type        string     `json:"type"`
	Note        string     `json:"note"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
}

// getActivitiesHandler returns the care history of a plot, newest first
// Query params:
//   - type: filter by activity type (WATERING, FERTILIZING, ...)
//   - since: only activities performed after this RFC3339 time
//   - limit: max number of results (default: 100, max: 1000)
func (rm *RouteManager) getActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	params := models.ActivityQueryParams{
		PlotID: &plotID,
		Type:   models.ActivityType(r.URL.Query().Get("type")),
		Limit:  100,
	}

	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			http.Error(w, "Invalid since format, expected RFC3339", http.StatusBadRequest)
			return
		}
		params.Since = since
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 1000 {
			params.Limit = l
		}
	}

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	activities, err := rm.dbManager.GetActivities(r.Context(), params)
	if err != nil {
		log.Printf("❌ Failed to query activities: %v", err)
		http.Error(w, "Failed to query activities", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}

// createActivityHandler logs a care action for a plot
func (rm *RouteManager) createActivityHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	activityType, err := models.ParseActivityType(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	performedAt := time.Now().UTC()
	if req.PerformedAt != nil {
		performedAt = req.PerformedAt.UTC()
	}

	activity := &models.Activity{
		PlotID:      plotID,
		Type:        activityType,
		Note:        req.Note,
		PerformedAt: performedAt,
	}

	if err := rm.dbManager.CreateActivity(r.Context(), activity); err != nil {
		log.Printf("❌ Failed to create activity: %v", err)
		http.Error(w, "Failed to create activity", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(activity)
}
