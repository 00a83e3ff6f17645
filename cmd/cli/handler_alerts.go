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

// AlertRequest is the JSON body for raising an alert
type AlertRequest struct {
	Severity string `json:"severity"`
	Source   string `json:"source"`
	Message  string `json:"message"`
}

// getAlertsHandler returns the active alerts of a plot, newest first
func (rm *RouteManager) getAlertsHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	alerts, err := rm.dbManager.ActiveAlerts(r.Context(), plotID)
	if err != nil {
		log.Printf("❌ Failed to query alerts: %v", err)
		http.Error(w, "Failed to query alerts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alerts)
}

// createAlertHandler raises an alert against a plot
func (rm *RouteManager) createAlertHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	var req AlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	if req.Severity == "" {
		req.Severity = "low"
	}

	alert := &models.Alert{
		PlotID:   plotID,
		Severity: req.Severity,
		Source:   req.Source,
		Message:  req.Message,
	}

	if err := rm.dbManager.CreateAlert(r.Context(), alert); err != nil {
		log.Printf("❌ Failed to create alert: %v", err)
		http.Error(w, "Failed to create alert", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(alert)
}

// acknowledgeAlertHandler marks an alert as handled
func (rm *RouteManager) acknowledgeAlertHandler(w http.ResponseWriter, r *http.Request) {
	alertID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid alert_id format", http.StatusBadRequest)
		return
	}

	alert, err := rm.dbManager.AcknowledgeAlert(r.Context(), alertID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Active alert not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to acknowledge alert: %v", err)
		http.Error(w, "Failed to acknowledge alert", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alert)
}
