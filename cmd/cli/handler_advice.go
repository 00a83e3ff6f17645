package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gardenmaestro/gardenmaestro/pkg/advisor"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// getAdviceHandler computes the full prioritized advice list for a plot
func (rm *RouteManager) getAdviceHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	result, err := rm.engine.ComputeAdvice(r.Context(), plotID)
	if err != nil {
		rm.writeAdviceError(w, plotID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// getWeatherAdviceHandler computes forecast-driven advice only
func (rm *RouteManager) getWeatherAdviceHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	result, err := rm.engine.ComputeWeatherAdvice(r.Context(), plotID)
	if err != nil {
		rm.writeAdviceError(w, plotID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// getAnalysisHandler returns the raw sensor and risk analysis without
// running the rule catalog
func (rm *RouteManager) getAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	analysis, err := rm.engine.Analyze(r.Context(), plotID)
	if err != nil {
		rm.writeAdviceError(w, plotID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

// writeAdviceError maps missing prerequisites (plot, plant, growth stage)
// to 404 with the error text naming what is missing
func (rm *RouteManager) writeAdviceError(w http.ResponseWriter, plotID uuid.UUID, err error) {
	if advisor.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	log.Printf("❌ Failed to compute advice for plot %s: %v", plotID, err)
	http.Error(w, "Failed to compute advice", http.StatusInternalServerError)
}
