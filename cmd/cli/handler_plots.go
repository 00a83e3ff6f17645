package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// PlotRequest is the JSON body for plot create and update
type PlotRequest struct {
	Name       string     `json:"name"`
	GardenType string     `json:"garden_type"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	PlantID    *uuid.UUID `json:"plant_id,omitempty"`
	PlantedAt  *time.Time `json:"planted_at,omitempty"`
	Experience string     `json:"experience"`
}

func (req *PlotRequest) toPlot() (*models.Plot, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	gardenType := models.GardenType(req.GardenType)
	switch gardenType {
	case "":
		gardenType = models.GardenTypeOutdoor
	case models.GardenTypeOutdoor, models.GardenTypeBalcony, models.GardenTypeIndoor, models.GardenTypeGreenhouse:
	default:
		return nil, errors.New("invalid garden_type")
	}

	experience := models.ExperienceLevel(req.Experience)
	switch experience {
	case "":
		experience = models.ExperienceIntermediate
	case models.ExperienceNovice, models.ExperienceIntermediate, models.ExperienceExpert:
	default:
		return nil, errors.New("invalid experience")
	}

	return &models.Plot{
		Name:       req.Name,
		GardenType: gardenType,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		PlantID:    req.PlantID,
		PlantedAt:  req.PlantedAt,
		Experience: experience,
	}, nil
}

// getPlotsHandler returns all plots
func (rm *RouteManager) getPlotsHandler(w http.ResponseWriter, r *http.Request) {
	plots, err := rm.dbManager.ListPlots(r.Context())
	if err != nil {
		log.Printf("❌ Failed to query plots: %v", err)
		http.Error(w, "Failed to query plots", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plots)
}

// getPlotHandler returns details for a specific plot
func (rm *RouteManager) getPlotHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	plot, err := rm.dbManager.GetPlot(r.Context(), plotID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Plot not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to query plot: %v", err)
		http.Error(w, "Failed to query plot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plot)
}

// createPlotHandler creates a new plot
func (rm *RouteManager) createPlotHandler(w http.ResponseWriter, r *http.Request) {
	var req PlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	plot, err := req.toPlot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rm.dbManager.CreatePlot(r.Context(), plot); err != nil {
		log.Printf("❌ Failed to create plot: %v", err)
		http.Error(w, "Failed to create plot", http.StatusInternalServerError)
		return
	}

	rm.collector.AddPlot(plot.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(plot)
}

// updatePlotHandler updates an existing plot
func (rm *RouteManager) updatePlotHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	var req PlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	plot, err := req.toPlot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	plot.ID = plotID

	if err := rm.dbManager.UpdatePlot(r.Context(), plot); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Plot not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to update plot: %v", err)
		http.Error(w, "Failed to update plot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plot)
}

// deletePlotHandler removes a plot
func (rm *RouteManager) deletePlotHandler(w http.ResponseWriter, r *http.Request) {
	plotID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plot_id format", http.StatusBadRequest)
		return
	}

	if err := rm.dbManager.DeletePlot(r.Context(), plotID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Plot not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to delete plot: %v", err)
		http.Error(w, "Failed to delete plot", http.StatusInternalServerError)
		return
	}

	rm.collector.RemovePlot(plotID)

	w.WriteHeader(http.StatusNoContent)
}
