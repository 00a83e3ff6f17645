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

// PlantRequest is the JSON body for creating a plant with its stages
type PlantRequest struct {
	Name    string              `json:"name"`
	Species string              `json:"species"`
	Stages  []PlantStageRequest `json:"stages"`
}

type PlantStageRequest struct {
	Name               string                                    `json:"name"`
	StageOrder         int                                       `json:"stage_order"`
	DurationDays       int                                       `json:"duration_days"`
	FertilizeEveryDays int                                       `json:"fertilize_every_days"`
	Ranges             map[models.SensorType]models.OptimalRange `json:"ranges"`
}

// getPlantsHandler returns all plants without their stages
func (rm *RouteManager) getPlantsHandler(w http.ResponseWriter, r *http.Request) {
	plants, err := rm.dbManager.ListPlants(r.Context())
	if err != nil {
		log.Printf("❌ Failed to query plants: %v", err)
		http.Error(w, "Failed to query plants", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plants)
}

// getPlantHandler returns a plant with its growth stages in order
func (rm *RouteManager) getPlantHandler(w http.ResponseWriter, r *http.Request) {
	plantID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plant_id format", http.StatusBadRequest)
		return
	}

	plant, err := rm.dbManager.GetPlant(r.Context(), plantID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Plant not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to query plant: %v", err)
		http.Error(w, "Failed to query plant", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plant)
}

// createPlantHandler creates a plant with its growth stages
func (rm *RouteManager) createPlantHandler(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	plant := &models.Plant{
		Name:    req.Name,
		Species: req.Species,
	}

	for _, stage := range req.Stages {
		if stage.Name == "" || stage.DurationDays < 1 {
			http.Error(w, "each stage needs a name and a positive duration_days", http.StatusBadRequest)
			return
		}
		for sensorType := range stage.Ranges {
			if !sensorType.Valid() {
				http.Error(w, "invalid sensor type in stage ranges: "+string(sensorType), http.StatusBadRequest)
				return
			}
		}
		plant.Stages = append(plant.Stages, models.GrowthStage{
			Name:               stage.Name,
			StageOrder:         stage.StageOrder,
			DurationDays:       stage.DurationDays,
			FertilizeEveryDays: stage.FertilizeEveryDays,
			Ranges:             stage.Ranges,
		})
	}

	if err := rm.dbManager.CreatePlant(r.Context(), plant); err != nil {
		log.Printf("❌ Failed to create plant: %v", err)
		http.Error(w, "Failed to create plant", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(plant)
}

// deletePlantHandler removes a plant and its stages
func (rm *RouteManager) deletePlantHandler(w http.ResponseWriter, r *http.Request) {
	plantID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid plant_id format", http.StatusBadRequest)
		return
	}

	if err := rm.dbManager.DeletePlant(r.Context(), plantID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Plant not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to delete plant: %v", err)
		http.Error(w, "Failed to delete plant", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
