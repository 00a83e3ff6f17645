package main

import (
	"log"
	"net/http"

	"github.com/gardenmaestro/gardenmaestro/pkg/advisor"
	"github.com/gardenmaestro/gardenmaestro/pkg/collector"
	"github.com/gardenmaestro/gardenmaestro/pkg/database"
	"github.com/gardenmaestro/gardenmaestro/pkg/ingest"
	"github.com/gorilla/mux"
)

// RouteManager handles all API routes
type RouteManager struct {
	dbManager       *database.DatabaseManager
	engine          *advisor.Engine
	gatewayRegistry *ingest.Registry
	collector       *collector.Service
	Router          *mux.Router
}

// NewRouteManager creates a new RouteManager instance
func NewRouteManager(dbManager *database.DatabaseManager, engine *advisor.Engine, gatewayRegistry *ingest.Registry, collectorService *collector.Service) *RouteManager {
	return &RouteManager{
		dbManager:       dbManager,
		engine:          engine,
		gatewayRegistry: gatewayRegistry,
		collector:       collectorService,
		Router:          mux.NewRouter(),
	}
}

// Setup configures all API routes
func (rm *RouteManager) Setup() {
	r := rm.Router
	r.Use(rm.corsMiddleware)

	// Global OPTIONS handler - catches all preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Health check
	r.HandleFunc("/health", rm.healthHandler).Methods("GET")

	// Dynamic gateway report endpoints
	rm.setupGatewayEndpoints(r)

	// API v1 routes
	api := r.PathPrefix("/api/v1").Subrouter()
	rm.setupAPIRoutes(api)
}

// setupGatewayEndpoints registers dynamic gateway report endpoints
func (rm *RouteManager) setupGatewayEndpoints(r *mux.Router) {
	for _, g := range rm.gatewayRegistry.All() {
		endpoint := g.GetEndpoint()
		log.Printf("✓ Registering endpoint: %s for gateway type: %s", endpoint, g.GetGatewayType())
		r.HandleFunc(endpoint, rm.sensorReportHandler(g)).Methods("GET", "POST")
	}
}

// setupAPIRoutes configures all API v1 routes
func (rm *RouteManager) setupAPIRoutes(api *mux.Router) {
	// Public auth endpoints (no auth required)
	api.HandleFunc("/auth/login", rm.handleLogin).Methods("POST")
	api.HandleFunc("/auth/logout", rm.handleLogout).Methods("POST")

	// Plots
	api.HandleFunc("/plots", rm.getPlotsHandler).Methods("GET")
	api.HandleFunc("/plots/{id}", rm.getPlotHandler).Methods("GET")

	// Advice
	api.HandleFunc("/plots/{id}/advice", rm.getAdviceHandler).Methods("GET")
	api.HandleFunc("/plots/{id}/advice/weather", rm.getWeatherAdviceHandler).Methods("GET")
	api.HandleFunc("/plots/{id}/analysis", rm.getAnalysisHandler).Methods("GET")

	// Plants
	api.HandleFunc("/plants", rm.getPlantsHandler).Methods("GET")
	api.HandleFunc("/plants/{id}", rm.getPlantHandler).Methods("GET")

	// Sensors
	api.HandleFunc("/plots/{id}/sensors", rm.getSensorsHandler).Methods("GET")
	api.HandleFunc("/sensors/{id}", rm.getSensorHandler).Methods("GET")

	// Readings
	api.HandleFunc("/readings", rm.getReadingsHandler).Methods("GET")

	// Activities
	api.HandleFunc("/plots/{id}/activities", rm.getActivitiesHandler).Methods("GET")

	// Tasks and schedules
	api.HandleFunc("/plots/{id}/tasks", rm.getTasksHandler).Methods("GET")
	api.HandleFunc("/plots/{id}/schedules", rm.getSchedulesHandler).Methods("GET")

	// Alerts
	api.HandleFunc("/plots/{id}/alerts", rm.getAlertsHandler).Methods("GET")

	// Protected endpoints (auth required)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(rm.JWTAuthMiddleware)

	// User info
	protected.HandleFunc("/auth/me", rm.handleMe).Methods("GET")
	protected.HandleFunc("/auth/refresh", rm.handleRefreshToken).Methods("POST")

	// Plot management
	protected.HandleFunc("/plots", rm.createPlotHandler).Methods("POST")
	protected.HandleFunc("/plots/{id}", rm.updatePlotHandler).Methods("PUT")
	protected.HandleFunc("/plots/{id}", rm.deletePlotHandler).Methods("DELETE")

	// Plant management
	protected.HandleFunc("/plants", rm.createPlantHandler).Methods("POST")
	protected.HandleFunc("/plants/{id}", rm.deletePlantHandler).Methods("DELETE")

	// Sensor management
	protected.HandleFunc("/plots/{id}/sensors", rm.createSensorHandler).Methods("POST")
	protected.HandleFunc("/sensors/{id}", rm.updateSensorHandler).Methods("PUT")
	protected.HandleFunc("/sensors/{id}", rm.deleteSensorHandler).Methods("DELETE")

	// Care history
	protected.HandleFunc("/plots/{id}/activities", rm.createActivityHandler).Methods("POST")

	// Task management
	protected.HandleFunc("/plots/{id}/tasks", rm.createTaskHandler).Methods("POST")
	protected.HandleFunc("/tasks/{id}/complete", rm.completeTaskHandler).Methods("POST")
	protected.HandleFunc("/tasks/{id}", rm.deleteTaskHandler).Methods("DELETE")
	protected.HandleFunc("/plots/{id}/schedules", rm.createScheduleHandler).Methods("POST")

	// Alert management
	protected.HandleFunc("/plots/{id}/alerts", rm.createAlertHandler).Methods("POST")
	protected.HandleFunc("/alerts/{id}/acknowledge", rm.acknowledgeAlertHandler).Methods("POST")
}
