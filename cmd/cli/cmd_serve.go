package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/advisor"
	"github.com/gardenmaestro/gardenmaestro/pkg/collector"
	"github.com/gardenmaestro/gardenmaestro/pkg/database"
	"github.com/gardenmaestro/gardenmaestro/pkg/ingest"
	"github.com/gardenmaestro/gardenmaestro/pkg/ingest/gardenlink"
	"github.com/gardenmaestro/gardenmaestro/pkg/weather"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GardenMaestro server",
	Long:  `Start the GardenMaestro server to receive sensor data and serve care advice.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" || jwtSecret == "change_me_in_production" {
		return errors.New("JWT_SECRET environment variable is not set or has an invalid value")
	}

	dbManager := cmd.Context().Value("dbManager").(*database.DatabaseManager)

	// Run migrations
	if err := dbManager.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Weather provider
	weatherService := weather.NewService(newWeatherClient())

	// Advisory engine
	advisorConfig := advisor.DefaultConfig()
	builder := advisor.NewBuilder(dbManager, dbManager, weatherService, dbManager, advisorConfig, nil)
	engine := advisor.New(builder, advisorConfig)

	// Gateway formats
	gatewayRegistry := ingest.NewRegistry()
	gatewayRegistry.Register(&gardenlink.Gateway{})

	// Ambient collector for plots without hardware sensors
	collectorService := collector.NewService(dbManager, weatherService, collectorInterval())
	if err := collectorService.LoadPlots(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load plots for collection: %w", err)
	}
	collectorService.Start()

	// Setup Router
	routeManager := NewRouteManager(dbManager, engine, gatewayRegistry, collectorService)
	routeManager.Setup()

	// Get server port
	port := getEnv("SERVER_PORT", "8074")
	addr := ":" + port

	// Start server
	server := &http.Server{
		Handler:      routeManager.Router,
		Addr:         addr,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutdown signal received")

		collectorService.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting GardenMaestro server on %s...", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// newWeatherClient builds the upstream weather client from environment
func newWeatherClient() *weather.Client {
	baseURL := getEnv("WEATHER_API_URL", "https://api.gardenmaestro.io/weather")
	opts := []weather.ClientOption{}
	if apiKey := getEnv("WEATHER_API_KEY", ""); apiKey != "" {
		opts = append(opts, weather.WithAPIKey(apiKey))
	}
	return weather.NewClient(baseURL, opts...)
}

// collectorInterval reads the ambient collection interval from environment
func collectorInterval() time.Duration {
	if raw := getEnv("COLLECTOR_INTERVAL_MINUTES", ""); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
		log.Printf("⚠ Invalid COLLECTOR_INTERVAL_MINUTES %q, using default", raw)
	}
	return 15 * time.Minute
}
