// Package collector periodically records ambient readings for plots that
// have no hardware sensor for a measurement, derived from the weather
// service. Such virtual sensors keep the analysis window populated for
// balcony and outdoor plots running on weather data alone.
package collector

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/database"
	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/gardenmaestro/gardenmaestro/pkg/weather"
	"github.com/google/uuid"
)

// VirtualSensorModel marks sensors maintained by the collector rather than
// reported by a gateway.
const VirtualSensorModel = "virtual-weather"

// Service manages periodic ambient data collection for registered plots
type Service struct {
	dbManager *database.DatabaseManager
	weather   *weather.Service
	interval  time.Duration
	stopChan  chan struct{}
	plots     map[uuid.UUID]struct{}
	mu        sync.RWMutex
	ticker    *time.Ticker
}

// NewService creates a new collector Service
func NewService(dbManager *database.DatabaseManager, weatherService *weather.Service, interval time.Duration) *Service {
	return &Service{
		dbManager: dbManager,
		weather:   weatherService,
		interval:  interval,
		stopChan:  make(chan struct{}),
		plots:     make(map[uuid.UUID]struct{}),
	}
}

// AddPlot registers a plot for ambient collection
func (s *Service) AddPlot(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plots[id] = struct{}{}
}

// RemovePlot unregisters a plot
func (s *Service) RemovePlot(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plots, id)
}

// LoadPlots registers all stored plots
func (s *Service) LoadPlots(ctx context.Context) error {
	plots, err := s.dbManager.ListPlots(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, plot := range plots {
		s.plots[plot.ID] = struct{}{}
	}

	return nil
}

// Start begins the periodic collection service
func (s *Service) Start() {
	go s.run()
	log.Println("✓ Collector service started")
}

// Stop halts the collection service
func (s *Service) Stop() {
	close(s.stopChan)
	if s.ticker != nil {
		s.ticker.Stop()
	}
	log.Println("✓ Collector service stopped")
}

// run executes the collection loop
func (s *Service) run() {
	s.ticker = time.NewTicker(s.interval)
	defer s.ticker.Stop()

	// Collect immediately on start
	s.collectAll()

	for {
		select {
		case <-s.stopChan:
			return
		case <-s.ticker.C:
			s.collectAll()
		}
	}
}

// collectAll records ambient readings for every registered plot
func (s *Service) collectAll() {
	s.mu.RLock()
	ids := make([]uuid.UUID, 0, len(s.plots))
	for id := range s.plots {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	for _, id := range ids {
		s.collectPlot(id)
	}
}

// collectPlot stores the current outdoor temperature and humidity as
// virtual sensor readings for one plot
func (s *Service) collectPlot(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Fetch latest plot config from database
	plot, err := s.dbManager.GetPlot(ctx, id)
	if err != nil {
		log.Printf("❌ Failed to load plot %s: %v", id, err)
		return
	}

	// Indoor plots get no ambient data from outside weather
	if plot.GardenType == models.GardenTypeIndoor {
		return
	}

	snapshot, err := s.weather.Snapshot(ctx, *plot)
	if err != nil {
		log.Printf("❌ Error fetching weather for plot %s: %v", plot.ID, err)
		return
	}
	if snapshot.Observation == nil {
		log.Printf("❌ No observation received for plot %s", plot.ID)
		return
	}

	stored := 0
	values := map[models.SensorType]float64{
		models.SensorTypeTemperature: snapshot.Observation.TempC,
		models.SensorTypeHumidity:    snapshot.Observation.Humidity,
	}

	for sensorType, value := range values {
		sensor, err := s.virtualSensor(ctx, plot.ID, sensorType)
		if err != nil {
			log.Printf("⚠ No virtual %s sensor for plot %s: %v", sensorType, plot.ID, err)
			continue
		}
		if sensor == nil {
			// Plot has a real sensor for this measurement
			continue
		}

		if err := s.dbManager.StoreSensorReading(ctx, sensor.ID, value, snapshot.Observation.ObservedAt); err != nil {
			log.Printf("❌ Error storing ambient reading (%s, %f): %v", sensor.ID, value, err)
			return
		}
		stored++
	}

	if stored > 0 {
		log.Printf("✓ Collected %d ambient readings for plot: %s", stored, plot.Name)
	}
}

// virtualSensor finds or creates the collector-owned sensor for a plot and
// measurement. Returns nil when the plot already has a hardware sensor of
// that type.
func (s *Service) virtualSensor(ctx context.Context, plotID uuid.UUID, sensorType models.SensorType) (*models.Sensor, error) {
	enabled := true
	sensors, err := s.dbManager.GetSensors(ctx, models.SensorQueryParams{
		PlotID:     &plotID,
		SensorType: sensorType,
		Enabled:    &enabled,
	})
	if err != nil {
		return nil, err
	}

	for i := range sensors {
		if sensors[i].Model == VirtualSensorModel {
			return &sensors[i], nil
		}
	}
	if len(sensors) > 0 {
		return nil, nil
	}

	sensor := &models.Sensor{
		PlotID:     plotID,
		SensorType: sensorType,
		Name:       "Ambient " + string(sensorType),
		Model:      VirtualSensorModel,
		Enabled:    true,
	}
	if err := s.dbManager.CreateSensor(ctx, sensor); err != nil {
		return nil, err
	}

	return sensor, nil
}
