package weather

import (
	"context"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
)

const (
	defaultObservationTTL = 15 * time.Minute
	defaultCacheSize      = 256
)

// Service assembles weather snapshots for plots. The latest observation is
// read through an expirable cache keyed by plot id so request bursts do not
// hammer the upstream provider; entries are replaced atomically as whole
// values and expire on TTL only.
type Service struct {
	provider      Provider
	observations  *expirable.LRU[uuid.UUID, models.WeatherObservation]
	forecastHours int
	forecastDays  int
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceConfig)

type serviceConfig struct {
	ttl   time.Duration
	size  int
	hours int
	days  int
}

// WithObservationTTL overrides the observation cache TTL.
func WithObservationTTL(ttl time.Duration) ServiceOption {
	return func(c *serviceConfig) { c.ttl = ttl }
}

// WithForecastHorizon overrides the hourly/daily forecast horizons.
func WithForecastHorizon(hours, days int) ServiceOption {
	return func(c *serviceConfig) { c.hours, c.days = hours, days }
}

// NewService creates a snapshot service over a provider.
func NewService(provider Provider, opts ...ServiceOption) *Service {
	cfg := serviceConfig{
		ttl:   defaultObservationTTL,
		size:  defaultCacheSize,
		hours: 24,
		days:  5,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service{
		provider:      provider,
		observations:  expirable.NewLRU[uuid.UUID, models.WeatherObservation](cfg.size, nil, cfg.ttl),
		forecastHours: cfg.hours,
		forecastDays:  cfg.days,
	}
}

// Snapshot fetches the observation (cache-first) and both forecast arrays
// for a plot's location. The three upstream calls are independent and run
// concurrently.
func (s *Service) Snapshot(ctx context.Context, plot models.Plot) (models.WeatherSnapshot, error) {
	var snapshot models.WeatherSnapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		obs, err := s.currentCached(gctx, plot)
		if err != nil {
			return err
		}
		snapshot.Observation = obs
		return nil
	})

	g.Go(func() error {
		hourly, err := s.provider.HourlyForecast(gctx, plot.Latitude, plot.Longitude, s.forecastHours)
		if err != nil {
			return err
		}
		snapshot.Hourly = hourly
		return nil
	})

	g.Go(func() error {
		daily, err := s.provider.DailyForecast(gctx, plot.Latitude, plot.Longitude, s.forecastDays)
		if err != nil {
			return err
		}
		snapshot.Daily = daily
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.WeatherSnapshot{}, err
	}

	return snapshot, nil
}

// currentCached returns the cached observation for a plot when it is still
// inside its TTL, otherwise fetches and populates the cache.
func (s *Service) currentCached(ctx context.Context, plot models.Plot) (*models.WeatherObservation, error) {
	if obs, ok := s.observations.Get(plot.ID); ok {
		return &obs, nil
	}

	obs, err := s.provider.Current(ctx, plot.Latitude, plot.Longitude)
	if err != nil {
		return nil, err
	}

	s.observations.Add(plot.ID, *obs)
	return obs, nil
}
