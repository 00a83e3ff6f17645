package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PlotStore looks up plots and their plant metadata.
type PlotStore interface {
	GetPlot(ctx context.Context, id uuid.UUID) (*models.Plot, error)
	// GetPlant returns the plant with its growth stages ordered by stage_order.
	GetPlant(ctx context.Context, id uuid.UUID) (*models.Plant, error)
}

// ReadingStore returns recent sensor readings grouped by sensor type,
// newest first, at most window points per type.
type ReadingStore interface {
	LatestSeries(ctx context.Context, plotID uuid.UUID, window int) (map[models.SensorType]models.SensorSeries, error)
}

// WeatherSource provides the weather snapshot for a plot's location.
// Implementations are expected to cache the observation (see pkg/weather).
type WeatherSource interface {
	Snapshot(ctx context.Context, plot models.Plot) (models.WeatherSnapshot, error)
}

// HistoryStore returns recent care history for a plot.
type HistoryStore interface {
	RecentActivities(ctx context.Context, plotID uuid.UUID, since time.Time) ([]models.Activity, error)
	OpenTasks(ctx context.Context, plotID uuid.UUID) ([]models.Task, error)
	Schedules(ctx context.Context, plotID uuid.UUID) ([]models.Schedule, error)
	ActiveAlerts(ctx context.Context, plotID uuid.UUID) ([]models.Alert, error)
}

// Context is the complete read-only snapshot one advisor invocation works
// from. It is assembled fresh per request and never mutated by rules.
type Context struct {
	Plot  models.Plot
	Plant models.Plant
	Stage models.StageProgress

	// Series holds the recent reading window per installed sensor type.
	Series map[models.SensorType]models.SensorSeries

	// Weather holds observation and forecasts. WeatherAvailable is false
	// when the provider was unreachable; weather rules then contribute
	// nothing instead of failing the computation.
	Weather          models.WeatherSnapshot
	WeatherAvailable bool

	// Care history. HistoryAvailable is false when the activity fetch
	// failed; history-dependent rules then contribute nothing.
	Activities       []models.Activity
	HistoryAvailable bool
	Tasks            []models.Task
	Schedules        []models.Schedule
	Alerts           []models.Alert

	// Now is the injected evaluation time. All time-of-day bucketing and
	// date math derives from it so results are reproducible.
	Now time.Time
}

// Builder assembles advisor contexts from the collaborator stores.
type Builder struct {
	plots    PlotStore
	readings ReadingStore
	weather  WeatherSource
	history  HistoryStore
	cfg      Config
	now      func() time.Time
}

// NewBuilder creates a context builder. now may be nil, in which case
// time.Now is used.
func NewBuilder(plots PlotStore, readings ReadingStore, weather WeatherSource, history HistoryStore, cfg Config, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{
		plots:    plots,
		readings: readings,
		weather:  weather,
		history:  history,
		cfg:      cfg,
		now:      now,
	}
}

// Build gathers everything the engine needs for one plot. The minimal
// context is plot + plant + growth stage: if any of those is missing the
// build fails with a not-found error naming the missing prerequisite.
// Weather and care history degrade gracefully instead.
func (b *Builder) Build(ctx context.Context, plotID uuid.UUID) (*Context, error) {
	now := b.now().UTC()

	plot, err := b.plots.GetPlot(ctx, plotID)
	if err != nil {
		return nil, fmt.Errorf("plot %s: %w", plotID, err)
	}
	if plot.PlantID == nil || plot.PlantedAt == nil {
		return nil, fmt.Errorf("plot %s: plant not configured: %w", plotID, models.ErrNotFound)
	}

	ac := &Context{Plot: *plot, Now: now}

	// The remaining fetches have no data dependencies on each other.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		plant, err := b.plots.GetPlant(gctx, *plot.PlantID)
		if err != nil {
			return fmt.Errorf("plant %s: %w", plot.PlantID, err)
		}
		progress, ok := plant.ProgressAt(*plot.PlantedAt, now)
		if !ok {
			return fmt.Errorf("plant %s: growth stages not configured: %w", plot.PlantID, models.ErrNotFound)
		}
		ac.Plant = *plant
		ac.Stage = progress
		return nil
	})

	g.Go(func() error {
		series, err := b.readings.LatestSeries(gctx, plotID, b.cfg.TrendWindow)
		if err != nil {
			return fmt.Errorf("sensor readings for plot %s: %w", plotID, err)
		}
		ac.Series = series
		return nil
	})

	g.Go(func() error {
		snapshot, err := b.weather.Snapshot(gctx, *plot)
		if err != nil {
			// Weather being down only silences weather rules.
			log.Printf("⚠ weather unavailable for plot %s: %v", plotID, err)
			return nil
		}
		ac.Weather = snapshot
		ac.WeatherAvailable = snapshot.Observation != nil || len(snapshot.Hourly) > 0 || len(snapshot.Daily) > 0
		return nil
	})

	g.Go(func() error {
		since := now.AddDate(0, 0, -b.cfg.PlanningLookbackDays)
		activities, err := b.history.RecentActivities(gctx, plotID, since)
		if err != nil {
			log.Printf("⚠ activity history unavailable for plot %s: %v", plotID, err)
			return nil
		}
		ac.Activities = activities
		ac.HistoryAvailable = true
		return nil
	})

	g.Go(func() error {
		tasks, err := b.history.OpenTasks(gctx, plotID)
		if err != nil {
			log.Printf("⚠ tasks unavailable for plot %s: %v", plotID, err)
			return nil
		}
		ac.Tasks = tasks
		return nil
	})

	g.Go(func() error {
		schedules, err := b.history.Schedules(gctx, plotID)
		if err != nil {
			log.Printf("⚠ schedules unavailable for plot %s: %v", plotID, err)
			return nil
		}
		ac.Schedules = schedules
		return nil
	})

	g.Go(func() error {
		alerts, err := b.history.ActiveAlerts(gctx, plotID)
		if err != nil {
			log.Printf("⚠ alerts unavailable for plot %s: %v", plotID, err)
			return nil
		}
		ac.Alerts = alerts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ac, nil
}

// LastActivity returns the most recent activity of the given type, if any.
func (c *Context) LastActivity(t models.ActivityType) (models.Activity, bool) {
	var latest models.Activity
	found := false
	for _, a := range c.Activities {
		if a.Type != t {
			continue
		}
		if !found || a.PerformedAt.After(latest.PerformedAt) {
			latest = a
			found = true
		}
	}
	return latest, found
}

// IsNotFound reports whether err stems from a missing prerequisite.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
