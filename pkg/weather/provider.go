// Package weather fetches observations and forecasts for plot locations
// and caches the latest observation per plot behind a short TTL.
package weather

import (
	"context"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// Provider is a weather data source addressed by coordinates.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*models.WeatherObservation, error)
	HourlyForecast(ctx context.Context, lat, lon float64, hours int) ([]models.ForecastPoint, error)
	DailyForecast(ctx context.Context, lat, lon float64, days int) ([]models.ForecastPoint, error)
}
