package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// CreatePlot inserts a new plot
func (dm *DatabaseManager) CreatePlot(ctx context.Context, plot *models.Plot) error {
	query := `
        INSERT INTO plots (name, garden_type, latitude, longitude, plant_id, planted_at, experience)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `

	return dm.QueryRowWithHealthCheck(ctx, query,
		plot.Name,
		plot.GardenType,
		plot.Latitude,
		plot.Longitude,
		plot.PlantID,
		plot.PlantedAt,
		plot.Experience,
	).Scan(&plot.ID, &plot.CreatedAt, &plot.UpdatedAt)
}

// GetPlot retrieves a single plot by id
func (dm *DatabaseManager) GetPlot(ctx context.Context, id uuid.UUID) (*models.Plot, error) {
	query := `
        SELECT id, name, garden_type, latitude, longitude, plant_id, planted_at, experience, created_at, updated_at
        FROM plots
        WHERE id = $1
    `

	var plot models.Plot
	err := dm.QueryRowWithHealthCheck(ctx, query, id).Scan(
		&plot.ID,
		&plot.Name,
		&plot.GardenType,
		&plot.Latitude,
		&plot.Longitude,
		&plot.PlantID,
		&plot.PlantedAt,
		&plot.Experience,
		&plot.CreatedAt,
		&plot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plot %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query plot: %w", err)
	}

	return &plot, nil
}

// ListPlots retrieves all plots with their plant name, newest first
func (dm *DatabaseManager) ListPlots(ctx context.Context) ([]models.PlotListItem, error) {
	query := `
        SELECT p.id, p.name, p.garden_type, COALESCE(pl.name, ''), p.planted_at
        FROM plots p
        LEFT JOIN plants pl ON p.plant_id = pl.id
        ORDER BY p.created_at DESC
    `

	rows, err := dm.QueryWithHealthCheck(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plots []models.PlotListItem
	for rows.Next() {
		var item models.PlotListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.GardenType, &item.PlantName, &item.PlantedAt); err != nil {
			log.Printf("Failed to scan plot: %v", err)
			continue
		}
		plots = append(plots, item)
	}

	return plots, rows.Err()
}

// UpdatePlot updates a plot's mutable fields
func (dm *DatabaseManager) UpdatePlot(ctx context.Context, plot *models.Plot) error {
	query := `
        UPDATE plots
        SET name = $1, garden_type = $2, latitude = $3, longitude = $4,
            plant_id = $5, planted_at = $6, experience = $7, updated_at = CURRENT_TIMESTAMP
        WHERE id = $8
        RETURNING updated_at
    `

	err := dm.QueryRowWithHealthCheck(ctx, query,
		plot.Name,
		plot.GardenType,
		plot.Latitude,
		plot.Longitude,
		plot.PlantID,
		plot.PlantedAt,
		plot.Experience,
		plot.ID,
	).Scan(&plot.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("plot %s: %w", plot.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update plot: %w", err)
	}

	return nil
}

// DeletePlot removes a plot and its dependent rows
func (dm *DatabaseManager) DeletePlot(ctx context.Context, id uuid.UUID) error {
	result, err := dm.ExecWithHealthCheck(ctx, "DELETE FROM plots WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete plot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("plot %s: %w", id, models.ErrNotFound)
	}

	return nil
}
