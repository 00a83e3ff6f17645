package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// CreatePlant inserts a plant together with its growth stages in one
// transaction. Stage ranges are stored as JSONB keyed by sensor type.
func (dm *DatabaseManager) CreatePlant(ctx context.Context, plant *models.Plant) error {
	if err := dm.healthChecker.EnsureConnection(ctx); err != nil {
		return err
	}

	tx, err := dm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO plants (name, species)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at
    `

	err = tx.QueryRowContext(ctx, query, plant.Name, plant.Species).
		Scan(&plant.ID, &plant.CreatedAt, &plant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create plant: %w", err)
	}

	for i := range plant.Stages {
		stage := &plant.Stages[i]
		stage.PlantID = plant.ID

		ranges, err := json.Marshal(stage.Ranges)
		if err != nil {
			return fmt.Errorf("failed to marshal ranges for stage %s: %w", stage.Name, err)
		}

		stageQuery := `
            INSERT INTO growth_stages (plant_id, name, stage_order, duration_days, fertilize_every_days, ranges)
            VALUES ($1, $2, $3, $4, $5, $6)
            RETURNING id
        `
		err = tx.QueryRowContext(ctx, stageQuery,
			stage.PlantID, stage.Name, stage.StageOrder, stage.DurationDays,
			stage.FertilizeEveryDays, ranges,
		).Scan(&stage.ID)
		if err != nil {
			return fmt.Errorf("failed to create growth stage %s: %w", stage.Name, err)
		}
	}

	return tx.Commit()
}

// GetPlant retrieves a plant with its growth stages in stage order
func (dm *DatabaseManager) GetPlant(ctx context.Context, id uuid.UUID) (*models.Plant, error) {
	query := `
        SELECT id, name, COALESCE(species, ''), created_at, updated_at
        FROM plants
        WHERE id = $1
    `

	var plant models.Plant
	err := dm.QueryRowWithHealthCheck(ctx, query, id).Scan(
		&plant.ID,
		&plant.Name,
		&plant.Species,
		&plant.CreatedAt,
		&plant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plant %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query plant: %w", err)
	}

	stages, err := dm.getGrowthStages(ctx, id)
	if err != nil {
		return nil, err
	}
	plant.Stages = stages

	return &plant, nil
}

// ListPlants retrieves all plants without their stages
func (dm *DatabaseManager) ListPlants(ctx context.Context) ([]models.Plant, error) {
	query := `
        SELECT id, name, COALESCE(species, ''), created_at, updated_at
        FROM plants
        ORDER BY name
    `

	rows, err := dm.QueryWithHealthCheck(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []models.Plant
	for rows.Next() {
		var plant models.Plant
		if err := rows.Scan(&plant.ID, &plant.Name, &plant.Species, &plant.CreatedAt, &plant.UpdatedAt); err != nil {
			log.Printf("Failed to scan plant: %v", err)
			continue
		}
		plants = append(plants, plant)
	}

	return plants, rows.Err()
}

// DeletePlant removes a plant and cascades to its growth stages
func (dm *DatabaseManager) DeletePlant(ctx context.Context, id uuid.UUID) error {
	result, err := dm.ExecWithHealthCheck(ctx, "DELETE FROM plants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("plant %s: %w", id, models.ErrNotFound)
	}

	return nil
}

func (dm *DatabaseManager) getGrowthStages(ctx context.Context, plantID uuid.UUID) ([]models.GrowthStage, error) {
	query := `
        SELECT id, plant_id, name, stage_order, duration_days, fertilize_every_days, ranges
        FROM growth_stages
        WHERE plant_id = $1
        ORDER BY stage_order
    `

	rows, err := dm.QueryWithHealthCheck(ctx, query, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query growth stages: %w", err)
	}
	defer rows.Close()

	var stages []models.GrowthStage
	for rows.Next() {
		var stage models.GrowthStage
		var ranges []byte
		if err := rows.Scan(
			&stage.ID, &stage.PlantID, &stage.Name, &stage.StageOrder,
			&stage.DurationDays, &stage.FertilizeEveryDays, &ranges,
		); err != nil {
			log.Printf("Failed to scan growth stage: %v", err)
			continue
		}
		if err := json.Unmarshal(ranges, &stage.Ranges); err != nil {
			log.Printf("Failed to unmarshal ranges for stage %s: %v", stage.ID, err)
			stage.Ranges = nil
		}
		stages = append(stages, stage)
	}

	return stages, rows.Err()
}
