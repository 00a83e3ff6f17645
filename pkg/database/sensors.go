package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// CreateSensor registers a sensor on a plot
func (dm *DatabaseManager) CreateSensor(ctx context.Context, sensor *models.Sensor) error {
	query := `
        INSERT INTO sensors (plot_id, sensor_type, name, model, enabled)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `

	return dm.QueryRowWithHealthCheck(ctx, query,
		sensor.PlotID,
		sensor.SensorType,
		sensor.Name,
		sensor.Model,
		sensor.Enabled,
	).Scan(&sensor.ID, &sensor.CreatedAt, &sensor.UpdatedAt)
}

// GetSensor retrieves a single sensor by id
func (dm *DatabaseManager) GetSensor(ctx context.Context, id uuid.UUID) (*models.Sensor, error) {
	query := `
        SELECT id, plot_id, sensor_type, COALESCE(name, ''), COALESCE(model, ''), enabled, created_at, updated_at
        FROM sensors
        WHERE id = $1
    `

	var sensor models.Sensor
	err := dm.QueryRowWithHealthCheck(ctx, query, id).Scan(
		&sensor.ID,
		&sensor.PlotID,
		&sensor.SensorType,
		&sensor.Name,
		&sensor.Model,
		&sensor.Enabled,
		&sensor.CreatedAt,
		&sensor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sensor %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query sensor: %w", err)
	}

	return &sensor, nil
}

// GetSensors retrieves sensors matching the given filters
func (dm *DatabaseManager) GetSensors(ctx context.Context, params models.SensorQueryParams) ([]models.Sensor, error) {
	query := `
        SELECT id, plot_id, sensor_type, COALESCE(name, ''), COALESCE(model, ''), enabled, created_at, updated_at
        FROM sensors
        WHERE 1=1
    `
	args := []interface{}{}
	argIdx := 1

	if params.PlotID != nil {
		query += fmt.Sprintf(" AND plot_id = $%d", argIdx)
		args = append(args, *params.PlotID)
		argIdx++
	}
	if params.SensorType != "" {
		query += fmt.Sprintf(" AND sensor_type = $%d", argIdx)
		args = append(args, params.SensorType)
		argIdx++
	}
	if params.Enabled != nil {
		query += fmt.Sprintf(" AND enabled = $%d", argIdx)
		args = append(args, *params.Enabled)
		argIdx++
	}

	query += " ORDER BY sensor_type, created_at"

	rows, err := dm.QueryWithHealthCheck(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sensors []models.Sensor
	for rows.Next() {
		var sensor models.Sensor
		if err := rows.Scan(
			&sensor.ID, &sensor.PlotID, &sensor.SensorType,
			&sensor.Name, &sensor.Model, &sensor.Enabled,
			&sensor.CreatedAt, &sensor.UpdatedAt,
		); err != nil {
			log.Printf("Failed to scan sensor: %v", err)
			continue
		}
		sensors = append(sensors, sensor)
	}

	return sensors, rows.Err()
}

// GetSensorsWithLatest retrieves sensors matching the given filters
// together with each sensor's most recent reading, if any
func (dm *DatabaseManager) GetSensorsWithLatest(ctx context.Context, params models.SensorQueryParams) ([]models.SensorWithLatestReading, error) {
	query := `
        SELECT
            s.id, s.plot_id, s.sensor_type, COALESCE(s.name, ''), COALESCE(s.model, ''), s.enabled, s.created_at, s.updated_at,
            sr.id, sr.sensor_id, sr.value, sr.date_utc
        FROM sensors s
        LEFT JOIN LATERAL (
            SELECT id, sensor_id, value, date_utc
            FROM sensor_readings
            WHERE sensor_id = s.id
            ORDER BY date_utc DESC
            LIMIT 1
        ) sr ON TRUE
        WHERE 1=1
    `
	args := []interface{}{}
	argIdx := 1

	if params.PlotID != nil {
		query += fmt.Sprintf(" AND s.plot_id = $%d", argIdx)
		args = append(args, *params.PlotID)
		argIdx++
	}
	if params.SensorType != "" {
		query += fmt.Sprintf(" AND s.sensor_type = $%d", argIdx)
		args = append(args, params.SensorType)
		argIdx++
	}
	if params.Enabled != nil {
		query += fmt.Sprintf(" AND s.enabled = $%d", argIdx)
		args = append(args, *params.Enabled)
		argIdx++
	}

	query += " ORDER BY s.sensor_type, s.created_at"

	rows, err := dm.QueryWithHealthCheck(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sensors []models.SensorWithLatestReading
	for rows.Next() {
		var swr models.SensorWithLatestReading
		var readingID *uuid.UUID
		var readingSensorID *uuid.UUID
		var readingValue *float64
		var readingDateUTC *time.Time

		err := rows.Scan(
			&swr.Sensor.ID, &swr.Sensor.PlotID, &swr.Sensor.SensorType,
			&swr.Sensor.Name, &swr.Sensor.Model, &swr.Sensor.Enabled,
			&swr.Sensor.CreatedAt, &swr.Sensor.UpdatedAt,
			&readingID, &readingSensorID, &readingValue, &readingDateUTC,
		)
		if err != nil {
			log.Printf("Failed to scan sensor: %v", err)
			continue
		}

		if readingID != nil {
			swr.LatestReading = &models.SensorReading{
				ID:       *readingID,
				SensorID: *readingSensorID,
				Value:    *readingValue,
				DateUTC:  *readingDateUTC,
			}
		}

		sensors = append(sensors, swr)
	}

	return sensors, rows.Err()
}

// UpdateSensor updates a sensor's mutable fields
func (dm *DatabaseManager) UpdateSensor(ctx context.Context, sensor *models.Sensor) error {
	query := `
        UPDATE sensors
        SET name = $1, model = $2, enabled = $3, updated_at = CURRENT_TIMESTAMP
        WHERE id = $4
        RETURNING updated_at
    `

	err := dm.QueryRowWithHealthCheck(ctx, query,
		sensor.Name, sensor.Model, sensor.Enabled, sensor.ID,
	).Scan(&sensor.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("sensor %s: %w", sensor.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update sensor: %w", err)
	}

	return nil
}

// DeleteSensor removes a sensor and its readings
func (dm *DatabaseManager) DeleteSensor(ctx context.Context, id uuid.UUID) error {
	result, err := dm.ExecWithHealthCheck(ctx, "DELETE FROM sensors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete sensor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("sensor %s: %w", id, models.ErrNotFound)
	}

	return nil
}
