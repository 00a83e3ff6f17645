package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// StoreSensorReading stores a single sensor reading
func (dm *DatabaseManager) StoreSensorReading(ctx context.Context, sensorID uuid.UUID, value float64, dateUTC time.Time) error {
	query := `
        INSERT INTO sensor_readings (sensor_id, value, date_utc)
        VALUES ($1, $2, $3)
    `

	_, err := dm.ExecWithHealthCheck(ctx, query, sensorID, value, dateUTC.Format(time.RFC3339Nano))
	return err
}

// GetReadings retrieves readings with flexible filtering
func (dm *DatabaseManager) GetReadings(ctx context.Context, params models.ReadingQueryParams) (*models.ReadingsResponse, error) {
	// WHERE clause is shared between the count and data queries
	whereClause := ""
	args := []interface{}{}
	argCount := 1

	if params.PlotID != nil {
		whereClause += fmt.Sprintf(" AND s.plot_id = $%d", argCount)
		args = append(args, *params.PlotID)
		argCount++
	}

	if len(params.SensorIDs) > 0 {
		placeholders := []string{}
		for _, sensorID := range params.SensorIDs {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argCount))
			args = append(args, sensorID)
			argCount++
		}
		whereClause += fmt.Sprintf(" AND sr.sensor_id IN (%s)", strings.Join(placeholders, ","))
	}

	if params.SensorType != "" {
		whereClause += fmt.Sprintf(" AND s.sensor_type = $%d", argCount)
		args = append(args, params.SensorType)
		argCount++
	}

	if params.StartTime != "" {
		whereClause += fmt.Sprintf(" AND sr.date_utc >= $%d", argCount)
		args = append(args, params.StartTime)
		argCount++
	}

	if params.EndTime != "" {
		whereClause += fmt.Sprintf(" AND sr.date_utc <= $%d", argCount)
		args = append(args, params.EndTime)
		argCount++
	}

	countQuery := `
        SELECT COUNT(*)
        FROM sensor_readings sr
        JOIN sensors s ON sr.sensor_id = s.id
        WHERE 1=1
    ` + whereClause

	var totalCount int
	err := dm.QueryRowWithHealthCheck(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	query := `
        SELECT sr.id, sr.sensor_id, sr.value, sr.date_utc
        FROM sensor_readings sr
        JOIN sensors s ON sr.sensor_id = s.id
        WHERE 1=1
    ` + whereClause

	query += fmt.Sprintf(" ORDER BY sr.date_utc %s", strings.ToUpper(params.Order))

	offset := (params.Page - 1) * params.Limit
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1)
	queryArgs := append(args, params.Limit, offset)

	rows, err := dm.QueryWithHealthCheck(ctx, query, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := []models.SensorReading{}
	for rows.Next() {
		var reading models.SensorReading
		if err := rows.Scan(&reading.ID, &reading.SensorID, &reading.Value, &reading.DateUTC); err != nil {
			log.Printf("Failed to scan reading: %v", err)
			continue
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := (totalCount + params.Limit - 1) / params.Limit

	return &models.ReadingsResponse{
		Data:       readings,
		Total:      totalCount,
		Page:       params.Page,
		TotalPages: totalPages,
		Limit:      params.Limit,
		HasMore:    params.Page < totalPages,
	}, nil
}

// LatestSeries returns, for each enabled sensor on the plot, the newest
// `window` readings ordered newest first. Sensors of the same type are
// collapsed into one series keyed by type.
func (dm *DatabaseManager) LatestSeries(ctx context.Context, plotID uuid.UUID, window int) (map[models.SensorType]models.SensorSeries, error) {
	query := `
        SELECT sub.sensor_type, sub.id, sub.sensor_id, sub.value, sub.date_utc
        FROM (
            SELECT s.sensor_type, sr.id, sr.sensor_id, sr.value, sr.date_utc,
                   ROW_NUMBER() OVER (PARTITION BY s.sensor_type ORDER BY sr.date_utc DESC) AS rn
            FROM sensor_readings sr
            JOIN sensors s ON sr.sensor_id = s.id
            WHERE s.plot_id = $1 AND s.enabled
        ) sub
        WHERE sub.rn <= $2
        ORDER BY sub.sensor_type, sub.date_utc DESC
    `

	rows, err := dm.QueryWithHealthCheck(ctx, query, plotID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest series: %w", err)
	}
	defer rows.Close()

	series := make(map[models.SensorType]models.SensorSeries)

	for rows.Next() {
		var st models.SensorType
		var reading models.SensorReading
		if err := rows.Scan(&st, &reading.ID, &reading.SensorID, &reading.Value, &reading.DateUTC); err != nil {
			log.Printf("Failed to scan reading: %v", err)
			continue
		}

		s := series[st]
		s.SensorType = st
		s.Readings = append(s.Readings, reading)
		series[st] = s
	}

	return series, rows.Err()
}
