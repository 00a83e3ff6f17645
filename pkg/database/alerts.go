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

// CreateAlert records an alarm raised against a plot
func (dm *DatabaseManager) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
        INSERT INTO alerts (plot_id, severity, source, message)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `

	return dm.QueryRowWithHealthCheck(ctx, query,
		alert.PlotID,
		alert.Severity,
		alert.Source,
		alert.Message,
	).Scan(&alert.ID, &alert.CreatedAt)
}

// ActiveAlerts returns all unacknowledged alerts for a plot, newest first
func (dm *DatabaseManager) ActiveAlerts(ctx context.Context, plotID uuid.UUID) ([]models.Alert, error) {
	query := `
        SELECT id, plot_id, severity, source, message, created_at, acknowledged_at
        FROM alerts
        WHERE plot_id = $1 AND acknowledged_at IS NULL
        ORDER BY created_at DESC
    `

	rows, err := dm.QueryWithHealthCheck(ctx, query, plotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var alert models.Alert
		if err := rows.Scan(
			&alert.ID, &alert.PlotID, &alert.Severity, &alert.Source,
			&alert.Message, &alert.CreatedAt, &alert.AcknowledgedAt,
		); err != nil {
			log.Printf("Failed to scan alert: %v", err)
			continue
		}
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

// AcknowledgeAlert marks an alert as handled
func (dm *DatabaseManager) AcknowledgeAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	query := `
        UPDATE alerts
        SET acknowledged_at = CURRENT_TIMESTAMP
        WHERE id = $1 AND acknowledged_at IS NULL
        RETURNING id, plot_id, severity, source, message, created_at, acknowledged_at
    `

	var alert models.Alert
	err := dm.QueryRowWithHealthCheck(ctx, query, id).Scan(
		&alert.ID, &alert.PlotID, &alert.Severity, &alert.Source,
		&alert.Message, &alert.CreatedAt, &alert.AcknowledgedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active alert %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	return &alert, nil
}
