package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
	"github.com/google/uuid"
)

// CreateActivity logs a care action for a plot
func (dm *DatabaseManager) CreateActivity(ctx context.Context, activity *models.Activity) error {
	query := `
        INSERT INTO activities (plot_id, activity_type, note, performed_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `

	return dm.QueryRowWithHealthCheck(ctx, query,
		activity.PlotID,
		activity.Type,
		activity.Note,
		activity.PerformedAt,
	).Scan(&activity.ID, &activity.CreatedAt)
}

// GetActivities retrieves activities matching the given filters, newest first
func (dm *DatabaseManager) GetActivities(ctx context.Context, params models.ActivityQueryParams) ([]models.Activity, error) {
	query := `
        SELECT id, plot_id, activity_type, COALESCE(note, ''), performed_at, created_at
        FROM activities
        WHERE 1=1
    `
	args := []interface{}{}
	argIdx := 1

	if params.PlotID != nil {
		query += fmt.Sprintf(" AND plot_id = $%d", argIdx)
		args = append(args, *params.PlotID)
		argIdx++
	}
	if params.Type != "" {
		query += fmt.Sprintf(" AND activity_type = $%d", argIdx)
		args = append(args, params.Type)
		argIdx++
	}
	if !params.Since.IsZero() {
		query += fmt.Sprintf(" AND performed_at >= $%d", argIdx)
		args = append(args, params.Since)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY performed_at DESC LIMIT $%d", argIdx)
	args = append(args, params.Limit)

	rows, err := dm.QueryWithHealthCheck(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var activity models.Activity
		if err := rows.Scan(
			&activity.ID, &activity.PlotID, &activity.Type,
			&activity.Note, &activity.PerformedAt, &activity.CreatedAt,
		); err != nil {
			log.Printf("Failed to scan activity: %v", err)
			continue
		}
		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

// RecentActivities returns activities for a plot performed since the cutoff,
// newest first
func (dm *DatabaseManager) RecentActivities(ctx context.Context, plotID uuid.UUID, since time.Time) ([]models.Activity, error) {
	return dm.GetActivities(ctx, models.ActivityQueryParams{
		PlotID: &plotID,
		Since:  since,
		Limit:  1000,
	})
}
