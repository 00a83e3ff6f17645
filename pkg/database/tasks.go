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

// CreateTask inserts a new task for a plot
func (dm *DatabaseManager) CreateTask(ctx context.Context, task *models.Task) error {
	query := `
        INSERT INTO tasks (plot_id, task_type, title, due_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `

	return dm.QueryRowWithHealthCheck(ctx, query,
		task.PlotID,
		task.Type,
		task.Title,
		task.DueDate,
	).Scan(&task.ID, &task.CreatedAt)
}

// OpenTasks returns all uncompleted tasks for a plot, soonest due first
func (dm *DatabaseManager) OpenTasks(ctx context.Context, plotID uuid.UUID) ([]models.Task, error) {
	query := `
        SELECT id, plot_id, task_type, title, due_date, completed_at, created_at
        FROM tasks
        WHERE plot_id = $1 AND completed_at IS NULL
        ORDER BY due_date
    `

	rows, err := dm.QueryWithHealthCheck(ctx, query, plotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID, &task.PlotID, &task.Type, &task.Title,
			&task.DueDate, &task.CompletedAt, &task.CreatedAt,
		); err != nil {
			log.Printf("Failed to scan task: %v", err)
			continue
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// CompleteTask marks a task as done and logs a matching activity so that
// care history and advice stay consistent
func (dm *DatabaseManager) CompleteTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	query := `
        UPDATE tasks
        SET completed_at = CURRENT_TIMESTAMP
        WHERE id = $1 AND completed_at IS NULL
        RETURNING id, plot_id, task_type, title, due_date, completed_at, created_at
    `

	var task models.Task
	err := dm.QueryRowWithHealthCheck(ctx, query, id).Scan(
		&task.ID, &task.PlotID, &task.Type, &task.Title,
		&task.DueDate, &task.CompletedAt, &task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("open task %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	activity := &models.Activity{
		PlotID:      task.PlotID,
		Type:        task.Type,
		Note:        fmt.Sprintf("Completed task: %s", task.Title),
		PerformedAt: *task.CompletedAt,
	}
	if err := dm.CreateActivity(ctx, activity); err != nil {
		log.Printf("⚠ Failed to log activity for completed task %s: %v", task.ID, err)
	}

	return &task, nil
}

// DeleteTask removes a task
func (dm *DatabaseManager) DeleteTask(ctx context.Context, id uuid.UUID) error {
	result, err := dm.ExecWithHealthCheck(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("task %s: %w", id, models.ErrNotFound)
	}

	return nil
}

// CreateSchedule inserts a recurring care plan for a plot
func (dm *DatabaseManager) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	query := `
        INSERT INTO schedules (plot_id, schedule_type, interval_days, last_run_at, next_run_at, enabled)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `

	return dm.QueryRowWithHealthCheck(ctx, query,
		schedule.PlotID,
		schedule.Type,
		schedule.IntervalDays,
		schedule.LastRunAt,
		schedule.NextRunAt,
		schedule.Enabled,
	).Scan(&schedule.ID, &schedule.CreatedAt)
}

// Schedules returns all schedules for a plot
func (dm *DatabaseManager) Schedules(ctx context.Context, plotID uuid.UUID) ([]models.Schedule, error) {
	query := `
        SELECT id, plot_id, schedule_type, interval_days, last_run_at, next_run_at, enabled, created_at
        FROM schedules
        WHERE plot_id = $1
        ORDER BY next_run_at
    `

	rows, err := dm.QueryWithHealthCheck(ctx, query, plotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var schedule models.Schedule
		if err := rows.Scan(
			&schedule.ID, &schedule.PlotID, &schedule.Type, &schedule.IntervalDays,
			&schedule.LastRunAt, &schedule.NextRunAt, &schedule.Enabled, &schedule.CreatedAt,
		); err != nil {
			log.Printf("Failed to scan schedule: %v", err)
			continue
		}
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}

// AdvanceSchedule records a run and moves next_run_at forward by the interval
func (dm *DatabaseManager) AdvanceSchedule(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE schedules
        SET last_run_at = CURRENT_TIMESTAMP,
            next_run_at = CURRENT_TIMESTAMP + (interval_days || ' days')::interval
        WHERE id = $1
    `

	result, err := dm.ExecWithHealthCheck(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to advance schedule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("schedule %s: %w", id, models.ErrNotFound)
	}

	return nil
}
